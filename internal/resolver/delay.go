package resolver

import (
	"context"
	"time"

	"agribrain/backend/internal/session"
)

// Delayed wraps a resolver with simulated latency. The timer is stopped as
// soon as ctx ends, so a disposed session never resolves late.
func Delayed[In, Out any](delay time.Duration, next session.Resolver[In, Out]) session.Resolver[In, Out] {
	if delay <= 0 {
		return next
	}
	return session.ResolverFunc[In, Out](func(ctx context.Context, in In) (Out, error) {
		var zero Out
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return next.Resolve(ctx, in)
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	})
}
