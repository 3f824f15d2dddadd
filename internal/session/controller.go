package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "agribrain/backend/internal/errors"
)

// DefaultTimeout bounds the pending state when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Options configures a Controller.
type Options struct {
	// Timeout bounds how long a session may stay pending.
	Timeout time.Duration
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// OnTransition is called under the controller lock for every state
	// change. It must not call back into the controller.
	OnTransition func(kind string, from, to State)
}

// ResolvedHook runs while the session is still pending, after the resolver
// succeeded. A non-nil error fails the session.
type ResolvedHook[In, Out any] func(ctx context.Context, in In, out Out) error

// Controller runs capture/resolve cycles for one screen and guarantees that at
// most one cycle is in flight.
type Controller[In, Out any] struct {
	kind     string
	resolver Resolver[In, Out]
	timeout  time.Duration
	now      func() time.Time
	logger   *slog.Logger

	onTransition func(kind string, from, to State)
	onResolved   ResolvedHook[In, Out]

	mu      sync.Mutex
	state   State
	current record[In, Out]
	cancel  context.CancelFunc
	closed  bool
	// committing is closed once a resolved result has been recorded.
	committing chan struct{}
}

type record[In, Out any] struct {
	id         string
	input      *In
	result     *Out
	err        error
	startedAt  time.Time
	resolvedAt time.Time
}

// New creates an idle controller for the given session kind.
func New[In, Out any](kind string, resolver Resolver[In, Out], opts Options) *Controller[In, Out] {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller[In, Out]{
		kind:         kind,
		resolver:     resolver,
		timeout:      opts.Timeout,
		now:          opts.Clock,
		logger:       opts.Logger.With("session", kind),
		onTransition: opts.OnTransition,
	}
}

// OnResolved installs the hook that records a resolved session, usually an
// append to the history log. Call it before the first Run.
func (c *Controller[In, Out]) OnResolved(hook ResolvedHook[In, Out]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResolved = hook
}

// Kind returns the session kind this controller was created with.
func (c *Controller[In, Out]) Kind() string {
	return c.kind
}

// Run performs one capture→resolve cycle. It returns ErrBusy without touching
// the current session if another cycle is capturing or pending.
func (c *Controller[In, Out]) Run(ctx context.Context, capturer Capturer[In]) (Out, error) {
	var zero Out

	runCtx, cancel, err := c.begin(ctx)
	if err != nil {
		return zero, err
	}
	defer cancel()

	in, err := capturer.Capture(runCtx)
	if err != nil {
		if runCtx.Err() != nil || errors.Is(err, app_errors.ErrCancelled) {
			return zero, c.abort(err)
		}
		return zero, c.fail(err)
	}

	if err := c.enterPending(in); err != nil {
		return zero, err
	}

	out, err := c.resolve(runCtx, in)
	if err != nil {
		if errors.Is(err, app_errors.ErrCancelled) {
			return zero, c.abort(err)
		}
		return zero, c.fail(err)
	}

	hook, committed, err := c.commit(runCtx)
	if err != nil {
		return zero, err
	}
	defer close(committed)

	if hook != nil {
		if err := hook(context.WithoutCancel(runCtx), in, out); err != nil {
			return zero, c.fail(fmt.Errorf("record %s result: %w", c.kind, err))
		}
	}

	c.finish(out)
	return out, nil
}

// commit moves a resolved cycle past the point of cancellation. A cycle
// cancelled or closed before this point is aborted and its result dropped;
// after it, Cancel is a no-op and Close waits for the result to be recorded.
func (c *Controller[In, Out]) commit(runCtx context.Context) (ResolvedHook[In, Out], chan struct{}, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, nil, fmt.Errorf("%s: %w", c.kind, app_errors.ErrClosed)
	}
	if err := runCtx.Err(); err != nil {
		c.mu.Unlock()
		return nil, nil, c.abort(fmt.Errorf("%w: %v", app_errors.ErrCancelled, err))
	}
	c.cancel = nil
	c.committing = make(chan struct{})
	hook := c.onResolved
	committed := c.committing
	c.mu.Unlock()
	return hook, committed, nil
}

// Cancel stops the in-flight cycle, if any. It reports whether a cycle was
// running.
func (c *Controller[In, Out]) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel == nil {
		return false
	}
	c.cancel()
	return true
}

// Close disposes the controller: the in-flight cycle is cancelled, the session
// is reset and later runs fail with ErrClosed. Results not yet committed are
// dropped; a commit in progress is waited for.
func (c *Controller[In, Out]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	committing := c.committing
	c.mu.Unlock()

	if committing != nil {
		<-committing
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.transition(StateIdle)
	c.current = record[In, Out]{}
}

// Status returns a snapshot of the current or last session.
func (c *Controller[In, Out]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Status{
		ID:    c.current.id,
		Kind:  c.kind,
		State: c.state,
	}
	if c.current.input != nil {
		st.CurrentInput = *c.current.input
	}
	if c.current.result != nil {
		st.Result = *c.current.result
	}
	if c.current.err != nil {
		st.Error = c.current.err.Error()
	}
	if !c.current.startedAt.IsZero() {
		t := c.current.startedAt
		st.StartedAt = &t
	}
	if !c.current.resolvedAt.IsZero() {
		t := c.current.resolvedAt
		st.ResolvedAt = &t
	}
	return st
}

func (c *Controller[In, Out]) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, nil, fmt.Errorf("%s: %w", c.kind, app_errors.ErrClosed)
	}
	if c.state.Busy() {
		c.logger.Warn("Rejected capture while session is busy", "state", c.state, "session_id", c.current.id)
		return nil, nil, fmt.Errorf("%s: %w", c.kind, app_errors.ErrBusy)
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.current = record[In, Out]{id: uuid.NewString(), startedAt: c.now()}
	c.transition(StateCapturing)
	return runCtx, cancel, nil
}

func (c *Controller[In, Out]) enterPending(in In) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("%s: %w", c.kind, app_errors.ErrClosed)
	}
	c.current.input = &in
	c.transition(StatePending)
	return nil
}

// resolve runs the resolver bounded by the pending timeout. The resolver runs
// in its own goroutine so a backend that ignores its context cannot hold the
// session in pending past the budget.
func (c *Controller[In, Out]) resolve(runCtx context.Context, in In) (Out, error) {
	var zero Out

	resolveCtx, cancel := context.WithTimeout(runCtx, c.timeout)
	defer cancel()

	type outcome struct {
		out Out
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := c.resolver.Resolve(resolveCtx, in)
		done <- outcome{out: out, err: err}
	}()

	select {
	case o := <-done:
		if o.err == nil {
			return o.out, nil
		}
		if runCtx.Err() != nil {
			return zero, fmt.Errorf("%w: %v", app_errors.ErrCancelled, o.err)
		}
		if errors.Is(resolveCtx.Err(), context.DeadlineExceeded) {
			return zero, fmt.Errorf("%s: %w after %s", c.kind, app_errors.ErrTimeout, c.timeout)
		}
		return zero, o.err
	case <-resolveCtx.Done():
		if runCtx.Err() != nil {
			return zero, fmt.Errorf("%w: %v", app_errors.ErrCancelled, runCtx.Err())
		}
		return zero, fmt.Errorf("%s: %w after %s", c.kind, app_errors.ErrTimeout, c.timeout)
	}
}

// finish records a committed result. It runs even if Close arrived during the
// commit, since the result has already been recorded.
func (c *Controller[In, Out]) finish(out Out) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current.result = &out
	c.current.resolvedAt = c.now()
	c.transition(StateResolved)
	c.committing = nil
	c.transition(StateIdle)
}

func (c *Controller[In, Out]) fail(err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.committing = nil
	if c.closed {
		return err
	}
	c.current.err = err
	c.current.resolvedAt = c.now()
	c.transition(StateFailed)
	c.logger.Warn("Session failed", "session_id", c.current.id, "error", err)
	c.cancel = nil
	c.transition(StateIdle)
	return err
}

// abort returns a cancelled cycle to idle without recording a failure.
func (c *Controller[In, Out]) abort(cause error) error {
	err := cause
	if !errors.Is(err, app_errors.ErrCancelled) {
		err = fmt.Errorf("%s: %w", c.kind, app_errors.ErrCancelled)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return err
	}
	c.logger.Info("Session cancelled", "session_id", c.current.id, "state", c.state)
	c.current.input = nil
	c.cancel = nil
	c.transition(StateIdle)
	return err
}

// transition must be called with c.mu held.
func (c *Controller[In, Out]) transition(to State) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.logger.Debug("Session transition", "session_id", c.current.id, "from", from, "to", to)
	if c.onTransition != nil {
		c.onTransition(c.kind, from, to)
	}
}
