package session

import (
	"context"
	"fmt"
	"time"
)

// State is a step of the capture/resolve cycle:
// idle → capturing → pending → {resolved | failed} → idle.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StatePending
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StatePending:
		return "pending"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText renders the state by name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Busy reports whether a cycle is in flight.
func (s State) Busy() bool {
	return s == StateCapturing || s == StatePending
}

// Capturer acquires one unit of raw input.
type Capturer[T any] interface {
	Capture(ctx context.Context) (T, error)
}

// CaptureFunc adapts a plain function to the Capturer interface.
type CaptureFunc[T any] func(ctx context.Context) (T, error)

func (f CaptureFunc[T]) Capture(ctx context.Context) (T, error) {
	return f(ctx)
}

// Resolver turns a captured input into a typed result.
type Resolver[In, Out any] interface {
	Resolve(ctx context.Context, in In) (Out, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f ResolverFunc[In, Out]) Resolve(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

// Status is a read-only snapshot of a controller's current or last session.
type Status struct {
	ID           string     `json:"id,omitempty"`
	Kind         string     `json:"kind"`
	State        State      `json:"state"`
	CurrentInput any        `json:"current_input,omitempty"`
	Result       any        `json:"result,omitempty"`
	Error        string     `json:"error,omitempty"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}
