package capture

import (
	"context"
	"fmt"
	"strings"

	app_errors "agribrain/backend/internal/errors"
)

// Recognizer turns speech into a transcript.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Voice captures a transcript while holding the microphone.
type Voice struct {
	Devices    *DeviceManager
	Recognizer Recognizer
	Owner      string
}

// Capture acquires the microphone, runs the recognizer and releases the
// microphone on every exit path. A capture stopped through ctx yields
// ErrCancelled and never a partial transcript.
func (v Voice) Capture(ctx context.Context) (string, error) {
	if v.Recognizer == nil {
		return "", fmt.Errorf("%w: speech recognition is not available", app_errors.ErrUnsupported)
	}

	handle, err := v.Devices.Acquire(DeviceMicrophone, v.Owner)
	if err != nil {
		return "", err
	}
	defer handle.Release()

	transcript, err := v.Recognizer.Recognize(ctx)
	if ctx.Err() != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrCancelled, ctx.Err())
	}
	if err != nil {
		return "", err
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return "", fmt.Errorf("%w: no speech was recognized", app_errors.ErrUnavailable)
	}
	return transcript, nil
}

// Outcome values reported by the browser speech engine.
const (
	OutcomeOK          = "ok"
	OutcomeDenied      = "denied"
	OutcomeUnsupported = "unsupported"
	OutcomeUnavailable = "unavailable"
)

// ClientTranscript is a Recognizer for speech recognized on the client. The
// outcome carries the client's permission or capability failure, if any.
type ClientTranscript struct {
	Transcript string
	Outcome    string
}

func (c ClientTranscript) Recognize(_ context.Context) (string, error) {
	switch c.Outcome {
	case "", OutcomeOK:
		return c.Transcript, nil
	case OutcomeDenied:
		return "", fmt.Errorf("%w: please check your microphone permissions", app_errors.ErrPermission)
	case OutcomeUnsupported:
		return "", fmt.Errorf("%w: speech recognition is not supported by this browser", app_errors.ErrUnsupported)
	case OutcomeUnavailable:
		return "", fmt.Errorf("%w: no microphone found", app_errors.ErrUnavailable)
	default:
		return "", fmt.Errorf("%w: unknown speech outcome %q", app_errors.ErrValidation, c.Outcome)
	}
}
