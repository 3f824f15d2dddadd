package capture

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	app_errors "agribrain/backend/internal/errors"
)

// CommandCamera is a CameraDevice backed by an external capture tool that
// writes one image to stdout per run, for example "fswebcam --no-banner -".
type CommandCamera struct {
	Command []string
}

// ParseCameraCommand splits a configured command line on whitespace.
func ParseCameraCommand(line string) CommandCamera {
	return CommandCamera{Command: strings.Fields(line)}
}

func (c CommandCamera) Open(_ context.Context) (Stream, error) {
	if len(c.Command) == 0 {
		return nil, fmt.Errorf("%w: no camera command configured", app_errors.ErrUnsupported)
	}
	path, err := exec.LookPath(c.Command[0])
	if err != nil {
		return nil, fmt.Errorf("%w: camera command %q not found", app_errors.ErrUnsupported, c.Command[0])
	}
	return &commandStream{path: path, args: c.Command[1:]}, nil
}

type commandStream struct {
	path string
	args []string
}

func (s *commandStream) Frame(ctx context.Context) ([]byte, error) {
	out, err := exec.CommandContext(ctx, s.path, s.args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: camera command failed: %s", app_errors.ErrUnavailable, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%w: camera command failed: %v", app_errors.ErrUnavailable, err)
	}
	if len(out) > MaxImageSize {
		return nil, tooLarge(int64(len(out)))
	}
	return out, nil
}

// Stop is a no-op; each frame is a separate process.
func (s *commandStream) Stop() {}
