package capture

import (
	"context"
	"fmt"
	"sync"

	app_errors "agribrain/backend/internal/errors"
)

// Stream is a live camera feed.
type Stream interface {
	Frame(ctx context.Context) ([]byte, error)
	Stop()
}

// CameraDevice opens camera streams. Open returns ErrPermission when access is
// denied and ErrUnsupported when no camera exists.
type CameraDevice interface {
	Open(ctx context.Context) (Stream, error)
}

// Camera captures a single frame from a live stream. The stream and the
// camera handle are released on Stop, on a successful capture and on error.
type Camera struct {
	devices *DeviceManager
	device  CameraDevice
	owner   string

	mu     sync.Mutex
	handle *DeviceHandle
	stream Stream
}

func NewCamera(devices *DeviceManager, device CameraDevice, owner string) *Camera {
	return &Camera{devices: devices, device: device, owner: owner}
}

// Start acquires the camera and opens the stream. Calling Start on an active
// camera is a no-op.
func (c *Camera) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stream != nil {
		return nil
	}
	if c.device == nil {
		return fmt.Errorf("%w: no camera available", app_errors.ErrUnsupported)
	}

	handle, err := c.devices.Acquire(DeviceCamera, c.owner)
	if err != nil {
		return err
	}
	stream, err := c.device.Open(ctx)
	if err != nil {
		handle.Release()
		return err
	}
	c.handle = handle
	c.stream = stream
	return nil
}

// Active reports whether a stream is open.
func (c *Camera) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream != nil
}

// Stop closes the stream and releases the camera. It is safe to call more
// than once.
func (c *Camera) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stream != nil {
		c.stream.Stop()
		c.stream = nil
	}
	if c.handle != nil {
		c.handle.Release()
		c.handle = nil
	}
}

// Capture starts the camera if needed, grabs one frame and stops the camera.
func (c *Camera) Capture(ctx context.Context) (Image, error) {
	defer c.Stop()

	if err := c.Start(ctx); err != nil {
		return Image{}, err
	}

	c.mu.Lock()
	stream := c.stream
	c.mu.Unlock()
	if stream == nil {
		return Image{}, fmt.Errorf("%w: camera stopped", app_errors.ErrCancelled)
	}

	frame, err := stream.Frame(ctx)
	if ctx.Err() != nil {
		return Image{}, fmt.Errorf("%w: %v", app_errors.ErrCancelled, ctx.Err())
	}
	if err != nil {
		return Image{}, err
	}
	return NewImage(frame, SourceCamera)
}
