// Package capture holds the input sources of the assistant sessions. Every
// adapter exposes Capture(ctx) and normalizes one kind of client capability
// into a single value.
package capture

import (
	"fmt"
	"log/slog"
	"sync"

	app_errors "agribrain/backend/internal/errors"
)

// DeviceKind names a shared capture device.
type DeviceKind string

const (
	DeviceCamera     DeviceKind = "camera"
	DeviceMicrophone DeviceKind = "microphone"
)

// DeviceManager hands out exclusive handles on capture devices. A device has
// at most one owner; it must be released before anyone else can acquire it.
type DeviceManager struct {
	mu     sync.Mutex
	owners map[DeviceKind]string
}

func NewDeviceManager() *DeviceManager {
	return &DeviceManager{owners: make(map[DeviceKind]string)}
}

// Acquire takes ownership of a device. It fails with ErrConflict while another
// owner holds it.
func (m *DeviceManager) Acquire(kind DeviceKind, owner string) (*DeviceHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, held := m.owners[kind]; held {
		return nil, fmt.Errorf("%w: %s is in use by %s", app_errors.ErrConflict, kind, current)
	}
	m.owners[kind] = owner
	slog.Debug("Device acquired", "device", kind, "owner", owner)
	return &DeviceHandle{manager: m, kind: kind, owner: owner}, nil
}

// Owner returns the current owner of a device.
func (m *DeviceManager) Owner(kind DeviceKind) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owner, ok := m.owners[kind]
	return owner, ok
}

func (m *DeviceManager) release(kind DeviceKind, owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.owners[kind] == owner {
		delete(m.owners, kind)
		slog.Debug("Device released", "device", kind, "owner", owner)
	}
}

// DeviceHandle is an acquired device. Release is idempotent.
type DeviceHandle struct {
	manager *DeviceManager
	kind    DeviceKind
	owner   string
	once    sync.Once
}

func (h *DeviceHandle) Kind() DeviceKind { return h.kind }

func (h *DeviceHandle) Release() {
	h.once.Do(func() {
		h.manager.release(h.kind, h.owner)
	})
}
