package errors

import (
	"errors"
	"fmt"
)

// This package defines a centralized set of sentinel errors for the application.
// Services and adapters wrap these with fmt.Errorf("%w: ...") so the API layer
// can use `errors.Is()` to map them to the correct HTTP responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// validation (empty chat text, malformed crop form, bad settings).
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrPermission signifies that the user denied access to a capability
	// such as the microphone, the camera or the device location.
	// This is typically mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("permission denied")

	// ErrInternal signifies an unexpected error on the server.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)

// Capture errors.
var (
	// ErrUnsupported means the capability is absent on the client.
	ErrUnsupported = errors.New("capability not supported")
	// ErrUnavailable means the capability exists but produced no value
	// (e.g. the position could not be determined).
	ErrUnavailable = errors.New("capability unavailable")

	ErrFileTooLarge  = errors.New("file too large")
	ErrInvalidFormat = errors.New("invalid format")
)

// Session errors.
var (
	// ErrBusy is returned when a capture is triggered while a session is
	// already capturing or pending.
	ErrBusy = fmt.Errorf("session busy: %w", ErrConflict)

	ErrCancelled = errors.New("capture cancelled")
	ErrClosed    = errors.New("session closed")
	ErrTimeout   = errors.New("operation timed out")
)

// Network errors. Use FetchError to carry one of the causes below.
var (
	ErrNetwork      = errors.New("network error")
	ErrCityNotFound = errors.New("city not found")
	ErrUnreachable  = errors.New("service unreachable")
	ErrBadResponse  = errors.New("bad response")
)

// FetchError is returned by the network resolvers. It matches both ErrNetwork
// and its Cause under errors.Is.
type FetchError struct {
	Cause      error
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Cause.Error()
}

func (e *FetchError) Unwrap() []error {
	return []error{ErrNetwork, e.Cause}
}

// NewFetchError builds a FetchError with a human-readable message.
func NewFetchError(cause error, status int, format string, args ...any) *FetchError {
	return &FetchError{Cause: cause, StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
