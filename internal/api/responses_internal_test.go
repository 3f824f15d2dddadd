package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	app_errors "agribrain/backend/internal/errors"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", app_errors.ErrNotFound, http.StatusNotFound},
		{"city not found", app_errors.NewFetchError(app_errors.ErrCityNotFound, 404, "City not found"), http.StatusNotFound},
		{"validation", fmt.Errorf("%w: message cannot be empty", app_errors.ErrValidation), http.StatusBadRequest},
		{"too large", app_errors.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"invalid format", app_errors.ErrInvalidFormat, http.StatusUnsupportedMediaType},
		{"busy", fmt.Errorf("chat: %w", app_errors.ErrBusy), http.StatusConflict},
		{"device held", fmt.Errorf("%w: camera is in use", app_errors.ErrConflict), http.StatusConflict},
		{"permission", app_errors.ErrPermission, http.StatusForbidden},
		{"unsupported", app_errors.ErrUnsupported, http.StatusUnprocessableEntity},
		{"unavailable", app_errors.ErrUnavailable, http.StatusUnprocessableEntity},
		{"timeout", app_errors.ErrTimeout, http.StatusGatewayTimeout},
		{"cancelled", app_errors.ErrCancelled, http.StatusRequestTimeout},
		{"closed", app_errors.ErrClosed, http.StatusServiceUnavailable},
		{"unreachable", app_errors.NewFetchError(app_errors.ErrUnreachable, 0, "Weather service is unreachable"), http.StatusBadGateway},
		{"bad response", app_errors.NewFetchError(app_errors.ErrBadResponse, 500, "Malformed weather response"), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := errorStatus(tt.err)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, msg)
		})
	}

	_, msg := errorStatus(app_errors.NewFetchError(app_errors.ErrUnreachable, 0, "Weather service is unreachable"))
	assert.Equal(t, "Weather service is unreachable", msg)
}
