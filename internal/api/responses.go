package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WeatherErrorResponse is returned when a weather fetch fails. The last
// successful snapshot, if any, stays on screen.
type WeatherErrorResponse struct {
	Error string                 `json:"error"`
	Last  *model.WeatherSnapshot `json:"last,omitempty"`
}

// StatusResponse defines a generic success response, typically for operations
// like POST, PUT, DELETE that don't need to return a full resource.
type StatusResponse struct {
	Status string `json:"status"`
}

// errorStatus maps business-layer errors to an HTTP status code and a message
// that is safe to show to the user.
func errorStatus(err error) (int, string) {
	var fetchErr *app_errors.FetchError

	switch {
	case errors.Is(err, app_errors.ErrCityNotFound):
		return http.StatusNotFound, "City not found"
	case errors.Is(err, app_errors.ErrNotFound):
		return http.StatusNotFound, "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		// Validation messages from the service layer are already user-friendly.
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, app_errors.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, app_errors.ErrInvalidFormat):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, app_errors.ErrBusy):
		return http.StatusConflict, "Another request is already in progress."
	case errors.Is(err, app_errors.ErrConflict):
		return http.StatusConflict, "A conflict occurred with the current state of the resource."
	case errors.Is(err, app_errors.ErrPermission):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, app_errors.ErrUnsupported), errors.Is(err, app_errors.ErrUnavailable):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, app_errors.ErrTimeout):
		return http.StatusGatewayTimeout, "The request timed out. Please try again."
	case errors.Is(err, app_errors.ErrCancelled):
		return http.StatusRequestTimeout, "The request was cancelled."
	case errors.Is(err, app_errors.ErrClosed):
		return http.StatusServiceUnavailable, "The service is shutting down."
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway, fetchErr.Error()
	case errors.Is(err, app_errors.ErrNetwork):
		return http.StatusBadGateway, "An upstream service failed."
	default:
		// Any unhandled error is considered an internal server error.
		// This prevents leaking implementation details to the client.
		return http.StatusInternalServerError, "An unexpected internal server error occurred."
	}
}

// respondWithError is the centralized error handling function for the API layer.
func respondWithError(w http.ResponseWriter, err error) {
	statusCode, message := errorStatus(err)

	// The original, more detailed error is logged for debugging purposes,
	// while a generic message is sent to the client.
	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// This indicates a server-side programming error (e.g., trying to marshal a channel).
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON decodes a request body, mapping malformed input to a validation
// error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
	}
	return nil
}
