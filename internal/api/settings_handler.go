package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
)

// SettingsHandler serves the dashboard settings and the session overview.
type SettingsHandler struct {
	settings interfaces.SettingsService
	sessions map[string]interfaces.SessionReporter
}

// NewSettingsHandler builds the handler. sessions maps each flow kind to its
// controller.
func NewSettingsHandler(settings interfaces.SettingsService, sessions map[string]interfaces.SessionReporter) *SettingsHandler {
	return &SettingsHandler{settings: settings, sessions: sessions}
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the dashboard settings.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.Settings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Update settings
// @Description  Saves the dashboard settings.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      service.Settings  true  "New settings"
// @Success      200       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/settings [post]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req service.Settings
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.settings.Save(r.Context(), &req); err != nil {
		respondWithError(w, err)
		return
	}
	slog.Info("Settings updated", "default_city", req.DefaultCity)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetSessions godoc
// @Summary      List sessions
// @Description  Returns the current or last session of every flow.
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  map[string]session.Status
// @Router       /v1/sessions [get]
func (h *SettingsHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]session.Status, len(h.sessions))
	for kind, s := range h.sessions {
		out[kind] = s.Status()
	}
	respondWithJSON(w, http.StatusOK, out)
}

// CancelSession godoc
// @Summary      Cancel a session
// @Description  Cancels the in-flight capture or request of one flow.
// @Tags         Sessions
// @Produce      json
// @Param        kind  path      string  true  "Flow kind"  Enums(chat, analysis, weather, crop, report)
// @Success      200   {object}  StatusResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /v1/sessions/{kind}/cancel [post]
func (h *SettingsHandler) CancelSession(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	s, ok := h.sessions[kind]
	if !ok {
		respondWithError(w, fmt.Errorf("%w: unknown session %q", app_errors.ErrNotFound, kind))
		return
	}
	status := "idle"
	if s.Cancel() {
		status = "cancelled"
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: status})
}
