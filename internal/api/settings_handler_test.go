package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agribrain/backend/internal/api"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/interfaces/mocks"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
)

// addChiURLParams simulates how the chi router injects URL parameters into
// the request's context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func setupSettingsHandler(t *testing.T) (*api.SettingsHandler, *mocks.MockSettingsService, *mocks.MockReportService) {
	mockSettings := mocks.NewMockSettingsService(t)
	mockReport := mocks.NewMockReportService(t)
	sessions := map[string]interfaces.SessionReporter{service.KindReport: mockReport}
	return api.NewSettingsHandler(mockSettings, sessions), mockSettings, mockReport
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSettings, _ := setupSettingsHandler(t)
		mockSettings.On("Get", mock.Anything).Return(&service.Settings{DefaultCity: "Pune"}, nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"default_city":"Pune"}`, rr.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		handler, mockSettings, _ := setupSettingsHandler(t)
		mockSettings.On("Get", mock.Anything).Return(nil, app_errors.ErrInternal).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
		rr := httptest.NewRecorder()
		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSettingsHandler_UpdateSettings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSettings, _ := setupSettingsHandler(t)
		mockSettings.On("Save", mock.Anything, &service.Settings{DefaultCity: "Nagpur"}).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/settings", strings.NewReader(`{"default_city":"Nagpur"}`))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		handler, _, _ := setupSettingsHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/settings", strings.NewReader(`{"default_city":""}`))
		rr := httptest.NewRecorder()
		handler.UpdateSettings(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSettingsHandler_Sessions(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		handler, _, mockReport := setupSettingsHandler(t)
		mockReport.On("Status").Return(session.Status{Kind: service.KindReport, State: session.StatePending}).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions", nil)
		rr := httptest.NewRecorder()
		handler.GetSessions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "pending", resp[service.KindReport]["state"])
	})

	t.Run("Cancel", func(t *testing.T) {
		handler, _, mockReport := setupSettingsHandler(t)
		mockReport.On("Cancel").Return(true).Once()

		req := addChiURLParams(httptest.NewRequest(http.MethodPost, "/v1/sessions/report/cancel", nil), map[string]string{"kind": "report"})
		rr := httptest.NewRecorder()
		handler.CancelSession(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"cancelled"}`, rr.Body.String())
	})

	t.Run("Cancel unknown kind", func(t *testing.T) {
		handler, _, _ := setupSettingsHandler(t)

		req := addChiURLParams(httptest.NewRequest(http.MethodPost, "/v1/sessions/radio/cancel", nil), map[string]string{"kind": "radio"})
		rr := httptest.NewRecorder()
		handler.CancelSession(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
