// The `_test` suffix creates a "black box" test package that can only reach
// the exported API of package api.
package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agribrain/backend/internal/api"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces/mocks"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/service"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockChatSvc := mocks.NewMockChatService(t)
	return api.NewChatHandler(mockChatSvc), mockChatSvc
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupChatHandler(t)
		exchange := &service.ChatExchange{
			Question: model.Message{Text: "soil tips", Sender: model.SenderUser},
			Answer:   model.Message{Text: "Improve soil health...", Sender: model.SenderAssistant},
		}
		mockSvc.On("Send", mock.Anything, "soil tips").Return(exchange, nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":"soil tips"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var resp service.ChatExchange
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, model.SenderAssistant, resp.Answer.Sender)
	})

	t.Run("Failure - empty text is rejected before the service", func(t *testing.T) {
		// ARRANGE: no expectations, the mock fails the test if it is called.
		handler, _ := setupChatHandler(t)

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":""}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr), "text")
	})

	t.Run("Failure - invalid JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - busy session", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("Send", mock.Anything, "again").Return(nil, app_errors.ErrBusy).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":"again"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - timeout", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("Send", mock.Anything, "slow").Return(nil, app_errors.ErrTimeout).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"text":"slow"}`))
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})
}

func TestChatHandler_SendVoice(t *testing.T) {
	t.Run("Failure - microphone permission denied", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("SendVoice", mock.Anything, mock.MatchedBy(func(r *service.VoiceMessageRequest) bool {
			return r.Outcome == "denied"
		})).Return(nil, app_errors.ErrPermission).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/voice", strings.NewReader(`{"outcome":"denied"}`))
		rr := httptest.NewRecorder()
		handler.SendVoice(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Failure - unknown outcome", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/voice", strings.NewReader(`{"outcome":"maybe"}`))
		rr := httptest.NewRecorder()
		handler.SendVoice(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - unsupported browser", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("SendVoice", mock.Anything, mock.Anything).Return(nil, app_errors.ErrUnsupported).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/chat/voice", strings.NewReader(`{"outcome":"unsupported"}`))
		rr := httptest.NewRecorder()
		handler.SendVoice(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestChatHandler_History(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("History", mock.Anything).Return([]model.Message{{Text: "hi", Sender: model.SenderUser, Timestamp: 1}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/messages", nil)
		rr := httptest.NewRecorder()
		handler.GetMessages(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"text":"hi","sender":"user","timestamp":1}]`, rr.Body.String())
	})

	t.Run("Clear failure", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("ClearHistory", mock.Anything).Return(errors.New("disk full")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/chat/messages", nil)
		rr := httptest.NewRecorder()
		handler.ClearMessages(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "disk full", "internal details must not leak")
	})
}
