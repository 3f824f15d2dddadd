package api

import (
	"net/http"

	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/service"
)

// ChatHandler handles HTTP requests for the chat assistant.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// GetMessages godoc
// @Summary      Get chat history
// @Description  Returns every stored chat message in the order it was sent.
// @Tags         Chat
// @Produce      json
// @Success      200  {array}   model.Message
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chat/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.History(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// SendMessage godoc
// @Summary      Ask the assistant
// @Description  Sends a typed message or quick action and returns the reply.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        message  body      service.SendMessageRequest  true  "Message"
// @Success      200      {object}  service.ChatExchange
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Failure      504      {object}  ErrorResponse
// @Router       /v1/chat/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	exchange, err := h.service.Send(r.Context(), req.Text)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, exchange)
}

// SendVoice godoc
// @Summary      Ask the assistant by voice
// @Description  Sends a transcript recognized by the browser, or the reason recognition failed.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        voice  body      service.VoiceMessageRequest  true  "Recognition result"
// @Success      200    {object}  service.ChatExchange
// @Failure      403    {object}  ErrorResponse
// @Failure      409    {object}  ErrorResponse
// @Failure      422    {object}  ErrorResponse
// @Router       /v1/chat/voice [post]
func (h *ChatHandler) SendVoice(w http.ResponseWriter, r *http.Request) {
	var req service.VoiceMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	exchange, err := h.service.SendVoice(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, exchange)
}

// ClearMessages godoc
// @Summary      Clear chat history
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chat/messages [delete]
func (h *ChatHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
