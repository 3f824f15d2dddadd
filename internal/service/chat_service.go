package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agribrain/backend/internal/capture"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/session"
)

// Session kinds, one controller each.
const (
	KindChat     = "chat"
	KindAnalysis = "analysis"
	KindWeather  = "weather"
	KindCrop     = "crop"
	KindReport   = "report"
)

// ChatExchange is one resolved question and its reply.
type ChatExchange struct {
	Question model.Message `json:"question"`
	Answer   model.Message `json:"answer"`
}

// SendMessageRequest is a typed chat message or a quick action.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=2000" example:"How do I control pests?"`
}

// VoiceMessageRequest carries a transcript recognized by the browser speech
// engine, or the reason recognition failed.
type VoiceMessageRequest struct {
	Transcript string `json:"transcript" example:"what crops should I plant"`
	Outcome    string `json:"outcome" validate:"omitempty,oneof=ok denied unsupported unavailable" example:"ok"`
}

type ChatService struct {
	ctrl    *session.Controller[string, ChatExchange]
	log     *history.Log[model.Message]
	devices *capture.DeviceManager
	now     func() time.Time
}

// NewChatService wires the chat controller. Every resolved exchange is
// appended to the message log, question first.
func NewChatService(
	log *history.Log[model.Message],
	replies session.Resolver[string, string],
	devices *capture.DeviceManager,
	opts session.Options,
) *ChatService {
	s := &ChatService{log: log, devices: devices, now: opts.Clock}
	if s.now == nil {
		s.now = time.Now
	}

	resolver := session.ResolverFunc[string, ChatExchange](func(ctx context.Context, question string) (ChatExchange, error) {
		asked := s.now()
		answer, err := replies.Resolve(ctx, question)
		if err != nil {
			return ChatExchange{}, err
		}
		return ChatExchange{
			Question: model.Message{Text: question, Sender: model.SenderUser, Timestamp: asked.UnixMilli()},
			Answer:   model.Message{Text: answer, Sender: model.SenderAssistant, Timestamp: s.now().UnixMilli()},
		}, nil
	})

	s.ctrl = session.New[string, ChatExchange](KindChat, resolver, opts)
	s.ctrl.OnResolved(func(ctx context.Context, _ string, ex ChatExchange) error {
		return s.log.Append(ctx, ex.Question, ex.Answer)
	})
	return s
}

// Send resolves a typed message. Blank text is rejected before the session is
// touched.
func (s *ChatService) Send(ctx context.Context, text string) (*ChatExchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", app_errors.ErrValidation)
	}
	ex, err := s.ctrl.Run(ctx, capture.Text{Value: text})
	if err != nil {
		return nil, err
	}
	slog.Debug("Chat message resolved", "question_length", len(ex.Question.Text))
	return &ex, nil
}

// SendVoice resolves a spoken message. The microphone is held for the
// duration of the capture.
func (s *ChatService) SendVoice(ctx context.Context, req *VoiceMessageRequest) (*ChatExchange, error) {
	voice := capture.Voice{
		Devices:    s.devices,
		Recognizer: capture.ClientTranscript{Transcript: req.Transcript, Outcome: req.Outcome},
		Owner:      KindChat,
	}
	ex, err := s.ctrl.Run(ctx, voice)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

// History returns every stored message in insertion order.
func (s *ChatService) History(_ context.Context) ([]model.Message, error) {
	return s.log.Entries(), nil
}

// ClearHistory drops the stored conversation.
func (s *ChatService) ClearHistory(ctx context.Context) error {
	slog.Info("Clearing chat history", "messages", s.log.Len())
	return s.log.Clear(ctx)
}

// Cancel stops an in-flight voice capture or reply.
func (s *ChatService) Cancel() bool { return s.ctrl.Cancel() }

func (s *ChatService) Status() session.Status { return s.ctrl.Status() }

func (s *ChatService) Close() { s.ctrl.Close() }
