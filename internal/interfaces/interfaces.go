package interfaces

import (
	"context"
	"io"

	"agribrain/backend/internal/model"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
)

// The API layer depends on these contracts rather than on the concrete
// services, so handlers can be tested against mocks.

// SessionReporter exposes the state of one flow's session controller.
type SessionReporter interface {
	Status() session.Status
	Cancel() bool
}

// ChatService defines the contract for the chat assistant flow.
type ChatService interface {
	SessionReporter
	Send(ctx context.Context, text string) (*service.ChatExchange, error)
	SendVoice(ctx context.Context, req *service.VoiceMessageRequest) (*service.ChatExchange, error)
	History(ctx context.Context) ([]model.Message, error)
	ClearHistory(ctx context.Context) error
}

// AnalysisService defines the contract for crop image analysis.
type AnalysisService interface {
	SessionReporter
	AnalyzeUpload(ctx context.Context, filename string, size int64, r io.Reader) (*model.AnalysisRecord, error)
	AnalyzeSnapshot(ctx context.Context, req *service.SnapshotRequest) (*model.AnalysisRecord, error)
	History(ctx context.Context) ([]model.AnalysisRecord, error)
}

// WeatherService defines the contract for the weather flow.
type WeatherService interface {
	SessionReporter
	Fetch(ctx context.Context, q *service.WeatherQuery) (*model.WeatherSnapshot, error)
	Current(ctx context.Context) (*model.WeatherSnapshot, bool)
	History(ctx context.Context) ([]model.WeatherSnapshot, error)
}

// CropService defines the contract for crop recommendations.
type CropService interface {
	SessionReporter
	Recommend(ctx context.Context, input *model.CropInput) (*model.CropRecommendation, error)
	History(ctx context.Context) ([]model.CropRecommendation, error)
}

// ReportService defines the contract for the farm report summary.
type ReportService interface {
	SessionReporter
	Summary(ctx context.Context) (*model.Report, error)
}

// SettingsService defines the contract for managing dashboard settings.
type SettingsService interface {
	InitAndGet(ctx context.Context, defaultCity string) (*service.Settings, error)
	Get(ctx context.Context) (*service.Settings, error)
	Save(ctx context.Context, settings *service.Settings) error
}
