package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "agribrain/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups the per-flow handlers mounted by NewRouter.
type Handlers struct {
	Settings *SettingsHandler
	Chat     *ChatHandler
	Analysis *AnalysisHandler
	Weather  *WeatherHandler
	Crop     *CropHandler
	Report   *ReportHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		// Every flow is bounded by its own pending timeout; this is the outer
		// limit for a request stuck anywhere else.
		r.Use(middleware.Timeout(requestTimeout))

		// --- Settings & sessions ---
		r.Get("/settings", h.Settings.GetSettings)
		r.Post("/settings", h.Settings.UpdateSettings)
		r.Get("/sessions", h.Settings.GetSessions)
		r.Post("/sessions/{kind}/cancel", h.Settings.CancelSession)

		// --- Chat ---
		r.Get("/chat/messages", h.Chat.GetMessages)
		r.Post("/chat/messages", h.Chat.SendMessage)
		r.Delete("/chat/messages", h.Chat.ClearMessages)
		r.Post("/chat/voice", h.Chat.SendVoice)

		// --- Image analysis ---
		r.Post("/analysis/upload", h.Analysis.UploadImage)
		r.Post("/analysis/snapshot", h.Analysis.Snapshot)
		r.Get("/analysis/history", h.Analysis.GetHistory)

		// --- Weather ---
		r.Get("/weather", h.Weather.GetWeather)
		r.Get("/weather/current", h.Weather.GetCurrent)
		r.Get("/weather/history", h.Weather.GetHistory)

		// --- Crops ---
		r.Post("/crops/recommend", h.Crop.Recommend)
		r.Get("/crops/history", h.Crop.GetHistory)

		// --- Reports ---
		r.Get("/reports/summary", h.Report.GetSummary)
	})

	return r
}
