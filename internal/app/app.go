package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"agribrain/backend/internal/api"
	"agribrain/backend/internal/capture"
	"agribrain/backend/internal/config"
	"agribrain/backend/internal/database"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/predict"
	"agribrain/backend/internal/repository"
	"agribrain/backend/internal/resolver"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
	"agribrain/backend/internal/weather"
)

// requestTimeout is the outer bound for any API request.
const requestTimeout = 60 * time.Second

// App holds the wired services and the HTTP server.
type App struct {
	Config *config.Config
	DB     *sql.DB
	Redis  *redis.Client
	Server *http.Server

	Devices *capture.DeviceManager
	// Camera is the host camera used by CLI analysis; it reports
	// ErrUnsupported when CAMERA_COMMAND is unset.
	Camera *capture.Camera

	Settings *service.SettingsService
	Chat     *service.ChatService
	Analysis *service.AnalysisService
	Weather  *service.WeatherService
	Crop     *service.CropService
	Report   *service.ReportService
}

// Run wires the application from cfg and serves the API until SIGINT or
// SIGTERM.
func Run(cfg *config.Config) error {
	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Serve(ctx)
}

// NewApp opens storage and wires every flow. The settings table always lives
// in SQLite; HISTORY_BACKEND only selects where the histories are kept.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")

	a := &App{Config: cfg, DB: db}
	ctx := context.Background()

	store, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Settings = service.NewSettingsService(db)
	settings, err := a.Settings.InitAndGet(ctx, cfg.DefaultCity)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize application settings: %w", err)
	}
	slog.Info("Loaded application settings", "default_city", settings.DefaultCity)

	if err := a.wireServices(ctx, store); err != nil {
		a.Close()
		return nil, err
	}

	handlers := api.Handlers{
		Settings: api.NewSettingsHandler(a.Settings, a.sessions()),
		Chat:     api.NewChatHandler(a.Chat),
		Analysis: api.NewAnalysisHandler(a.Analysis),
		Weather:  api.NewWeatherHandler(a.Weather),
		Crop:     api.NewCropHandler(a.Crop),
		Report:   api.NewReportHandler(a.Report),
	}

	a.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           api.NewRouter(handlers, requestTimeout),
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return a, nil
}

func (a *App) openStore(ctx context.Context) (repository.KVStore, error) {
	switch strings.ToLower(a.Config.HistoryBackend) {
	case "", config.BackendSQLite:
		return repository.NewSQLiteStore(a.DB), nil
	case config.BackendRedis:
		a.Redis = redis.NewClient(&redis.Options{Addr: a.Config.RedisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := a.Redis.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", a.Config.RedisAddr, err)
		}
		slog.Info("Successfully connected to Redis.", "addr", a.Config.RedisAddr)
		return repository.NewRedisStore(a.Redis, a.Config.RedisPrefix), nil
	case config.BackendMemory:
		slog.Warn("History is kept in memory and will be lost on restart.")
		return repository.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", a.Config.HistoryBackend)
	}
}

func (a *App) wireServices(ctx context.Context, store repository.KVStore) error {
	cfg := a.Config
	logTransition := func(kind string, from, to session.State) {
		slog.Debug("Session state changed", "session", kind, "from", from, "to", to)
	}
	mockOpts := session.Options{Timeout: cfg.PendingTimeout, OnTransition: logTransition}

	chatLog, err := history.Open[model.Message](ctx, store, history.KeyChat)
	if err != nil {
		return err
	}
	analysisLog, err := history.Open[model.AnalysisRecord](ctx, store, history.KeyAnalysis)
	if err != nil {
		return err
	}
	weatherLog, err := history.Open[model.WeatherSnapshot](ctx, store, history.KeyWeather)
	if err != nil {
		return err
	}
	cropLog, err := history.Open[model.CropRecommendation](ctx, store, history.KeyCrop)
	if err != nil {
		return err
	}

	a.Devices = capture.NewDeviceManager()
	a.Camera = capture.NewCamera(a.Devices, capture.ParseCameraCommand(cfg.CameraCommand), service.KindAnalysis)

	a.Chat = service.NewChatService(chatLog,
		resolver.Delayed[string, string](cfg.ChatDelay, resolver.NewDefaultKeyword()),
		a.Devices, mockOpts)

	a.Analysis = service.NewAnalysisService(analysisLog,
		resolver.Delayed[capture.Image, model.AnalysisResult](cfg.AnalysisDelay, resolver.NewAnalyzer(nil)),
		mockOpts)

	a.Report = service.NewReportService(
		resolver.Delayed[struct{}, model.Report](cfg.ReportDelay, resolver.Reporter{}),
		mockOpts)

	// Network flows are bounded by their HTTP client; the session budget is
	// slightly longer so the client's own timeout is what gets reported.
	if cfg.WeatherAPIKey == "" {
		slog.Warn("WEATHER_API_KEY is not set, weather requests will be rejected upstream.")
	}
	provider := weather.NewOpenWeatherProvider(cfg.WeatherAPIURL, cfg.WeatherAPIKey, cfg.WeatherTimeout)
	defaultCity := func(ctx context.Context) string { return a.Settings.DefaultCity(ctx, cfg.DefaultCity) }
	a.Weather = service.NewWeatherService(weatherLog, provider, defaultCity,
		session.Options{Timeout: cfg.WeatherTimeout + time.Second, OnTransition: logTransition})

	predictor := predict.NewHTTPPredictor(cfg.PredictURL, cfg.PredictTimeout)
	a.Crop = service.NewCropService(cropLog, predictor,
		session.Options{Timeout: cfg.PredictTimeout + time.Second, OnTransition: logTransition})

	return nil
}

func (a *App) sessions() map[string]interfaces.SessionReporter {
	return map[string]interfaces.SessionReporter{
		service.KindChat:     a.Chat,
		service.KindAnalysis: a.Analysis,
		service.KindWeather:  a.Weather,
		service.KindCrop:     a.Crop,
		service.KindReport:   a.Report,
	}
}

// Serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", a.Config.AppPort)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.Server.Shutdown(shutdownCtx)
}

// Close disposes every session and releases storage connections.
func (a *App) Close() {
	if a.Chat != nil {
		a.Chat.Close()
	}
	if a.Analysis != nil {
		a.Analysis.Close()
	}
	if a.Weather != nil {
		a.Weather.Close()
	}
	if a.Crop != nil {
		a.Crop.Close()
	}
	if a.Report != nil {
		a.Report.Close()
	}
	if a.Camera != nil {
		a.Camera.Stop()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}

func logConfigSource() {
	if file := config.ConfigFileUsed(); file != "" {
		slog.Info("Successfully loaded configuration from file.", "file", file)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// SetupLogger installs a JSON slog handler at the given level as the default
// logger.
func SetupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
