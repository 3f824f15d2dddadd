package service

import (
	"context"
	"log/slog"
	"sync"

	"agribrain/backend/internal/capture"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/session"
	"agribrain/backend/internal/weather"
)

// WeatherQuery is what the client knows about its position: a typed city,
// coordinates from the geolocation API, or the reason positioning failed.
type WeatherQuery struct {
	City      string   `json:"city,omitempty"`
	Lat       *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon       *float64 `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
	GeoStatus string   `json:"geo_status,omitempty" validate:"omitempty,oneof=denied unavailable unsupported"`
}

// CityFunc returns the city used when the client provides no position.
type CityFunc func(ctx context.Context) string

type WeatherService struct {
	ctrl        *session.Controller[model.Location, model.WeatherSnapshot]
	log         *history.Log[model.WeatherSnapshot]
	defaultCity CityFunc

	mu   sync.RWMutex
	last *model.WeatherSnapshot
}

// NewWeatherService wires the weather controller. The last snapshot survives
// restarts through the weather history.
func NewWeatherService(
	log *history.Log[model.WeatherSnapshot],
	provider weather.Provider,
	defaultCity CityFunc,
	opts session.Options,
) *WeatherService {
	s := &WeatherService{log: log, defaultCity: defaultCity}
	if last, ok := log.Last(); ok {
		s.last = &last
	}

	resolver := session.ResolverFunc[model.Location, model.WeatherSnapshot](provider.Current)
	s.ctrl = session.New[model.Location, model.WeatherSnapshot](KindWeather, resolver, opts)
	s.ctrl.OnResolved(func(ctx context.Context, _ model.Location, snap model.WeatherSnapshot) error {
		if err := s.log.Append(ctx, snap); err != nil {
			return err
		}
		s.mu.Lock()
		s.last = &snap
		s.mu.Unlock()
		return nil
	})
	return s
}

// Fetch resolves the weather for the query. On failure the previous snapshot,
// if any, is returned alongside the error and stays current.
func (s *WeatherService) Fetch(ctx context.Context, q *WeatherQuery) (*model.WeatherSnapshot, error) {
	fallback := ""
	if s.defaultCity != nil {
		fallback = s.defaultCity(ctx)
	}
	geo := capture.Geo{
		Locator:  capture.ClientPosition{Lat: q.Lat, Lon: q.Lon, City: q.City, Status: q.GeoStatus},
		Fallback: fallback,
	}

	snap, err := s.ctrl.Run(ctx, geo)
	if err != nil {
		last, _ := s.Current(ctx)
		slog.Warn("Weather fetch failed, keeping last snapshot", "error", err, "has_last", last != nil)
		return last, err
	}
	return &snap, nil
}

// Current returns the most recent successful snapshot.
func (s *WeatherService) Current(_ context.Context) (*model.WeatherSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil, false
	}
	snap := *s.last
	return &snap, true
}

func (s *WeatherService) History(_ context.Context) ([]model.WeatherSnapshot, error) {
	return s.log.Entries(), nil
}

func (s *WeatherService) Cancel() bool { return s.ctrl.Cancel() }

func (s *WeatherService) Status() session.Status { return s.ctrl.Status() }

func (s *WeatherService) Close() { s.ctrl.Close() }
