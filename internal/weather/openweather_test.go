package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
)

const londonPayload = `{
	"weather": [{"id": 500, "main": "Rain", "description": "light rain"}],
	"main": {"temp": 14.6, "feels_like": 13.2, "humidity": 82, "pressure": 1012},
	"wind": {"speed": 5},
	"sys": {"country": "GB"},
	"name": "London"
}`

func TestWindSpeedKmh(t *testing.T) {
	cases := map[float64]int{
		0:    0,
		1:    4,
		5:    18,
		3.6:  13,
		10.2: 37,
	}
	for mps, kmh := range cases {
		assert.Equal(t, kmh, WindSpeedKmh(mps), "%v m/s", mps)
	}
}

func TestConditionIcon(t *testing.T) {
	assert.Equal(t, "🌧️", ConditionIcon("Rain"))
	assert.Equal(t, "🌤️", ConditionIcon("Haze"))
}

func TestOpenWeatherProvider_Current(t *testing.T) {
	var captured url.Values
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		capturedPath = r.URL.Path

		switch r.URL.Query().Get("q") {
		case "Atlantis":
			w.WriteHeader(http.StatusNotFound)
			_, err := w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			assert.NoError(t, err)
		case "Garbage":
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{not json`))
			assert.NoError(t, err)
		case "Partial":
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(`{"name":"Partial"}`))
			assert.NoError(t, err)
		case "Locked":
			w.WriteHeader(http.StatusUnauthorized)
			_, err := w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
			assert.NoError(t, err)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte(londonPayload))
			assert.NoError(t, err)
		}
	}))
	defer server.Close()

	provider := NewOpenWeatherProvider(server.URL, "secret-key", 2*time.Second)
	ctx := context.Background()

	t.Run("By city", func(t *testing.T) {
		snap, err := provider.Current(ctx, model.Location{City: "London"})
		require.NoError(t, err)

		assert.Equal(t, "/weather", capturedPath)
		assert.Equal(t, "London", captured.Get("q"))
		assert.Equal(t, "metric", captured.Get("units"))
		assert.Equal(t, "secret-key", captured.Get("appid"))
		assert.Empty(t, captured.Get("lat"))

		assert.Equal(t, 15, snap.Temperature)
		assert.Equal(t, 13, snap.FeelsLike)
		assert.Equal(t, 82, snap.Humidity)
		assert.Equal(t, 18, snap.WindSpeedKmh)
		assert.Equal(t, 1012, snap.PressureHPa)
		assert.Equal(t, "Rain", snap.Condition)
		assert.Equal(t, "🌧️", snap.Icon)
		assert.Equal(t, "London", snap.City)
		assert.Equal(t, "GB", snap.Country)
		assert.False(t, snap.FetchedAt.IsZero())
	})

	t.Run("By coordinates", func(t *testing.T) {
		lat, lon := 51.5072, -0.1276
		_, err := provider.Current(ctx, model.Location{Lat: &lat, Lon: &lon})
		require.NoError(t, err)
		assert.Equal(t, "51.5072", captured.Get("lat"))
		assert.Equal(t, "-0.1276", captured.Get("lon"))
		assert.Empty(t, captured.Get("q"))
	})

	t.Run("City not found", func(t *testing.T) {
		_, err := provider.Current(ctx, model.Location{City: "Atlantis"})
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrNetwork)
		assert.ErrorIs(t, err, app_errors.ErrCityNotFound)
		assert.Equal(t, "City not found", err.Error())
	})

	t.Run("Malformed payload", func(t *testing.T) {
		_, err := provider.Current(ctx, model.Location{City: "Garbage"})
		assert.ErrorIs(t, err, app_errors.ErrBadResponse)

		_, err = provider.Current(ctx, model.Location{City: "Partial"})
		assert.ErrorIs(t, err, app_errors.ErrBadResponse)
	})

	t.Run("Other non-200", func(t *testing.T) {
		_, err := provider.Current(ctx, model.Location{City: "Locked"})
		assert.ErrorIs(t, err, app_errors.ErrBadResponse)
		assert.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("No location", func(t *testing.T) {
		_, err := provider.Current(ctx, model.Location{})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})
}

func TestOpenWeatherProvider_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	provider := NewOpenWeatherProvider(serverURL, "k", time.Second)
	_, err := provider.Current(context.Background(), model.Location{City: "London"})
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrNetwork)
	assert.ErrorIs(t, err, app_errors.ErrUnreachable)
}

func TestOpenWeatherProvider_ClientTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	provider := NewOpenWeatherProvider(server.URL, "k", 20*time.Millisecond)
	_, err := provider.Current(context.Background(), model.Location{City: "London"})
	assert.ErrorIs(t, err, app_errors.ErrTimeout)
}
