package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
)

// DefaultURL is the OpenWeather current-weather API base.
const DefaultURL = "https://api.openweathermap.org/data/2.5"

// Provider fetches current conditions for a location.
type Provider interface {
	Current(ctx context.Context, loc model.Location) (model.WeatherSnapshot, error)
}

type openWeatherProvider struct {
	client *http.Client
	url    string
	apiKey string
	now    func() time.Time
}

// NewOpenWeatherProvider returns a Provider for an OpenWeather-compatible API.
// The API key stays on the server; it is only sent upstream.
func NewOpenWeatherProvider(baseURL, apiKey string, timeout time.Duration) Provider {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &openWeatherProvider{
		client: &http.Client{Timeout: timeout},
		url:    baseURL,
		apiKey: apiKey,
		now:    time.Now,
	}
}

type currentResponse struct {
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (p *openWeatherProvider) Current(ctx context.Context, loc model.Location) (model.WeatherSnapshot, error) {
	query := url.Values{}
	switch {
	case loc.HasCoordinates():
		query.Set("lat", strconv.FormatFloat(*loc.Lat, 'f', -1, 64))
		query.Set("lon", strconv.FormatFloat(*loc.Lon, 'f', -1, 64))
	case loc.City != "":
		query.Set("q", loc.City)
	default:
		return model.WeatherSnapshot{}, fmt.Errorf("%w: a city or coordinates are required", app_errors.ErrValidation)
	}
	query.Set("units", "metric")
	query.Set("appid", p.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/weather?"+query.Encode(), nil)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("could not create http request: %w", err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return model.WeatherSnapshot{}, ctx.Err()
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return model.WeatherSnapshot{}, fmt.Errorf("%w: weather service did not answer in time", app_errors.ErrTimeout)
		}
		return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrUnreachable, 0, "Weather service is unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Could not read weather response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		if resp.StatusCode == http.StatusNotFound {
			return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrCityNotFound, resp.StatusCode, "City not found")
		}
		detail := apiErr.Message
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode,
			"Weather data fetch failed (status %d): %s", resp.StatusCode, detail)
	}

	var data currentResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Malformed weather response")
	}
	if data.Main == nil || data.Wind == nil || len(data.Weather) == 0 {
		return model.WeatherSnapshot{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Incomplete weather response")
	}

	condition := data.Weather[0].Main
	return model.WeatherSnapshot{
		Temperature:  round(data.Main.Temp),
		FeelsLike:    round(data.Main.FeelsLike),
		Humidity:     round(data.Main.Humidity),
		WindSpeedKmh: WindSpeedKmh(data.Wind.Speed),
		PressureHPa:  round(data.Main.Pressure),
		Condition:    condition,
		Icon:         ConditionIcon(condition),
		City:         data.Name,
		Country:      data.Sys.Country,
		FetchedAt:    p.now(),
	}, nil
}

// WindSpeedKmh converts m/s to km/h rounded to the nearest integer.
func WindSpeedKmh(mps float64) int {
	return round(mps * 3.6)
}

// round breaks ties toward positive infinity, as the dashboard always has.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

var conditionIcons = map[string]string{
	"Clear":        "☀️",
	"Clouds":       "☁️",
	"Rain":         "🌧️",
	"Snow":         "❄️",
	"Thunderstorm": "⛈️",
	"Drizzle":      "🌦️",
	"Mist":         "🌫️",
}

// ConditionIcon returns the display icon for a weather condition.
func ConditionIcon(condition string) string {
	if icon, ok := conditionIcons[condition]; ok {
		return icon
	}
	return "🌤️"
}
