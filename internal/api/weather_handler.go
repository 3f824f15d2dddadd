package api

import (
	"fmt"
	"net/http"
	"strconv"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces"
	"agribrain/backend/internal/service"
)

// WeatherHandler handles HTTP requests for the weather flow.
type WeatherHandler struct {
	service interfaces.WeatherService
}

func NewWeatherHandler(svc interfaces.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: svc}
}

// GetWeather godoc
// @Summary      Fetch weather
// @Description  Fetches the current weather for a city or a coordinate pair. Without either, the configured default city is used.
// @Description  On failure the last successful snapshot is returned in the error body.
// @Tags         Weather
// @Produce      json
// @Param        city        query     string  false  "City name"
// @Param        lat         query     number  false  "Latitude"
// @Param        lon         query     number  false  "Longitude"
// @Param        geo_status  query     string  false  "Geolocation failure reported by the browser"  Enums(denied, unavailable, unsupported)
// @Success      200         {object}  model.WeatherSnapshot
// @Failure      403         {object}  WeatherErrorResponse
// @Failure      404         {object}  WeatherErrorResponse
// @Failure      502         {object}  WeatherErrorResponse
// @Failure      504         {object}  WeatherErrorResponse
// @Router       /v1/weather [get]
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	q, err := parseWeatherQuery(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(q); err != nil {
		respondWithError(w, err)
		return
	}

	snap, err := h.service.Fetch(r.Context(), q)
	if err != nil {
		status, message := errorStatus(err)
		respondWithJSON(w, status, WeatherErrorResponse{Error: message, Last: snap})
		return
	}
	respondWithJSON(w, http.StatusOK, snap)
}

// GetCurrent godoc
// @Summary      Last weather snapshot
// @Description  Returns the most recent successful weather snapshot without fetching.
// @Tags         Weather
// @Produce      json
// @Success      200  {object}  model.WeatherSnapshot
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/weather/current [get]
func (h *WeatherHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.service.Current(r.Context())
	if !ok {
		respondWithError(w, fmt.Errorf("%w: no weather fetched yet", app_errors.ErrNotFound))
		return
	}
	respondWithJSON(w, http.StatusOK, snap)
}

// GetHistory godoc
// @Summary      Get weather history
// @Tags         Weather
// @Produce      json
// @Success      200  {array}   model.WeatherSnapshot
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/weather/history [get]
func (h *WeatherHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	snaps, err := h.service.History(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snaps)
}

func parseWeatherQuery(r *http.Request) (*service.WeatherQuery, error) {
	values := r.URL.Query()
	q := &service.WeatherQuery{
		City:      values.Get("city"),
		GeoStatus: values.Get("geo_status"),
	}
	for name, dst := range map[string]**float64{"lat": &q.Lat, "lon": &q.Lon} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a number", app_errors.ErrValidation, name)
		}
		*dst = &v
	}
	return q, nil
}
