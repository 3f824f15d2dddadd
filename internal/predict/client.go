package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/model"
)

// Predictor recommends a crop from soil and climate readings.
type Predictor interface {
	Recommend(ctx context.Context, input model.CropInput) (model.CropRecommendation, error)
}

type httpPredictor struct {
	client *http.Client
	url    string
	now    func() time.Time
}

// NewHTTPPredictor returns a Predictor backed by the prediction server's
// POST /predict endpoint.
func NewHTTPPredictor(baseURL string, timeout time.Duration) Predictor {
	return &httpPredictor{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(baseURL, "/"),
		now:    time.Now,
	}
}

type predictResponse struct {
	Status     string `json:"status"`
	Crop       string `json:"crop"`
	Prediction int    `json:"prediction"`
	Error      string `json:"error"`
}

func (p *httpPredictor) Recommend(ctx context.Context, input model.CropInput) (model.CropRecommendation, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return model.CropRecommendation{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/predict", bytes.NewReader(body))
	if err != nil {
		return model.CropRecommendation{}, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return model.CropRecommendation{}, ctx.Err()
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return model.CropRecommendation{}, fmt.Errorf("%w: prediction service did not answer in time", app_errors.ErrTimeout)
		}
		return model.CropRecommendation{}, app_errors.NewFetchError(app_errors.ErrUnreachable, 0,
			"Failed to get recommendation. Please try again.")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.CropRecommendation{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Could not read prediction response")
	}

	var data predictResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return model.CropRecommendation{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Server returned unexpected response")
	}

	if resp.StatusCode != http.StatusOK || data.Status != "success" {
		msg := data.Error
		if msg == "" {
			msg = "Server returned unexpected response"
		}
		return model.CropRecommendation{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "%s", msg)
	}
	if data.Crop == "" {
		return model.CropRecommendation{}, app_errors.NewFetchError(app_errors.ErrBadResponse, resp.StatusCode, "Server returned unexpected response")
	}

	return model.CropRecommendation{
		Crop:          data.Crop,
		Message:       fmt.Sprintf("%s is the best crop to be cultivated", data.Crop),
		RecommendedAt: p.now(),
	}, nil
}
