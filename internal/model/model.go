package model

import (
	"time"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message stores a single chat message. Timestamp is unix milliseconds.
type Message struct {
	Text      string `json:"text"`
	Sender    Sender `json:"sender"`
	Timestamp int64  `json:"timestamp"`
}

// AnalysisResult is the outcome of one crop image analysis.
type AnalysisResult struct {
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
	Disease    *string `json:"disease,omitempty"`
}

// AnalysisRecord is the history entry kept for each analyzed image.
type AnalysisRecord struct {
	ID         string         `json:"id"`
	Result     AnalysisResult `json:"result"`
	Source     string         `json:"source"`
	MIMEType   string         `json:"mime_type"`
	SizeBytes  int64          `json:"size_bytes"`
	AnalyzedAt time.Time      `json:"analyzed_at"`
}

// WeatherSnapshot holds the values derived from the most recent successful
// weather fetch.
type WeatherSnapshot struct {
	Temperature  int       `json:"temperature"`
	FeelsLike    int       `json:"feels_like"`
	Humidity     int       `json:"humidity"`
	WindSpeedKmh int       `json:"wind_speed_kmh"`
	PressureHPa  int       `json:"pressure_hpa"`
	Condition    string    `json:"condition"`
	Icon         string    `json:"icon"`
	City         string    `json:"city"`
	Country      string    `json:"country,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Location is either a coordinate pair or a manually entered city.
type Location struct {
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
	City   string   `json:"city,omitempty"`
	Manual bool     `json:"manual"`
}

// HasCoordinates reports whether the location carries a coordinate pair.
func (l Location) HasCoordinates() bool {
	return l.Lat != nil && l.Lon != nil
}

// CropInput is the soil and climate form submitted for a crop recommendation.
// Field names match the prediction server's JSON contract.
type CropInput struct {
	Nitrogen    *float64 `json:"Nitrogen" validate:"required,gte=0"`
	Phosphorus  *float64 `json:"Phosphorus" validate:"required,gte=0"`
	Potassium   *float64 `json:"Potassium" validate:"required,gte=0"`
	Temperature *float64 `json:"Temperature" validate:"required"`
	Humidity    *float64 `json:"Humidity" validate:"required,gte=0,lte=100"`
	Ph          *float64 `json:"Ph" validate:"required,gte=0,lte=14"`
	Rainfall    *float64 `json:"Rainfall" validate:"required,gte=0"`
}

// CropRecommendation is the result of a crop prediction.
type CropRecommendation struct {
	Crop          string    `json:"crop"`
	Message       string    `json:"message"`
	RecommendedAt time.Time `json:"recommended_at"`
}

// Report is the farm performance summary shown on the report screen.
type Report struct {
	YieldIncrease     string   `json:"yield_increase"`
	SoilQuality       string   `json:"soil_quality"`
	WaterEfficiency   string   `json:"water_efficiency"`
	PestIncidents     int      `json:"pest_incidents"`
	RevenueProjection string   `json:"revenue_projection"`
	Recommendations   []string `json:"recommendations"`
}
