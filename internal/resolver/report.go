package resolver

import (
	"context"

	"agribrain/backend/internal/model"
)

// Reporter serves the fixed farm report.
type Reporter struct{}

func (Reporter) Resolve(_ context.Context, _ struct{}) (model.Report, error) {
	return model.Report{
		YieldIncrease:     "15%",
		SoilQuality:       "Optimal (pH 6.8)",
		WaterEfficiency:   "20% Improvement",
		PestIncidents:     2,
		RevenueProjection: "$45,200",
		Recommendations:   []string{"Increase nitrogen levels", "Rotate crops next season"},
	}, nil
}
