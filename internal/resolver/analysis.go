package resolver

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"agribrain/backend/internal/capture"
	"agribrain/backend/internal/model"
)

func disease(name string) *string { return &name }

// AnalysisOutcomes is the fixed set the mock analyzer picks from.
var AnalysisOutcomes = []model.AnalysisResult{
	{Status: "Healthy", Confidence: 0.94},
	{Status: "At Risk", Confidence: 0.81, Disease: disease("Potential fungal infection")},
	{Status: "Nutrient Deficiency", Confidence: 0.76, Disease: disease("Nitrogen deficiency")},
}

// Analyzer is the mock crop health backend. It picks uniformly among
// AnalysisOutcomes; results are intentionally not reproducible unless a
// seeded source is supplied.
type Analyzer struct {
	mu       sync.Mutex
	rng      *rand.Rand
	outcomes []model.AnalysisResult
}

// NewAnalyzer builds an analyzer over src. A nil src uses a time-seeded PCG.
func NewAnalyzer(src rand.Source) *Analyzer {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>17)
	}
	return &Analyzer{rng: rand.New(src), outcomes: AnalysisOutcomes}
}

func (a *Analyzer) Resolve(_ context.Context, _ capture.Image) (model.AnalysisResult, error) {
	a.mu.Lock()
	pick := a.outcomes[a.rng.IntN(len(a.outcomes))]
	a.mu.Unlock()

	if pick.Disease != nil {
		pick.Disease = disease(*pick.Disease)
	}
	return pick, nil
}
