package evaluation

import (
	"context"
	"time"

	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// GoldenScenario is a labeled profile with the property IDs a human judge
// considered a good match for it.
type GoldenScenario struct {
	ID         string                         `json:"id"`
	Profile    entities.UserPreferenceProfile `json:"profile"`
	Candidates []entities.PropertyRecord      `json:"candidates"`
	RelevantID []string                       `json:"relevant_property_ids"`
	Difficulty string                         `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the evaluation outcome for a single scenario.
type EvalResult struct {
	ScenarioID  string
	RecallAt10  float64
	MRRAt10     float64
	NDCGAt10    float64
	ResultCount int
	Excluded    int
	Latency     time.Duration
}

// EvalSummary holds aggregate metrics across all golden scenarios.
type EvalSummary struct {
	TotalScenarios int
	AvgRecallAt10  float64
	AvgMRRAt10     float64
	AvgNDCGAt10    float64
	AvgLatency     time.Duration
	Results        []EvalResult
}

// Runner scores golden scenarios through the recommendation service and
// aggregates ranking quality metrics.
type Runner struct {
	service *services.RecommendationService
}

func NewRunner(service *services.RecommendationService) *Runner {
	return &Runner{service: service}
}

func (r *Runner) Run(ctx context.Context, scenarios []GoldenScenario) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalScenarios: len(scenarios),
		Results:        make([]EvalResult, 0, len(scenarios)),
	}

	var totalLatency time.Duration
	for _, sc := range scenarios {
		start := time.Now()
		result, err := r.service.GenerateRecommendations(ctx, sc.Profile, sc.Candidates, services.GenerateOptions{
			Limit: 10,
		})
		latency := time.Since(start)
		if err != nil {
			return nil, err
		}

		ranked := make([]string, len(result.Recommendations))
		for i, rec := range result.Recommendations {
			ranked[i] = rec.PropertyID
		}

		res := EvalResult{
			ScenarioID:  sc.ID,
			RecallAt10:  RecallAtK(sc.RelevantID, ranked, 10),
			MRRAt10:     MRRAtK(sc.RelevantID, ranked, 10),
			NDCGAt10:    NDCGAtK(sc.RelevantID, ranked, 10),
			ResultCount: len(result.Recommendations),
			Excluded:    len(result.Excluded),
			Latency:     latency,
		}
		summary.Results = append(summary.Results, res)

		summary.AvgRecallAt10 += res.RecallAt10
		summary.AvgMRRAt10 += res.MRRAt10
		summary.AvgNDCGAt10 += res.NDCGAt10
		totalLatency += latency
	}

	if len(scenarios) > 0 {
		n := float64(len(scenarios))
		summary.AvgRecallAt10 /= n
		summary.AvgMRRAt10 /= n
		summary.AvgNDCGAt10 /= n
		summary.AvgLatency = totalLatency / time.Duration(len(scenarios))
	}

	return summary, nil
}
