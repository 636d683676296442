package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/prediction"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

func newTestRecommendationService(t *testing.T) *RecommendationService {
	t.Helper()

	predictor, err := prediction.NewNetwork(FeatureCount, 8, FeatureNames, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	markets := stubMarkets{
		"Dublin": {Region: "Dublin", AveragePrice: 450_000, MarketTrend: entities.TrendRising},
	}
	return NewRecommendationService(
		NewValidationService(),
		NewFeatureExtractor(),
		NewScoringService(markets),
		NewReasoningService(),
		predictor,
	)
}

func TestGenerateRecommendations_RanksAffordableAboveUnaffordable(t *testing.T) {
	svc := newTestRecommendationService(t)

	candidates := []entities.PropertyRecord{
		testProperty("prop-b", 450_000), // 12.5% over ceiling
		testProperty("prop-a", 380_000),
	}

	result, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 2)

	first, second := result.Recommendations[0], result.Recommendations[1]
	assert.Equal(t, "prop-a", first.PropertyID)
	assert.Equal(t, "prop-b", second.PropertyID)
	assert.Equal(t, 80, first.ScoreBreakdown.BudgetMatch)
	assert.Equal(t, 0, second.ScoreBreakdown.BudgetMatch)
	assert.Greater(t, first.OverallScore, second.OverallScore)
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	svc := newTestRecommendationService(t)

	candidates := []entities.PropertyRecord{
		testProperty("prop-1", 250_000),
		testProperty("prop-2", 390_000),
		testProperty("prop-3", 330_000),
	}

	first, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)
	second, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateRecommendations_SortedDescendingStableOnTies(t *testing.T) {
	svc := newTestRecommendationService(t)

	// Identical pricing yields identical scores; order must follow input.
	candidates := []entities.PropertyRecord{
		testProperty("tie-1", 300_000),
		testProperty("tie-2", 300_000),
		testProperty("cheap", 210_000),
		testProperty("tie-3", 300_000),
	}

	result, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)
	require.Len(t, result.Recommendations, 4)

	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].OverallScore, result.Recommendations[i].OverallScore)
	}

	var tieOrder []string
	for _, rec := range result.Recommendations {
		switch rec.PropertyID {
		case "tie-1", "tie-2", "tie-3":
			tieOrder = append(tieOrder, rec.PropertyID)
		}
	}
	assert.Equal(t, []string{"tie-1", "tie-2", "tie-3"}, tieOrder)
}

func TestGenerateRecommendations_LimitTruncates(t *testing.T) {
	svc := newTestRecommendationService(t)

	candidates := make([]entities.PropertyRecord, 0, 50)
	for i := 0; i < 50; i++ {
		candidates = append(candidates, testProperty(fmt.Sprintf("prop-%02d", i), 250_000+float64(i)*1_000))
	}

	result, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, GenerateOptions{Limit: 5})
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 5)
	assert.Empty(t, result.Excluded)
	assert.False(t, result.TimedOut)
}

func TestGenerateRecommendations_InvalidCandidateExcludedNotFatal(t *testing.T) {
	svc := newTestRecommendationService(t)

	bad := testProperty("bad", 300_000)
	bad.Pricing.ListPrice = 0
	bad.BasicInfo.SquareMeters = 0

	candidates := []entities.PropertyRecord{
		testProperty("good", 300_000),
		bad,
	}

	result, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "good", result.Recommendations[0].PropertyID)

	require.Len(t, result.Excluded, 1)
	assert.Equal(t, "bad", result.Excluded[0].PropertyID)
	assert.GreaterOrEqual(t, len(result.Excluded[0].Violations), 2)
}

func TestGenerateRecommendations_InvalidProfileFails(t *testing.T) {
	svc := newTestRecommendationService(t)

	_, err := svc.GenerateRecommendations(context.Background(), entities.UserPreferenceProfile{}, nil, DefaultGenerateOptions())
	require.Error(t, err)

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGenerateRecommendations_EmptyCandidates(t *testing.T) {
	svc := newTestRecommendationService(t)

	result, err := svc.GenerateRecommendations(context.Background(), testProfile(), nil, DefaultGenerateOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.Empty(t, result.Excluded)
	assert.False(t, result.TimedOut)
}

func TestGenerateRecommendations_CancelledContextReturnsPartial(t *testing.T) {
	svc := newTestRecommendationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []entities.PropertyRecord{
		testProperty("prop-1", 250_000),
		testProperty("prop-2", 300_000),
	}

	result, err := svc.GenerateRecommendations(ctx, testProfile(), candidates, DefaultGenerateOptions())
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Empty(t, result.Recommendations)
}

func TestGenerateRecommendations_ScoreAndConfidenceRanges(t *testing.T) {
	svc := newTestRecommendationService(t)

	profile := testProfile()
	profile.InvestmentGoals = &entities.InvestmentGoals{
		RentalPotential:    true,
		ExpectedHoldPeriod: entities.Hold5To10Years,
		RiskTolerance:      entities.RiskModerate,
	}

	candidates := []entities.PropertyRecord{
		testProperty("prop-1", 100_000),
		testProperty("prop-2", 399_000),
		testProperty("prop-3", 1_900_000),
	}

	result, err := svc.GenerateRecommendations(context.Background(), profile, candidates, DefaultGenerateOptions())
	require.NoError(t, err)

	for _, rec := range result.Recommendations {
		assert.GreaterOrEqual(t, rec.OverallScore, 0)
		assert.LessOrEqual(t, rec.OverallScore, 100)
		assert.GreaterOrEqual(t, rec.Confidence, 0)
		assert.LessOrEqual(t, rec.Confidence, 100)
		for _, sub := range []int{
			rec.ScoreBreakdown.BudgetMatch,
			rec.ScoreBreakdown.LocationMatch,
			rec.ScoreBreakdown.PropertyMatch,
			rec.ScoreBreakdown.LifestyleMatch,
			rec.ScoreBreakdown.InvestmentMatch,
			rec.ScoreBreakdown.MarketOpportunity,
		} {
			assert.GreaterOrEqual(t, sub, 0)
			assert.LessOrEqual(t, sub, 100)
		}
	}
}

func TestGenerateRecommendations_ReasonsToggle(t *testing.T) {
	svc := newTestRecommendationService(t)
	candidates := []entities.PropertyRecord{testProperty("prop-1", 250_000)}

	withReasons, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, GenerateOptions{Limit: 10, IncludeReasons: true})
	require.NoError(t, err)
	require.Len(t, withReasons.Recommendations, 1)
	assert.NotEmpty(t, withReasons.Recommendations[0].Reasoning)
	assert.NotEmpty(t, withReasons.Recommendations[0].Reasons)

	withoutReasons, err := svc.GenerateRecommendations(context.Background(), testProfile(), candidates, GenerateOptions{Limit: 10, IncludeReasons: false})
	require.NoError(t, err)
	require.Len(t, withoutReasons.Recommendations, 1)
	assert.Nil(t, withoutReasons.Recommendations[0].Reasoning)
	assert.Empty(t, withoutReasons.Recommendations[0].Reasons)

	// Numeric outputs are unaffected by the toggle.
	assert.Equal(t, withReasons.Recommendations[0].OverallScore, withoutReasons.Recommendations[0].OverallScore)
	assert.Equal(t, withReasons.Recommendations[0].ScoreBreakdown, withoutReasons.Recommendations[0].ScoreBreakdown)
}
