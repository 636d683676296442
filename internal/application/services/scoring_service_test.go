package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

func TestBudgetMatch_Tiers(t *testing.T) {
	profile := testProfile() // maxPrice 400k, flexibility 10%

	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"well under budget", 200_000, 100},
		{"moderate utilization", 300_000, 90},
		{"near ceiling", 380_000, 80},
		{"at ceiling", 400_000, 80},
		{"within flexibility", 420_000, 65}, // 5% over: 70 - 5
		{"beyond flexibility", 450_000, 0},  // 12.5% over
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetMatch(profile, testProperty("p", tt.price))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBudgetMatch_NoBudgetScoresZero(t *testing.T) {
	profile := testProfile()
	profile.PropertyPreferences.BudgetConstraints.MaxPrice = 0

	assert.Equal(t, 0.0, BudgetMatch(profile, testProperty("p", 100_000)))
}

func TestBudgetMatch_MonotoneInPrice(t *testing.T) {
	profile := testProfile()

	prev := 101.0
	for _, price := range []float64{150_000, 290_000, 370_000, 410_000, 439_000, 500_000} {
		got := BudgetMatch(profile, testProperty("p", price))
		assert.LessOrEqual(t, got, prev, "price %v", price)
		prev = got
	}
}

func TestLocationMatch_NoPreferredRegionsIsNeutral(t *testing.T) {
	profile := testProfile()
	profile.LocationPreferences.PreferredRegions = nil

	property := testProperty("p", 300_000)
	property.Location.ProximityScores = entities.ProximityScores{}

	assert.Equal(t, 70.0, LocationMatch(profile, property))
}

func TestLocationMatch_RegionAndProximity(t *testing.T) {
	profile := testProfile()
	property := testProperty("p", 300_000)

	// Perfect proximity in a preferred region maxes out.
	property.Location.ProximityScores = entities.ProximityScores{
		PublicTransport: 10, Schools: 10, Shopping: 10,
		Healthcare: 10, Recreation: 10, Nightlife: 10, Nature: 10,
	}
	assert.Equal(t, 100.0, LocationMatch(profile, property))

	// Region matching is case-insensitive.
	property.BasicInfo.Region = "dublin"
	assert.Equal(t, 100.0, LocationMatch(profile, property))

	// Wrong region with zero proximity scores nothing.
	property.BasicInfo.Region = "Cork"
	property.Location.ProximityScores = entities.ProximityScores{}
	assert.Equal(t, 0.0, LocationMatch(profile, property))
}

func TestLocationMatch_NoWeightsHalfNeutral(t *testing.T) {
	profile := testProfile()
	profile.LocationPreferences.ProximityFactors = entities.ProximityWeights{}

	// Region matches, amenity preference unexpressed: 30 + 35.
	assert.Equal(t, 65.0, LocationMatch(profile, testProperty("p", 300_000)))
}

func TestPropertyMatch_FullAlignment(t *testing.T) {
	// Fixture matches type, size, both styles, outdoor space:
	// 25+25+15+15+10+5+5 = 100.
	got := PropertyMatch(testProfile(), testProperty("p", 300_000))
	assert.Equal(t, 100.0, got)
}

func TestPropertyMatch_PartialAlignment(t *testing.T) {
	profile := testProfile()
	property := testProperty("p", 300_000)

	property.BasicInfo.PropertyType = entities.TypePenthouse // -25
	property.BasicInfo.Bedrooms = 5                          // outside 2-4, -25
	property.Features.ArchitecturalStyle = entities.ArchVictorian
	property.Features.InteriorStyle = entities.InteriorBohemian
	property.Features.OutdoorSpace = entities.OutdoorRooftop

	// Bathrooms and square meters still qualify: 15+15.
	assert.Equal(t, 30.0, PropertyMatch(profile, property))
}

func TestLifestyleMatch_Deltas(t *testing.T) {
	profile := testProfile()
	property := testProperty("p", 300_000)

	// Neutral profile: no lifestyle rule fires.
	assert.Equal(t, 50.0, LifestyleMatch(profile, property))

	profile.LifestyleFactors.WorkFromHome = true // +15, bedrooms >= 2
	profile.LifestyleFactors.PetOwner = true     // +10, pet friendly
	assert.Equal(t, 75.0, LifestyleMatch(profile, property))

	property.Features.PetFriendly = false // -20 instead
	assert.Equal(t, 45.0, LifestyleMatch(profile, property))
}

func TestLifestyleMatch_PrivacyAndSustainability(t *testing.T) {
	profile := testProfile()
	profile.LifestyleFactors.PrivacyImportance = 8
	profile.LifestyleFactors.SustainabilityImportance = 9

	property := testProperty("p", 300_000)
	property.Features.EnergyRating = entities.EnergyA1

	// 50 + 10 (quiet) + 100*0.2 (A1) = 80.
	assert.Equal(t, 80.0, LifestyleMatch(profile, property))

	property.Location.NoiseLevel = entities.NoiseBusy
	// 50 - 15 + 20 = 55.
	assert.Equal(t, 55.0, LifestyleMatch(profile, property))
}

func TestInvestmentMatch_NilGoalsIsNeutral(t *testing.T) {
	scorer := NewScoringService(nil)

	got := scorer.InvestmentMatch(context.Background(), testProfile(), testProperty("p", 300_000))
	assert.Equal(t, 50.0, got)
}

func TestInvestmentMatch_StrongInvestmentCase(t *testing.T) {
	scorer := NewScoringService(nil)

	profile := testProfile()
	profile.InvestmentGoals = &entities.InvestmentGoals{
		InvestmentProperty: true,
		RentalPotential:    true,
		ExpectedHoldPeriod: entities.Hold5To10Years,
		RiskTolerance:      entities.RiskAggressive,
	}

	property := testProperty("p", 300_000)
	property.MarketData.RentalYield = 0.06
	property.MarketData.PriceAppreciation.OneYear = 0.12

	// yield 30 + appreciation 25 + rising 15 + aggressive 15 = 85.
	got := scorer.InvestmentMatch(context.Background(), profile, property)
	assert.Equal(t, 85.0, got)
}

func TestInvestmentMatch_UnderConstructionVsHoldPeriod(t *testing.T) {
	scorer := NewScoringService(nil)

	profile := testProfile()
	profile.InvestmentGoals = &entities.InvestmentGoals{
		ExpectedHoldPeriod: entities.Hold10Plus,
		RiskTolerance:      entities.RiskAggressive,
	}

	property := testProperty("p", 300_000)
	property.BasicInfo.DevelopmentStage = entities.StageUnderConstruction

	longHold := scorer.InvestmentMatch(context.Background(), profile, property)

	profile.InvestmentGoals.ExpectedHoldPeriod = entities.Hold1To2Years
	shortHold := scorer.InvestmentMatch(context.Background(), profile, property)

	assert.Equal(t, 15.0, longHold-shortHold)
}

func TestMarketOpportunity_UnderpricedRisingArea(t *testing.T) {
	markets := stubMarkets{
		"Dublin": {Region: "Dublin", AveragePrice: 450_000},
	}
	scorer := NewScoringService(markets)

	property := testProperty("p", 380_000)
	// ratio 0.84 +20, rising +15, 3yr capped contribution +15: clamps at 100.
	got := scorer.MarketOpportunity(context.Background(), property)
	assert.Equal(t, 100.0, got)
}

func TestMarketOpportunity_NoBenchmarkStaysNeutral(t *testing.T) {
	scorer := NewScoringService(nil)

	property := testProperty("p", 380_000)
	property.MarketData.AverageAreaPrice = 0
	property.MarketData.MarketTrend = entities.TrendStable
	property.MarketData.PriceAppreciation.ThreeYear = 0
	property.MarketData.TimeOnMarket = 10

	// 50 base + 5 fresh listing; no price-ratio term without a benchmark.
	got := scorer.MarketOpportunity(context.Background(), property)
	assert.Equal(t, 55.0, got)
}

func TestMarketOpportunity_FallsBackToRecordAverage(t *testing.T) {
	scorer := NewScoringService(stubMarkets{})

	property := testProperty("p", 380_000)
	property.MarketData.AverageAreaPrice = 300_000 // ratio 1.27, -10
	property.MarketData.MarketTrend = entities.TrendStable
	property.MarketData.PriceAppreciation.ThreeYear = 0
	property.MarketData.TimeOnMarket = 60

	got := scorer.MarketOpportunity(context.Background(), property)
	assert.Equal(t, 40.0, got)
}

func TestAssessRisk_AdditiveFactors(t *testing.T) {
	markets := stubMarkets{
		"Dublin": {Region: "Dublin", AveragePrice: 300_000},
	}
	scorer := NewScoringService(markets)

	property := testProperty("p", 400_000) // > 1.3x average: +2
	property.BasicInfo.DevelopmentStage = entities.StagePlanning
	property.MarketData.MarketTrend = entities.TrendDeclining
	property.MarketData.TimeOnMarket = 400

	// 3 + 2 + 2 + 2 = 9.
	assert.Equal(t, 9.0, scorer.AssessRisk(context.Background(), property))
}

func TestAssessRisk_LowRiskProperty(t *testing.T) {
	scorer := NewScoringService(nil)

	assert.Equal(t, 0.0, scorer.AssessRisk(context.Background(), testProperty("p", 300_000)))
}

func TestSubScores_OverallWeighting(t *testing.T) {
	scores := SubScores{Budget: 100, Location: 100, Property: 100, Lifestyle: 100, Investment: 100, Market: 100}
	assert.Equal(t, 100.0, scores.Overall())

	scores = SubScores{Budget: 80, Location: 60, Property: 70, Lifestyle: 50, Investment: 40, Market: 40}
	// 20 + 12 + 14 + 7.5 + 4 + 4 = 61.5
	assert.InDelta(t, 61.5, scores.Overall(), 1e-9)
}
