package evaluation

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/prediction"
)

func evalProfile() entities.UserPreferenceProfile {
	return entities.UserPreferenceProfile{
		UserID: "eval-user",
		Demographics: entities.Demographics{
			AgeRange:     entities.Age26To35,
			FamilyStatus: entities.FamilySingle,
			Occupation:   entities.OccupationProfessional,
			IncomeRange:  entities.Income75to100k,
		},
		LocationPreferences: entities.LocationPreferences{
			PreferredRegions: []string{"Dublin"},
			UrbanVsRural:     entities.AreaUrban,
		},
		PropertyPreferences: entities.PropertyPreferences{
			PropertyTypes: []entities.PropertyType{entities.TypeApartment},
			SizePreferences: entities.SizePreferences{
				MinBedrooms: 1,
				MaxBedrooms: 3,
			},
			BudgetConstraints: entities.BudgetConstraints{
				MaxPrice: 400_000,
			},
			StylePreferences: entities.StylePreferences{
				OutdoorSpace: entities.OutdoorBalcony,
				Parking:      entities.ParkingStreet,
			},
		},
		LifestyleFactors: entities.LifestyleFactors{
			EntertainingFrequency: entities.EntertainRarely,
		},
	}
}

func evalProperty(id, region string, price float64) entities.PropertyRecord {
	return entities.PropertyRecord{
		PropertyID: id,
		BasicInfo: entities.BasicInfo{
			Address:          "1 Test Street",
			Region:           region,
			PropertyType:     entities.TypeApartment,
			Bedrooms:         2,
			Bathrooms:        1,
			SquareMeters:     70,
			DevelopmentStage: entities.StageCompleted,
		},
		Pricing: entities.Pricing{ListPrice: price},
		Features: entities.Features{
			ArchitecturalStyle: entities.ArchModern,
			InteriorStyle:      entities.InteriorModern,
			OutdoorSpace:       entities.OutdoorBalcony,
			Parking:            entities.ParkingStreet,
			EnergyRating:       entities.EnergyB2,
		},
		Location: entities.PropertyLocation{
			NoiseLevel: entities.NoiseModerate,
		},
		MarketData: entities.MarketData{
			MarketTrend: entities.TrendStable,
		},
	}
}

func newEvalService(t *testing.T) *services.RecommendationService {
	t.Helper()
	predictor, err := prediction.NewNetwork(services.FeatureCount, 8, services.FeatureNames, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return services.NewRecommendationService(
		services.NewValidationService(),
		services.NewFeatureExtractor(),
		services.NewScoringService(nil),
		services.NewReasoningService(),
		predictor,
	)
}

func TestRunner_AggregatesScenarioMetrics(t *testing.T) {
	runner := NewRunner(newEvalService(t))

	// The affordable in-region candidate is the relevant one and should
	// outrank the over-budget out-of-region one. The zero-priced record
	// fails validation and is excluded, not fatal.
	scenarios := []GoldenScenario{
		{
			ID:      "s1",
			Profile: evalProfile(),
			Candidates: []entities.PropertyRecord{
				evalProperty("broken", "Dublin", 0),
				evalProperty("good", "Dublin", 300_000),
				evalProperty("bad", "Sligo", 600_000),
			},
			RelevantID: []string{"good"},
			Difficulty: "easy",
		},
	}

	summary, err := runner.Run(context.Background(), scenarios)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalScenarios)
	require.Len(t, summary.Results, 1)

	res := summary.Results[0]
	assert.Equal(t, 2, res.ResultCount)
	assert.Equal(t, 1, res.Excluded)
	assert.Equal(t, 1.0, res.RecallAt10)
	assert.Equal(t, 1.0, res.MRRAt10)
	assert.Equal(t, 1.0, res.NDCGAt10)
	assert.Equal(t, 1.0, summary.AvgRecallAt10)
}

func TestValidateGoldenScenarios(t *testing.T) {
	valid := []GoldenScenario{{
		ID:         "s1",
		Profile:    evalProfile(),
		Candidates: []entities.PropertyRecord{evalProperty("p", "Dublin", 300_000)},
		RelevantID: []string{"p"},
		Difficulty: "medium",
	}}
	assert.NoError(t, ValidateGoldenScenarios(valid))

	dup := append(valid, valid[0])
	assert.Error(t, ValidateGoldenScenarios(dup))

	bad := valid
	bad[0].Difficulty = "impossible"
	assert.Error(t, ValidateGoldenScenarios(bad))
}
