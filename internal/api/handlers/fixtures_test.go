package handlers_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/propie/recommendation-engine/internal/adapters/memory"
	"github.com/propie/recommendation-engine/internal/application/services"
	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/prediction"
)

func handlerProfile() entities.UserPreferenceProfile {
	return entities.UserPreferenceProfile{
		UserID: "user-1",
		Demographics: entities.Demographics{
			AgeRange:     entities.Age26To35,
			FamilyStatus: entities.FamilyCouple,
			Occupation:   entities.OccupationProfessional,
			IncomeRange:  entities.Income100to150k,
		},
		LocationPreferences: entities.LocationPreferences{
			PreferredRegions: []string{"Dublin"},
			UrbanVsRural:     entities.AreaUrban,
		},
		PropertyPreferences: entities.PropertyPreferences{
			PropertyTypes: []entities.PropertyType{entities.TypeApartment, entities.TypeHouse},
			SizePreferences: entities.SizePreferences{
				MinBedrooms: 1,
				MaxBedrooms: 4,
			},
			BudgetConstraints: entities.BudgetConstraints{
				MinPrice: 200_000,
				MaxPrice: 400_000,
			},
			StylePreferences: entities.StylePreferences{
				OutdoorSpace: entities.OutdoorBalcony,
				Parking:      entities.ParkingPrivate,
			},
		},
		LifestyleFactors: entities.LifestyleFactors{
			EntertainingFrequency: entities.EntertainSometimes,
		},
	}
}

func handlerProperty(id string, price float64) entities.PropertyRecord {
	return entities.PropertyRecord{
		PropertyID: id,
		BasicInfo: entities.BasicInfo{
			Address:          "12 Quay Road",
			Region:           "Dublin",
			PropertyType:     entities.TypeApartment,
			Bedrooms:         2,
			Bathrooms:        1,
			SquareMeters:     80,
			DevelopmentStage: entities.StageCompleted,
		},
		Pricing: entities.Pricing{ListPrice: price},
		Features: entities.Features{
			ArchitecturalStyle: entities.ArchModern,
			InteriorStyle:      entities.InteriorModern,
			OutdoorSpace:       entities.OutdoorBalcony,
			Parking:            entities.ParkingPrivate,
			EnergyRating:       entities.EnergyA3,
		},
		Location: entities.PropertyLocation{
			NoiseLevel: entities.NoiseModerate,
		},
		MarketData: entities.MarketData{
			MarketTrend: entities.TrendStable,
		},
	}
}

func newRecommendationService(t *testing.T) *services.RecommendationService {
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

func newInteractionService(t *testing.T) *services.InteractionService {
	t.Helper()
	predictor, err := prediction.NewNetwork(services.FeatureCount, 8, services.FeatureNames, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return services.NewInteractionService(
		memory.NewInteractionStore(),
		nil,
		predictor,
		services.NewFeatureExtractor(),
		nil,
		100,
	)
}
