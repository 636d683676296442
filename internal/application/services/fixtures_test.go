package services

import (
	"context"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// stubMarkets is a fixed-map MarketDataRepository for tests.
type stubMarkets map[string]entities.MarketSnapshot

func (m stubMarkets) Snapshot(_ context.Context, region string) (entities.MarketSnapshot, bool) {
	s, ok := m[region]
	return s, ok
}

func (m stubMarkets) Replace(_ context.Context, snapshots []entities.MarketSnapshot) error {
	for k := range m {
		delete(m, k)
	}
	for _, s := range snapshots {
		m[s.Region] = s
	}
	return nil
}

func testProfile() entities.UserPreferenceProfile {
	return entities.UserPreferenceProfile{
		UserID: "user-1",
		Demographics: entities.Demographics{
			AgeRange:     entities.Age26To35,
			FamilyStatus: entities.FamilyCouple,
			Occupation:   entities.OccupationProfessional,
			IncomeRange:  entities.Income75to100k,
		},
		LocationPreferences: entities.LocationPreferences{
			PreferredRegions: []string{"Dublin"},
			MaxCommuteTime:   30,
			ProximityFactors: entities.ProximityWeights{
				PublicTransport: 8,
				Schools:         5,
				Shopping:        6,
				Healthcare:      4,
				Recreation:      5,
				Nightlife:       3,
				Nature:          4,
			},
			UrbanVsRural: entities.AreaSuburban,
		},
		PropertyPreferences: entities.PropertyPreferences{
			PropertyTypes: []entities.PropertyType{entities.TypeApartment, entities.TypeHouse},
			SizePreferences: entities.SizePreferences{
				MinBedrooms:     2,
				MaxBedrooms:     4,
				MinBathrooms:    1,
				MinSquareMeters: 60,
			},
			BudgetConstraints: entities.BudgetConstraints{
				MinPrice:              200_000,
				MaxPrice:              400_000,
				FlexibilityPercentage: 10,
			},
			StylePreferences: entities.StylePreferences{
				ArchitecturalStyles: []entities.ArchitecturalStyle{entities.ArchModern},
				InteriorStyles:      []entities.InteriorStyle{entities.InteriorModern},
				OutdoorSpace:        entities.OutdoorBalcony,
				Parking:             entities.ParkingPrivate,
			},
		},
		LifestyleFactors: entities.LifestyleFactors{
			WorkFromHome:             false,
			EntertainingFrequency:    entities.EntertainSometimes,
			PetOwner:                 false,
			FitnessImportance:        5,
			PrivacyImportance:        5,
			TechnologyImportance:     5,
			SustainabilityImportance: 5,
		},
	}
}

func testProperty(id string, price float64) entities.PropertyRecord {
	return entities.PropertyRecord{
		PropertyID: id,
		BasicInfo: entities.BasicInfo{
			Address:          "12 Abbey Street",
			Region:           "Dublin",
			PropertyType:     entities.TypeApartment,
			Bedrooms:         3,
			Bathrooms:        2,
			SquareMeters:     95,
			DevelopmentStage: entities.StageCompleted,
		},
		Pricing: entities.Pricing{
			ListPrice:               price,
			PricePerSqm:             price / 95,
			EstimatedMonthlyPayment: price / 300,
		},
		Features: entities.Features{
			ArchitecturalStyle: entities.ArchModern,
			InteriorStyle:      entities.InteriorModern,
			OutdoorSpace:       entities.OutdoorBalcony,
			Parking:            entities.ParkingPrivate,
			EnergyRating:       entities.EnergyA2,
			SmartHomeFeatures:  true,
			PetFriendly:        true,
		},
		Location: entities.PropertyLocation{
			WalkScore:    80,
			TransitScore: 70,
			ProximityScores: entities.ProximityScores{
				PublicTransport: 8,
				Schools:         7,
				Shopping:        8,
				Healthcare:      7,
				Recreation:      6,
				Nightlife:       5,
				Nature:          6,
			},
			NoiseLevel:   entities.NoiseQuiet,
			SafetyRating: 8,
		},
		MarketData: entities.MarketData{
			AverageAreaPrice: 450_000,
			PriceAppreciation: entities.PriceAppreciation{
				OneYear:   0.08,
				ThreeYear: 0.15,
				FiveYear:  0.25,
			},
			RentalYield:  0.05,
			MarketTrend:  entities.TrendRising,
			SalesVolume:  120,
			TimeOnMarket: 45,
		},
		Customization: entities.Customization{
			Available:          true,
			PackageOptions:     []string{"flooring", "kitchen"},
			CustomizationLevel: entities.TierStandard,
		},
	}
}
