package services

import (
	"math"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// priceScale normalizes absolute prices into a bounded range.
const priceScale = 2_000_000

// FeatureCount is the fixed length of extracted feature vectors. The
// predictor's weights are indexed positionally, so neither the count nor
// the order in FeatureNames may change within an engine version.
const FeatureCount = 20

// FeatureNames lists the extracted features in vector order.
var FeatureNames = []string{
	"normalized_price",
	"budget_utilization",
	"walk_score",
	"transit_score",
	"safety_rating",
	"bedrooms",
	"bathrooms",
	"square_meters",
	"appreciation_one_year",
	"rental_yield",
	"time_on_market",
	"proximity_schools",
	"proximity_shopping",
	"proximity_healthcare",
	"proximity_recreation",
	"proximity_public_transport",
	"style_match",
	"smart_home",
	"energy_rating",
	"customization_available",
}

// FeatureExtractor maps a (profile, property) pair onto a fixed-length
// numeric feature vector. Every feature is bounded; missing sources
// contribute 0, never NaN.
type FeatureExtractor struct{}

// NewFeatureExtractor creates a new feature extractor.
func NewFeatureExtractor() *FeatureExtractor {
	return &FeatureExtractor{}
}

// Extract builds the feature vector for one candidate.
func (e *FeatureExtractor) Extract(profile entities.UserPreferenceProfile, property entities.PropertyRecord) []float64 {
	budget := profile.PropertyPreferences.BudgetConstraints

	utilization := 0.0
	if budget.MaxPrice > 0 {
		utilization = property.Pricing.ListPrice / budget.MaxPrice
	}

	features := []float64{
		math.Min(1, property.Pricing.ListPrice/priceScale),
		utilization,

		property.Location.WalkScore / 100,
		property.Location.TransitScore / 100,
		property.Location.SafetyRating / 10,

		float64(property.BasicInfo.Bedrooms) / 10,
		float64(property.BasicInfo.Bathrooms) / 10,
		property.BasicInfo.SquareMeters / 500,

		property.MarketData.PriceAppreciation.OneYear,
		property.MarketData.RentalYield,
		float64(property.MarketData.TimeOnMarket) / 365,

		property.Location.ProximityScores.Schools / 10,
		property.Location.ProximityScores.Shopping / 10,
		property.Location.ProximityScores.Healthcare / 10,
		property.Location.ProximityScores.Recreation / 10,
		property.Location.ProximityScores.PublicTransport / 10,

		StyleMatch(profile, property) / 100,
		boolFeature(property.Features.SmartHomeFeatures),
		entities.EnergyRatingScore(property.Features.EnergyRating) / 100,
		boolFeature(property.Customization.Available),
	}

	for i, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			features[i] = 0
		}
	}
	return features
}

// StyleMatch returns the percentage of the four style preferences
// (architectural, interior, outdoor space, parking) the property
// satisfies.
func StyleMatch(profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	style := profile.PropertyPreferences.StylePreferences
	matches := 0

	if containsArchStyle(style.ArchitecturalStyles, property.Features.ArchitecturalStyle) {
		matches++
	}
	if containsInteriorStyle(style.InteriorStyles, property.Features.InteriorStyle) {
		matches++
	}
	if style.OutdoorSpace == property.Features.OutdoorSpace {
		matches++
	}
	if style.Parking == property.Features.Parking {
		matches++
	}
	return float64(matches) / 4 * 100
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func containsArchStyle(styles []entities.ArchitecturalStyle, s entities.ArchitecturalStyle) bool {
	for _, v := range styles {
		if v == s {
			return true
		}
	}
	return false
}

func containsInteriorStyle(styles []entities.InteriorStyle, s entities.InteriorStyle) bool {
	for _, v := range styles {
		if v == s {
			return true
		}
	}
	return false
}
