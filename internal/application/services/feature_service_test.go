package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

func TestFeatureNames_MatchCount(t *testing.T) {
	assert.Len(t, FeatureNames, FeatureCount)
}

func TestExtract_FixedLengthFiniteVector(t *testing.T) {
	e := NewFeatureExtractor()

	features := e.Extract(testProfile(), testProperty("p", 300_000))
	require.Len(t, features, FeatureCount)
	for i, f := range features {
		assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "feature %s", FeatureNames[i])
	}
}

func TestExtract_KnownValues(t *testing.T) {
	e := NewFeatureExtractor()

	features := e.Extract(testProfile(), testProperty("p", 300_000))

	assert.InDelta(t, 0.15, features[0], 1e-9)  // normalized_price
	assert.InDelta(t, 0.75, features[1], 1e-9)  // budget_utilization
	assert.InDelta(t, 0.8, features[2], 1e-9)   // walk_score
	assert.InDelta(t, 0.3, features[5], 1e-9)   // bedrooms
	assert.InDelta(t, 0.19, features[7], 1e-9)  // square_meters
	assert.Equal(t, 1.0, features[16])          // style_match, all four align
	assert.Equal(t, 1.0, features[17])          // smart_home
	assert.InDelta(t, 0.95, features[18], 1e-9) // energy_rating A2
	assert.Equal(t, 1.0, features[19])          // customization_available
}

func TestExtract_PriceCapAndZeroBudget(t *testing.T) {
	e := NewFeatureExtractor()

	profile := testProfile()
	profile.PropertyPreferences.BudgetConstraints.MaxPrice = 0

	features := e.Extract(profile, testProperty("p", 5_000_000))
	assert.Equal(t, 1.0, features[0]) // capped at priceScale
	assert.Equal(t, 0.0, features[1]) // no budget, no utilization
}

func TestStyleMatch_Quarters(t *testing.T) {
	profile := testProfile()
	property := testProperty("p", 300_000)

	// Fixture matches all four: arch, interior, outdoor, parking.
	assert.Equal(t, 100.0, StyleMatch(profile, property))

	property.Features.Parking = entities.ParkingStreet
	assert.Equal(t, 75.0, StyleMatch(profile, property))

	property.Features.OutdoorSpace = entities.OutdoorGarden
	assert.Equal(t, 50.0, StyleMatch(profile, property))

	property.Features.ArchitecturalStyle = entities.ArchGeorgian
	property.Features.InteriorStyle = entities.InteriorLuxury
	assert.Equal(t, 0.0, StyleMatch(profile, property))
}
