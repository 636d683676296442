package services

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
)

// Weights of the six sub-scores in the overall score. They sum to 1.0.
const (
	WeightBudget     = 0.25
	WeightLocation   = 0.20
	WeightProperty   = 0.20
	WeightLifestyle  = 0.15
	WeightInvestment = 0.10
	WeightMarket     = 0.10
)

// SubScores holds the six unrounded component scores, each in [0,100].
type SubScores struct {
	Budget     float64
	Location   float64
	Property   float64
	Lifestyle  float64
	Investment float64
	Market     float64
}

// Overall combines the sub-scores through the fixed weights, clamped to
// [0,100]. The predictor's signal is deliberately not part of this sum.
func (s SubScores) Overall() float64 {
	return clamp100(s.Budget*WeightBudget +
		s.Location*WeightLocation +
		s.Property*WeightProperty +
		s.Lifestyle*WeightLifestyle +
		s.Investment*WeightInvestment +
		s.Market*WeightMarket)
}

// Breakdown rounds the sub-scores into the response shape.
func (s SubScores) Breakdown() entities.ScoreBreakdown {
	return entities.ScoreBreakdown{
		BudgetMatch:       roundScore(s.Budget),
		LocationMatch:     roundScore(s.Location),
		PropertyMatch:     roundScore(s.Property),
		LifestyleMatch:    roundScore(s.Lifestyle),
		InvestmentMatch:   roundScore(s.Investment),
		MarketOpportunity: roundScore(s.Market),
	}
}

// ScoringService computes the six sub-scores for a validated
// (profile, property) pair. All calculators are total on validated input
// and return values in [0,100]; missing market reference data degrades to
// the neutral contribution for that term.
type ScoringService struct {
	markets repositories.MarketDataRepository
}

// NewScoringService creates a new scoring service.
func NewScoringService(markets repositories.MarketDataRepository) *ScoringService {
	return &ScoringService{markets: markets}
}

// Score computes all six sub-scores.
func (s *ScoringService) Score(ctx context.Context, profile entities.UserPreferenceProfile, property entities.PropertyRecord) SubScores {
	return SubScores{
		Budget:     BudgetMatch(profile, property),
		Location:   LocationMatch(profile, property),
		Property:   PropertyMatch(profile, property),
		Lifestyle:  LifestyleMatch(profile, property),
		Investment: s.InvestmentMatch(ctx, profile, property),
		Market:     s.MarketOpportunity(ctx, property),
	}
}

// BudgetMatch scores price against the budget ceiling. Within budget the
// score falls as utilization rises; over budget it degrades linearly from
// 70 inside the flexibility allowance and drops to 0 beyond it.
func BudgetMatch(profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	budget := profile.PropertyPreferences.BudgetConstraints
	price := property.Pricing.ListPrice

	if budget.MaxPrice <= 0 {
		return 0
	}

	if price <= budget.MaxPrice {
		utilization := price / budget.MaxPrice
		switch {
		case utilization < 0.7:
			return 100
		case utilization < 0.9:
			return 90
		default:
			return 80
		}
	}

	overagePercent := (price - budget.MaxPrice) / budget.MaxPrice * 100
	if overagePercent <= budget.FlexibilityPercentage {
		return math.Max(0, 70-overagePercent)
	}
	return 0
}

// LocationMatch scores region preference and amenity proximity. A region
// match is worth 30 points; the weighted average of amenity proximity,
// weighted by the user's own importance weights, fills the remaining 70.
// A profile that names no preferred regions gets a flat neutral 70 so an
// unspecified preference is not penalized twice.
func LocationMatch(profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	locPrefs := profile.LocationPreferences

	if len(locPrefs.PreferredRegions) == 0 {
		return 70
	}

	score := 0.0
	if containsRegion(locPrefs.PreferredRegions, property.BasicInfo.Region) {
		score += 30
	}

	weightedSum := 0.0
	totalWeight := 0.0
	for _, a := range entities.Amenities {
		weight := locPrefs.ProximityFactors.Weight(a)
		weightedSum += property.Location.ProximityScores.Score(a) * weight
		totalWeight += weight
	}
	if totalWeight > 0 {
		// Average proximity is 0-10; rescale onto the remaining 70.
		score += weightedSum / totalWeight / 10 * 70
	} else {
		// No amenity weights expressed: neutral half contribution.
		score += 35
	}

	return clamp100(score)
}

// PropertyMatch scores structural fit through additive point buckets,
// capped at 100.
func PropertyMatch(profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	prefs := profile.PropertyPreferences
	score := 0.0

	if containsPropertyType(prefs.PropertyTypes, property.BasicInfo.PropertyType) {
		score += 25
	}

	size := prefs.SizePreferences
	if property.BasicInfo.Bedrooms >= size.MinBedrooms && property.BasicInfo.Bedrooms <= size.MaxBedrooms {
		score += 25
	}
	if property.BasicInfo.Bathrooms >= size.MinBathrooms {
		score += 15
	}
	if property.BasicInfo.SquareMeters >= size.MinSquareMeters {
		score += 15
	}

	style := prefs.StylePreferences
	if containsArchStyle(style.ArchitecturalStyles, property.Features.ArchitecturalStyle) {
		score += 10
	}
	if containsInteriorStyle(style.InteriorStyles, property.Features.InteriorStyle) {
		score += 5
	}
	if style.OutdoorSpace == property.Features.OutdoorSpace {
		score += 5
	}

	return clamp100(score)
}

// LifestyleMatch starts neutral at 50 and applies fixed deltas for
// lifestyle alignment, clamped to [0,100].
func LifestyleMatch(profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	lifestyle := profile.LifestyleFactors
	score := 50.0

	if lifestyle.WorkFromHome && property.BasicInfo.Bedrooms >= 2 {
		score += 15
	}

	if lifestyle.PetOwner {
		if property.Features.PetFriendly {
			score += 10
		} else {
			score -= 20
		}
	}

	if lifestyle.TechnologyImportance >= 7 && property.Features.SmartHomeFeatures {
		score += 10
	}

	if lifestyle.PrivacyImportance >= 7 {
		switch property.Location.NoiseLevel {
		case entities.NoiseQuiet:
			score += 10
		case entities.NoiseBusy:
			score -= 15
		}
	}

	if lifestyle.SustainabilityImportance >= 7 {
		score += entities.EnergyRatingScore(property.Features.EnergyRating) * 0.2
	}

	return clamp100(score)
}

// InvestmentMatch scores investment fit: rental yield, short-term
// appreciation, market trend, risk-tolerance alignment and development
// stage versus hold period. A profile without investment goals gets the
// neutral 50.
func (s *ScoringService) InvestmentMatch(ctx context.Context, profile entities.UserPreferenceProfile, property entities.PropertyRecord) float64 {
	goals := profile.InvestmentGoals
	if goals == nil {
		return 50
	}

	score := 0.0

	if goals.RentalPotential && property.MarketData.RentalYield > 0 {
		yieldPercent := property.MarketData.RentalYield * 100
		switch {
		case yieldPercent >= 5:
			score += 30
		case yieldPercent >= 4:
			score += 20
		case yieldPercent >= 3:
			score += 10
		}
	}

	appreciation := property.MarketData.PriceAppreciation.OneYear
	switch {
	case appreciation >= 0.1:
		score += 25
	case appreciation >= 0.05:
		score += 15
	case appreciation >= 0:
		score += 5
	}

	switch property.MarketData.MarketTrend {
	case entities.TrendRising:
		score += 15
	case entities.TrendStable:
		score += 10
	}

	risk := s.AssessRisk(ctx, property)
	switch {
	case goals.RiskTolerance == entities.RiskAggressive || risk <= 3:
		score += 15
	case goals.RiskTolerance == entities.RiskModerate && risk <= 5:
		score += 10
	case goals.RiskTolerance == entities.RiskConservative && risk <= 2:
		score += 15
	default:
		score -= 10
	}

	if property.BasicInfo.DevelopmentStage == entities.StageUnderConstruction {
		if goals.ExpectedHoldPeriod == entities.Hold5To10Years || goals.ExpectedHoldPeriod == entities.Hold10Plus {
			score += 10
		} else {
			score -= 5
		}
	}

	return clamp100(score)
}

// MarketOpportunity starts neutral at 50 and adjusts for price versus the
// area benchmark, time-on-market extremes, trend, and capped three-year
// appreciation.
func (s *ScoringService) MarketOpportunity(ctx context.Context, property entities.PropertyRecord) float64 {
	score := 50.0

	if avg, ok := s.areaAveragePrice(ctx, property); ok {
		priceRatio := property.Pricing.ListPrice / avg
		switch {
		case priceRatio < 0.9:
			score += 20
		case priceRatio < 1.1:
			score += 10
		default:
			score -= 10
		}
	} else {
		log.Debug().
			Str("property_id", property.PropertyID).
			Str("region", property.BasicInfo.Region).
			Msg("no area benchmark, neutral price-ratio contribution")
	}

	if property.MarketData.TimeOnMarket > 180 {
		score += 15
	} else if property.MarketData.TimeOnMarket < 30 {
		score += 5
	}

	switch property.MarketData.MarketTrend {
	case entities.TrendRising:
		score += 15
	case entities.TrendDeclining:
		score -= 10
	}

	score += math.Min(20, property.MarketData.PriceAppreciation.ThreeYear*100)

	return clamp100(score)
}

// AssessRisk computes a deterministic 0-10 property risk from additive
// factors: development stage, declining trend, time on market over a
// year, and price over 1.3x the area average. Used by the investment
// sub-score only.
func (s *ScoringService) AssessRisk(ctx context.Context, property entities.PropertyRecord) float64 {
	risk := 0.0

	switch property.BasicInfo.DevelopmentStage {
	case entities.StagePlanning:
		risk += 3
	case entities.StageUnderConstruction:
		risk += 2
	}

	if property.MarketData.MarketTrend == entities.TrendDeclining {
		risk += 2
	}

	if property.MarketData.TimeOnMarket > 365 {
		risk += 2
	}

	if avg, ok := s.areaAveragePrice(ctx, property); ok && property.Pricing.ListPrice > avg*1.3 {
		risk += 2
	}

	return math.Min(10, risk)
}

/// areaAveragePrice resolves the comparison price for a property: the
// region benchmark when one exists, otherwise the area average carried on
// the record itself.
func (s *ScoringService) areaAveragePrice(ctx context.Context, property entities.PropertyRecord) (float64, bool) {
	if s.markets != nil {
		if snapshot, ok := s.markets.Snapshot(ctx, property.BasicInfo.Region); ok && snapshot.AveragePrice > 0 {
			return snapshot.AveragePrice, true
		}
	}
	if property.MarketData.AverageAreaPrice > 0 {
		return property.MarketData.AverageAreaPrice, true
	}
	return 0, false
}

func containsRegion(regions []string, region string) bool {
	for _, r := range regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}

func containsPropertyType(types []entities.PropertyType, t entities.PropertyType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func clamp100(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func roundScore(v float64) int {
	return int(math.Round(clamp100(v)))
}
