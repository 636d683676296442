package services

import (
	"math"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// ReasoningService derives human-readable explanations, risk factors,
// opportunities and confidence from sub-scores and raw property
// attributes. All rules are deterministic threshold tables; none of them
// feed back into the overall score.
type ReasoningService struct{}

// NewReasoningService creates a new reasoning service.
func NewReasoningService() *ReasoningService {
	return &ReasoningService{}
}

// GenerateReasoning maps sub-score thresholds onto explanation entries.
func (r *ReasoningService) GenerateReasoning(scores SubScores, profile entities.UserPreferenceProfile) []entities.Reasoning {
	var reasoning []entities.Reasoning

	switch {
	case scores.Budget >= 80:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Budget Match",
			Impact:      entities.ImpactPositive,
			Weight:      WeightBudget,
			Explanation: "Property is well within your budget, offering excellent value.",
		})
	case scores.Budget >= 50:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Budget Match",
			Impact:      entities.ImpactNeutral,
			Weight:      WeightBudget,
			Explanation: "Property is at the upper end of your budget but still affordable.",
		})
	default:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Budget Match",
			Impact:      entities.ImpactNegative,
			Weight:      WeightBudget,
			Explanation: "Property exceeds your stated budget constraints.",
		})
	}

	switch {
	case scores.Location >= 80:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Location Match",
			Impact:      entities.ImpactPositive,
			Weight:      WeightLocation,
			Explanation: "Excellent location match with strong proximity to your preferred amenities.",
		})
	case scores.Location >= 60:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Location Match",
			Impact:      entities.ImpactNeutral,
			Weight:      WeightLocation,
			Explanation: "Good location with most of your preferred amenities nearby.",
		})
	default:
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Location Match",
			Impact:      entities.ImpactNegative,
			Weight:      WeightLocation,
			Explanation: "Location may not fully meet your proximity preferences.",
		})
	}

	if scores.Property >= 80 {
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Property Features",
			Impact:      entities.ImpactPositive,
			Weight:      WeightProperty,
			Explanation: "Property features align very well with your requirements.",
		})
	}

	if profile.InvestmentGoals != nil && scores.Investment >= 70 {
		reasoning = append(reasoning, entities.Reasoning{
			Factor:      "Investment Potential",
			Impact:      entities.ImpactPositive,
			Weight:      WeightInvestment,
			Explanation: "Strong investment potential with good appreciation prospects.",
		})
	}

	return reasoning
}

// IdentifyRiskFactors lists deterministic risk flags for a property.
func (r *ReasoningService) IdentifyRiskFactors(property entities.PropertyRecord) []string {
	var risks []string

	if property.BasicInfo.DevelopmentStage == entities.StageUnderConstruction {
		risks = append(risks, "Construction completion risk")
	}
	if property.MarketData.TimeOnMarket > 180 {
		risks = append(risks, "Extended time on market may indicate pricing or condition issues")
	}
	if property.MarketData.MarketTrend == entities.TrendDeclining {
		risks = append(risks, "Local market showing declining trend")
	}
	if property.Location.NoiseLevel == entities.NoiseBusy {
		risks = append(risks, "High noise levels may affect quality of life")
	}

	return risks
}

// IdentifyOpportunities lists deterministic opportunity flags for a
// property in the context of the buyer's profile.
func (r *ReasoningService) IdentifyOpportunities(property entities.PropertyRecord, profile entities.UserPreferenceProfile) []string {
	var opportunities []string

	if property.Customization.Available {
		opportunities = append(opportunities, "Customization packages available for personalization")
	}
	if property.MarketData.TimeOnMarket > 90 {
		opportunities = append(opportunities, "Potential for price negotiation due to extended market time")
	}
	if property.MarketData.PriceAppreciation.OneYear > 0.1 {
		opportunities = append(opportunities, "Strong price appreciation trend in the area")
	}
	if property.Features.SmartHomeFeatures && profile.LifestyleFactors.TechnologyImportance >= 7 {
		opportunities = append(opportunities, "Smart home features align with your technology preferences")
	}
	if property.MarketData.RentalYield > 0.05 {
		opportunities = append(opportunities, "Excellent rental yield potential for investment")
	}

	return opportunities
}

// HeadlineReasons distills a scored recommendation into short headline
// strings.
func (r *ReasoningService) HeadlineReasons(score entities.RecommendationScore) []string {
	var reasons []string

	if score.OverallScore >= 85 {
		reasons = append(reasons, "Exceptional match across all key criteria")
	} else if score.OverallScore >= 70 {
		reasons = append(reasons, "Strong overall match with your preferences")
	}
	if score.ScoreBreakdown.BudgetMatch >= 80 {
		reasons = append(reasons, "Excellent value within your budget")
	}
	if score.ScoreBreakdown.LocationMatch >= 80 {
		reasons = append(reasons, "Prime location with great amenities")
	}
	if score.ScoreBreakdown.InvestmentMatch >= 80 {
		reasons = append(reasons, "Outstanding investment potential")
	}

	return reasons
}

// Confidence expresses how trustworthy an overall score is: it rises with
// the score magnitude, the number of reasoning entries and positive
// factors, and falls with negative factors. Clamped to [0,100].
func (r *ReasoningService) Confidence(overallScore float64, reasoning []entities.Reasoning) int {
	confidence := 50.0

	confidence += (overallScore - 50) * 0.5
	confidence += math.Min(20, float64(len(reasoning))*5)

	for _, entry := range reasoning {
		switch entry.Impact {
		case entities.ImpactPositive:
			confidence += 5
		case entities.ImpactNegative:
			confidence -= 10
		}
	}

	return roundScore(confidence)
}

// SearchSuggestions derives profile-level search hints independent of any
// candidate set.
func (r *ReasoningService) SearchSuggestions(profile entities.UserPreferenceProfile) []string {
	var suggestions []string

	if profile.PropertyPreferences.BudgetConstraints.MaxPrice < 300_000 {
		suggestions = append(suggestions, "Consider expanding your search to include upcoming developments")
	}
	if len(profile.LocationPreferences.PreferredRegions) == 1 {
		suggestions = append(suggestions, "Explore similar areas with better value propositions")
	}
	if profile.LifestyleFactors.SustainabilityImportance >= 7 {
		suggestions = append(suggestions, "Look for properties with A-rated energy efficiency")
	}

	return suggestions
}
