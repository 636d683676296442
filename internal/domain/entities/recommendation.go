package entities

import (
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

// Impact is the polarity of a reasoning entry.
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// ScoreBreakdown holds the six component scores, each on a 0-100 scale.
type ScoreBreakdown struct {
	BudgetMatch       int `json:"budgetMatch"`
	LocationMatch     int `json:"locationMatch"`
	PropertyMatch     int `json:"propertyMatch"`
	LifestyleMatch    int `json:"lifestyleMatch"`
	InvestmentMatch   int `json:"investmentMatch"`
	MarketOpportunity int `json:"marketOpportunity"`
}

// Reasoning explains one factor's contribution to a recommendation.
type Reasoning struct {
	Factor      string  `json:"factor"`
	Impact      Impact  `json:"impact"`
	Weight      float64 `json:"weight"`
	Explanation string  `json:"explanation"`
}

// RecommendationScore is one scored candidate. Created fresh per scoring
// call and never mutated after return.
type RecommendationScore struct {
	PropertyID      string         `json:"propertyId"`
	OverallScore    int            `json:"overallScore"`
	MatchLabel      string         `json:"matchLabel"`
	ScoreBreakdown  ScoreBreakdown `json:"scoreBreakdown"`
	Reasoning       []Reasoning    `json:"reasoning,omitempty"`
	Confidence      int            `json:"confidence"`
	ConfidenceLabel string         `json:"confidenceLabel"`
	RiskFactors     []string       `json:"riskFactors,omitempty"`
	Opportunities   []string       `json:"opportunities,omitempty"`
	Reasons         []string       `json:"reasons,omitempty"`
}

// ExcludedProperty records a candidate dropped from a batch because it
// failed validation.
type ExcludedProperty struct {
	PropertyID string                     `json:"propertyId"`
	Violations []apperrors.FieldViolation `json:"violations"`
}

// RecommendationResult is the envelope returned by a scoring call.
// Recommendations are sorted by OverallScore descending; ties keep the
// original candidate order. TimedOut is set when a deadline cut the batch
// short and Recommendations holds the already-scored prefix.
type RecommendationResult struct {
	Recommendations []RecommendationScore `json:"recommendations"`
	Excluded        []ExcludedProperty    `json:"excluded,omitempty"`
	TimedOut        bool                  `json:"timedOut,omitempty"`
}

// FormatScore renders an overall score as a match label.
func FormatScore(score int) string {
	switch {
	case score >= 90:
		return "Excellent Match"
	case score >= 80:
		return "Very Good Match"
	case score >= 70:
		return "Good Match"
	case score >= 60:
		return "Fair Match"
	}
	return "Poor Match"
}

// FormatConfidence renders a confidence value as a label.
func FormatConfidence(confidence int) string {
	switch {
	case confidence >= 90:
		return "Very High"
	case confidence >= 75:
		return "High"
	case confidence >= 60:
		return "Medium"
	case confidence >= 40:
		return "Low"
	}
	return "Very Low"
}
