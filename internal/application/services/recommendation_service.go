package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/providers"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

// DefaultLimit caps result length when the caller does not supply one.
const DefaultLimit = 10

// GenerateOptions tunes one recommendation call.
type GenerateOptions struct {
	Limit          int
	IncludeReasons bool
}

// DefaultGenerateOptions returns the default options.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Limit: DefaultLimit, IncludeReasons: true}
}

// RecommendationService is the engine's top-level entry point: it
// validates input, scores every candidate, sorts and truncates.
//
// For a fixed profile, candidate set and predictor weights the output is
// deterministic: sorting is stable on the original candidate order, and
// the predictor signal is advisory only.
type RecommendationService struct {
	validator *ValidationService
	extractor *FeatureExtractor
	scorer    *ScoringService
	reasoner  *ReasoningService
	predictor providers.Predictor
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(
	validator *ValidationService,
	extractor *FeatureExtractor,
	scorer *ScoringService,
	reasoner *ReasoningService,
	predictor providers.Predictor,
) *RecommendationService {
	return &RecommendationService{
		validator: validator,
		extractor: extractor,
		scorer:    scorer,
		reasoner:  reasoner,
		predictor: predictor,
	}
}

// GenerateRecommendations scores the candidates against the profile and
// returns them sorted by overall score descending, truncated to
// opts.Limit.
//
// A candidate that fails validation is excluded and reported in the
// result, never aborting the batch. An empty candidate list yields an
// empty result. When ctx is cancelled mid-batch the already-scored prefix
// is returned with TimedOut set.
func (s *RecommendationService) GenerateRecommendations(
	ctx context.Context,
	profile entities.UserPreferenceProfile,
	candidates []entities.PropertyRecord,
	opts GenerateOptions,
) (*entities.RecommendationResult, error) {
	profile, err := s.validator.ValidateProfile(profile)
	if err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	result := &entities.RecommendationResult{
		Recommendations: make([]entities.RecommendationScore, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			result.TimedOut = true
			log.Warn().
				Str("user_id", profile.UserID).
				Int("scored", len(result.Recommendations)).
				Int("candidates", len(candidates)).
				Msg("deadline hit mid-batch, returning partial results")
			break
		}

		property, err := s.validator.ValidateProperty(candidate)
		if err != nil {
			result.Excluded = append(result.Excluded, excludedFrom(candidate, err))
			continue
		}

		result.Recommendations = append(result.Recommendations, s.scoreCandidate(ctx, profile, property, opts.IncludeReasons))
	}

	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return result.Recommendations[i].OverallScore > result.Recommendations[j].OverallScore
	})
	if len(result.Recommendations) > limit {
		result.Recommendations = result.Recommendations[:limit]
	}

	log.Info().
		Str("user_id", profile.UserID).
		Int("candidates", len(candidates)).
		Int("excluded", len(result.Excluded)).
		Int("returned", len(result.Recommendations)).
		Msg("recommendations generated")

	return result, nil
}

func (s *RecommendationService) scoreCandidate(
	ctx context.Context,
	profile entities.UserPreferenceProfile,
	property entities.PropertyRecord,
	includeReasons bool,
) entities.RecommendationScore {
	subScores := s.scorer.Score(ctx, profile, property)
	overall := subScores.Overall()

	// Advisory signal only; kept out of the weighted sum.
	if s.predictor != nil {
		features := s.extractor.Extract(profile, property)
		signal := s.predictor.Predict(features)
		log.Debug().
			Str("property_id", property.PropertyID).
			Float64("predictor_signal", signal).
			Float64("overall", overall).
			Msg("predictor signal computed")
	}

	reasoning := s.reasoner.GenerateReasoning(subScores, profile)

	score := entities.RecommendationScore{
		PropertyID:     property.PropertyID,
		OverallScore:   roundScore(overall),
		ScoreBreakdown: subScores.Breakdown(),
		Reasoning:      reasoning,
		Confidence:     s.reasoner.Confidence(overall, reasoning),
		RiskFactors:    s.reasoner.IdentifyRiskFactors(property),
		Opportunities:  s.reasoner.IdentifyOpportunities(property, profile),
	}
	score.MatchLabel = entities.FormatScore(score.OverallScore)
	score.ConfidenceLabel = entities.FormatConfidence(score.Confidence)
	if includeReasons {
		score.Reasons = s.reasoner.HeadlineReasons(score)
	} else {
		score.Reasoning = nil
	}
	return score
}

func excludedFrom(candidate entities.PropertyRecord, err error) entities.ExcludedProperty {
	excluded := entities.ExcludedProperty{PropertyID: candidate.PropertyID}
	if verr, ok := err.(*apperrors.ValidationError); ok {
		excluded.Violations = verr.Violations
	} else {
		excluded.Violations = []apperrors.FieldViolation{{Field: "property", Message: err.Error()}}
	}
	return excluded
}
