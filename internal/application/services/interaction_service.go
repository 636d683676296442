package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/providers"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

// InteractionEventsChannel is the event bus channel interaction events
// are published on.
const InteractionEventsChannel = "interactions"

var validInteractionTypes = map[entities.InteractionType]bool{
	entities.InteractionView: true, entities.InteractionSave: true,
	entities.InteractionContact: true, entities.InteractionVisit: true,
	entities.InteractionOffer: true,
}

// InteractionService records user interactions, derives behavior
// insights, and owns the predictor retraining gate.
type InteractionService struct {
	interactions repositories.InteractionRepository
	properties   repositories.PropertyRepository
	predictor    providers.Predictor
	extractor    *FeatureExtractor
	bus          providers.EventBus

	minRetrainSamples int
	now               func() time.Time

	mu            sync.Mutex
	lastRetrained *time.Time
}

// NewInteractionService creates a new interaction service. properties and
// bus may be nil: without a property repository rated interactions whose
// property cannot be resolved are skipped during retraining, and without
// a bus no events are published.
func NewInteractionService(
	interactions repositories.InteractionRepository,
	properties repositories.PropertyRepository,
	predictor providers.Predictor,
	extractor *FeatureExtractor,
	bus providers.EventBus,
	minRetrainSamples int,
) *InteractionService {
	if minRetrainSamples <= 0 {
		minRetrainSamples = 100
	}
	return &InteractionService{
		interactions:      interactions,
		properties:        properties,
		predictor:         predictor,
		extractor:         extractor,
		bus:               bus,
		minRetrainSamples: minRetrainSamples,
		now:               time.Now,
	}
}

// Record appends one interaction to the user's log and bumps the
// property's view counter. Event publication is best-effort so recording
// never blocks on the bus.
func (s *InteractionService) Record(ctx context.Context, userID, propertyID string, interactionType entities.InteractionType, feedback *entities.InteractionFeedback) error {
	var c apperrors.ViolationCollector
	if strings.TrimSpace(userID) == "" {
		c.Add("userId", "", "is required")
	}
	if strings.TrimSpace(propertyID) == "" {
		c.Add("propertyId", "", "is required")
	}
	if !validInteractionTypes[interactionType] {
		c.Add("interactionType", string(interactionType), "is not a valid interaction type")
	}
	if feedback != nil && (feedback.Rating < 1 || feedback.Rating > 10) {
		c.Addf("feedback.rating", "", "must be between 1 and 10, got %d", feedback.Rating)
	}
	if err := c.Err("interaction"); err != nil {
		return err
	}

	interaction := &entities.Interaction{
		ID:              uuid.New().String(),
		UserID:          userID,
		PropertyID:      propertyID,
		InteractionType: interactionType,
		Feedback:        feedback,
		Timestamp:       s.now().UTC(),
	}

	if err := s.interactions.Append(ctx, interaction); err != nil {
		return apperrors.NewInternalError("failed to record interaction", err)
	}

	if s.bus != nil {
		event := &entities.InteractionEvent{
			ID:              interaction.ID,
			UserID:          userID,
			PropertyID:      propertyID,
			InteractionType: interactionType,
			HasFeedback:     feedback != nil,
			Timestamp:       interaction.Timestamp,
		}
		if err := s.bus.Publish(ctx, InteractionEventsChannel, event); err != nil {
			log.Warn().Err(err).Str("user_id", userID).Msg("failed to publish interaction event")
		}
	}

	log.Info().
		Str("user_id", userID).
		Str("property_id", propertyID).
		Str("interaction_type", string(interactionType)).
		Bool("has_feedback", feedback != nil).
		Msg("user interaction recorded")

	return nil
}

// UserInsights aggregates a user's interaction history into counts, the
// average feedback rating, and a coarse behavior pattern.
func (s *InteractionService) UserInsights(ctx context.Context, userID string) (*entities.UserInsights, error) {
	interactions, err := s.interactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load interactions", err)
	}

	insights := &entities.UserInsights{
		TotalInteractions: len(interactions),
		BehaviorPattern:   entities.BehaviorExplorer,
	}

	ratingSum := 0
	ratingCount := 0
	for _, interaction := range interactions {
		switch interaction.InteractionType {
		case entities.InteractionView:
			insights.ViewedProperties++
		case entities.InteractionSave:
			insights.SavedProperties++
		case entities.InteractionContact:
			insights.ContactedProperties++
		}
		if interaction.Feedback != nil && interaction.Feedback.Rating > 0 {
			ratingSum += interaction.Feedback.Rating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		insights.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	viewed := insights.ViewedProperties
	if viewed < 1 {
		viewed = 1
	}
	if len(interactions) > 50 {
		insights.BehaviorPattern = entities.BehaviorResearcher
	} else if float64(insights.ContactedProperties)/float64(viewed) > 0.1 {
		insights.BehaviorPattern = entities.BehaviorDecisive
	}

	return insights, nil
}

// Retrain rebuilds training samples from rated interactions and retrains
// the predictor. It is a gated no-op returning false while fewer than the
// configured minimum of rated interactions exist; the gate is reported
// via the boolean, not an error.
func (s *InteractionService) Retrain(ctx context.Context) (bool, error) {
	rated, err := s.interactions.ListRated(ctx)
	if err != nil {
		return false, apperrors.NewInternalError("failed to load rated interactions", err)
	}

	if len(rated) < s.minRetrainSamples {
		log.Info().
			Int("rated_interactions", len(rated)).
			Int("required", s.minRetrainSamples).
			Msg("insufficient training data, skipping retrain")
		return false, nil
	}

	samples := s.buildSamples(ctx, rated)
	if len(samples) < s.minRetrainSamples {
		log.Info().
			Int("resolved_samples", len(samples)).
			Int("required", s.minRetrainSamples).
			Msg("insufficient resolvable training samples, skipping retrain")
		return false, nil
	}

	if err := s.predictor.Retrain(samples); err != nil {
		return false, apperrors.NewInternalError("predictor retrain failed", err)
	}

	retrained := s.now().UTC()
	s.mu.Lock()
	s.lastRetrained = &retrained
	s.mu.Unlock()

	log.Info().
		Int("training_samples", len(samples)).
		Time("retrained_at", retrained).
		Msg("predictor retrained")

	return true, nil
}

// buildSamples resolves each rated interaction's property and extracts
// features against a neutral profile, using the 1-10 rating normalized to
// 0-1 as the target. Interactions whose property cannot be resolved are
// skipped.
func (s *InteractionService) buildSamples(ctx context.Context, rated []entities.Interaction) []providers.TrainingSample {
	if s.properties == nil || s.extractor == nil {
		return nil
	}

	neutral := neutralProfile()
	samples := make([]providers.TrainingSample, 0, len(rated))
	for _, interaction := range rated {
		property, err := s.properties.GetByID(ctx, interaction.PropertyID)
		if err != nil || property == nil {
			log.Debug().
				Str("property_id", interaction.PropertyID).
				Msg("skipping training sample, property not resolvable")
			continue
		}
		samples = append(samples, providers.TrainingSample{
			Features: s.extractor.Extract(neutral, *property),
			Target:   float64(interaction.Feedback.Rating) / 10,
		})
	}
	return samples
}

// ModelInsights summarizes the predictor and the interaction corpus.
func (s *InteractionService) ModelInsights(ctx context.Context) (*entities.ModelInsights, error) {
	total, err := s.interactions.CountAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count interactions", err)
	}
	views, err := s.interactions.TotalViews(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count property views", err)
	}

	s.mu.Lock()
	last := s.lastRetrained
	s.mu.Unlock()

	return &entities.ModelInsights{
		FeatureImportance:     s.predictor.FeatureImportance(),
		TotalUserInteractions: total,
		TotalPropertyViews:    views,
		LastRetrained:         last,
	}, nil
}

// neutralProfile is the fixed baseline profile training features are
// extracted against. Feature targets come from ratings, so only
// property-side features vary across samples.
func neutralProfile() entities.UserPreferenceProfile {
	return entities.UserPreferenceProfile{
		UserID: "training-baseline",
		PropertyPreferences: entities.PropertyPreferences{
			BudgetConstraints: entities.BudgetConstraints{MaxPrice: priceScale},
		},
	}
}
