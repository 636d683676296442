package memory

import (
	"context"
	"sync"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
)

// InteractionStore is an in-memory, process-lifetime implementation of
// the interaction repository: an append-only per-user log plus global
// per-property view counters. Reads and writes are guarded by an RWMutex
// so a retrain reading the log never observes a partial append.
type InteractionStore struct {
	mu     sync.RWMutex
	byUser map[string][]entities.Interaction
	views  map[string]int
	total  int
}

// NewInteractionStore creates an empty in-memory interaction store.
func NewInteractionStore() repositories.InteractionRepository {
	return &InteractionStore{
		byUser: make(map[string][]entities.Interaction),
		views:  make(map[string]int),
	}
}

// Append records one interaction at the end of the user's log and bumps
// the property's view counter.
func (s *InteractionStore) Append(_ context.Context, interaction *entities.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[interaction.UserID] = append(s.byUser[interaction.UserID], *interaction)
	s.views[interaction.PropertyID]++
	s.total++
	return nil
}

// ListByUser returns the user's interactions in append order.
func (s *InteractionStore) ListByUser(_ context.Context, userID string) ([]entities.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.byUser[userID]
	out := make([]entities.Interaction, len(log))
	copy(out, log)
	return out, nil
}

// ListRated returns every rated interaction across all users. Per-user
// order is append order; users are visited in unspecified order.
func (s *InteractionStore) ListRated(_ context.Context) ([]entities.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rated []entities.Interaction
	for _, log := range s.byUser {
		for _, interaction := range log {
			if interaction.Feedback != nil && interaction.Feedback.Rating > 0 {
				rated = append(rated, interaction)
			}
		}
	}
	return rated, nil
}

// CountAll returns the total number of recorded interactions.
func (s *InteractionStore) CountAll(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total, nil
}

// TotalViews returns the sum of per-property view counters.
func (s *InteractionStore) TotalViews(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, views := range s.views {
		total += views
	}
	return total, nil
}
