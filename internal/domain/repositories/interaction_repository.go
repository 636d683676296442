package repositories

import (
	"context"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// InteractionRepository defines the interface for the append-only
// interaction log and per-property view counters.
type InteractionRepository interface {
	// Append records one interaction at the end of the user's log.
	Append(ctx context.Context, interaction *entities.Interaction) error

	// ListByUser returns the user's interactions in append order.
	ListByUser(ctx context.Context, userID string) ([]entities.Interaction, error)

	// ListRated returns every interaction carrying a feedback rating,
	// across all users, in append order.
	ListRated(ctx context.Context) ([]entities.Interaction, error)

	// CountAll returns the total number of recorded interactions.
	CountAll(ctx context.Context) (int, error)

	// TotalViews returns the sum of all per-property view counters.
	TotalViews(ctx context.Context) (int, error)
}
