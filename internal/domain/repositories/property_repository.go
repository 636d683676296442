package repositories

import (
	"context"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// PropertySearchFilter narrows candidate retrieval.
type PropertySearchFilter struct {
	Region       string
	PropertyType entities.PropertyType
	MinPrice     float64
	MaxPrice     float64
	MinBedrooms  int
	Limit        int
}

// PropertyRepository defines the interface for candidate property supply.
// The engine itself does not own property storage; this boundary lets
// callers index and retrieve candidate sets.
type PropertyRepository interface {
	// Index upserts properties into the search index.
	Index(ctx context.Context, properties []entities.PropertyRecord) error

	// Search returns candidate properties matching the filter.
	Search(ctx context.Context, filter PropertySearchFilter) ([]entities.PropertyRecord, error)

	// GetByID returns a single property by its identifier.
	GetByID(ctx context.Context, propertyID string) (*entities.PropertyRecord, error)
}
