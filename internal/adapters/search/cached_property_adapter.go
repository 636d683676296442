package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/providers"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	propertyByIDTTL  = 300 // 5 minutes for single property
	searchResultsTTL = 120 // 2 minutes for search results
)

// CachedPropertyAdapter wraps a PropertyRepository with caching
type CachedPropertyAdapter struct {
	adapter repositories.PropertyRepository
	cache   providers.CacheProvider
}

// NewCachedPropertyAdapter creates a new cached property adapter
func NewCachedPropertyAdapter(adapter repositories.PropertyRepository, cache providers.CacheProvider) repositories.PropertyRepository {
	return &CachedPropertyAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

func propertyCacheKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

func searchCacheKey(filter repositories.PropertySearchFilter) string {
	return fmt.Sprintf("properties:search:%s:%s:%.0f:%.0f:%d:%d",
		filter.Region, filter.PropertyType, filter.MinPrice, filter.MaxPrice,
		filter.MinBedrooms, filter.Limit)
}

// Index writes through to the underlying adapter and invalidates
// stale per-property entries.
func (a *CachedPropertyAdapter) Index(ctx context.Context, properties []entities.PropertyRecord) error {
	if err := a.adapter.Index(ctx, properties); err != nil {
		return err
	}
	for _, p := range properties {
		if err := a.cache.Delete(ctx, propertyCacheKey(p.PropertyID)); err != nil {
			log.Debug().Err(err).Str("property_id", p.PropertyID).Msg("failed to invalidate cached property")
		}
	}
	return nil
}

// Search retrieves candidate properties with caching
func (a *CachedPropertyAdapter) Search(ctx context.Context, filter repositories.PropertySearchFilter) ([]entities.PropertyRecord, error) {
	cacheKey := searchCacheKey(filter)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var results []entities.PropertyRecord
		if err := json.Unmarshal(cached, &results); err == nil {
			return results, nil
		}
		log.Debug().Err(err).Str("key", cacheKey).Msg("failed to unmarshal cached search results")
	}

	results, err := a.adapter.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(results); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, searchResultsTTL); err != nil {
			log.Debug().Err(err).Str("key", cacheKey).Msg("failed to cache search results")
		}
	}

	return results, nil
}

// GetByID retrieves a property by ID with caching
func (a *CachedPropertyAdapter) GetByID(ctx context.Context, propertyID string) (*entities.PropertyRecord, error) {
	cacheKey := propertyCacheKey(propertyID)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var property entities.PropertyRecord
		if err := json.Unmarshal(cached, &property); err == nil {
			return &property, nil
		}
		log.Debug().Err(err).Str("key", cacheKey).Msg("failed to unmarshal cached property")
	}

	property, err := a.adapter.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(property); err == nil {
		if err := a.cache.Set(ctx, cacheKey, data, propertyByIDTTL); err != nil {
			log.Debug().Err(err).Str("key", cacheKey).Msg("failed to cache property")
		}
	}

	return property, nil
}
