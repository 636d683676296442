package memory

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
)

// MarketDataStore is an in-memory market benchmark store. The benchmark
// set is held behind an atomic pointer: Replace swaps the whole map so
// concurrent readers always see a consistent snapshot set.
type MarketDataStore struct {
	snapshots atomic.Pointer[map[string]entities.MarketSnapshot]
}

// NewMarketDataStore creates an empty market data store.
func NewMarketDataStore() *MarketDataStore {
	s := &MarketDataStore{}
	empty := map[string]entities.MarketSnapshot{}
	s.snapshots.Store(&empty)
	return s
}

var _ repositories.MarketDataRepository = (*MarketDataStore)(nil)

// Snapshot returns the benchmark for a region, matched
// case-insensitively.
func (s *MarketDataStore) Snapshot(_ context.Context, region string) (entities.MarketSnapshot, bool) {
	snapshot, ok := (*s.snapshots.Load())[strings.ToLower(region)]
	return snapshot, ok
}

// Replace swaps in a full new benchmark set.
func (s *MarketDataStore) Replace(_ context.Context, snapshots []entities.MarketSnapshot) error {
	next := make(map[string]entities.MarketSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		next[strings.ToLower(snapshot.Region)] = snapshot
	}
	s.snapshots.Store(&next)
	return nil
}

// SeedIrishMarkets returns default benchmarks for the launch regions.
func SeedIrishMarkets(now time.Time) []entities.MarketSnapshot {
	return []entities.MarketSnapshot{
		{Region: "Dublin", AveragePrice: 450_000, PriceGrowth: 0.08, RentalYield: 0.045, MarketTrend: entities.TrendRising, UpdatedAt: now},
		{Region: "Cork", AveragePrice: 320_000, PriceGrowth: 0.12, RentalYield: 0.055, MarketTrend: entities.TrendRising, UpdatedAt: now},
		{Region: "Galway", AveragePrice: 280_000, PriceGrowth: 0.09, RentalYield: 0.05, MarketTrend: entities.TrendStable, UpdatedAt: now},
	}
}
