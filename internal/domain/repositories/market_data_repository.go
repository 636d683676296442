package repositories

import (
	"context"

	"github.com/propie/recommendation-engine/internal/domain/entities"
)

// MarketDataRepository defines the interface for per-region market
// benchmarks. Reads are hot-path (every market-opportunity sub-score);
// implementations must make Replace an atomic swap visible to concurrent
// readers, never an in-place mutation.
type MarketDataRepository interface {
	// Snapshot returns the benchmark for a region, matched
	// case-insensitively. ok is false when the region is unknown.
	Snapshot(ctx context.Context, region string) (entities.MarketSnapshot, bool)

	// Replace swaps in a full new benchmark set.
	Replace(ctx context.Context, snapshots []entities.MarketSnapshot) error
}
