package database

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/doug-martin/goqu/v9"
	"github.com/rs/zerolog/log"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	"github.com/propie/recommendation-engine/internal/infrastructure/clients/postgres"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

// MarketDataAdapter persists per-region market benchmarks in Postgres and
// serves reads from an atomically swapped in-memory snapshot set, keeping
// the hot scoring path off the database. Replace rewrites the table and
// swaps the cache; readers see either the old or the new set.
type MarketDataAdapter struct {
	client *postgres.Client
	db     *goqu.Database
	cache  atomic.Pointer[map[string]entities.MarketSnapshot]
}

var _ repositories.MarketDataRepository = (*MarketDataAdapter)(nil)

// NewMarketDataAdapter creates a market data adapter and warms its cache
// from the database.
func NewMarketDataAdapter(ctx context.Context, client *postgres.Client) (*MarketDataAdapter, error) {
	a := &MarketDataAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
	empty := map[string]entities.MarketSnapshot{}
	a.cache.Store(&empty)

	if err := a.reload(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Snapshot returns the benchmark for a region, matched
// case-insensitively.
func (a *MarketDataAdapter) Snapshot(_ context.Context, region string) (entities.MarketSnapshot, bool) {
	snapshot, ok := (*a.cache.Load())[strings.ToLower(region)]
	return snapshot, ok
}

// Replace rewrites the benchmark table and swaps the read cache.
func (a *MarketDataAdapter) Replace(ctx context.Context, snapshots []entities.MarketSnapshot) error {
	tx, err := a.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM market_snapshots"); err != nil {
		return apperrors.NewInternalError("failed to clear market snapshots", err)
	}

	for _, snapshot := range snapshots {
		record := goqu.Record{
			"region":        snapshot.Region,
			"average_price": snapshot.AveragePrice,
			"price_growth":  snapshot.PriceGrowth,
			"rental_yield":  snapshot.RentalYield,
			"market_trend":  string(snapshot.MarketTrend),
			"updated_at":    snapshot.UpdatedAt,
		}
		query, args, err := a.db.Insert("market_snapshots").Rows(record).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build market snapshot insert", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError("failed to insert market snapshot", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit market snapshots", err)
	}

	next := make(map[string]entities.MarketSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		next[strings.ToLower(snapshot.Region)] = snapshot
	}
	a.cache.Store(&next)

	log.Info().Int("regions", len(snapshots)).Msg("market benchmarks replaced")
	return nil
}

func (a *MarketDataAdapter) reload(ctx context.Context) error {
	query, args, err := a.db.From("market_snapshots").
		Select("region", "average_price", "price_growth", "rental_yield", "market_trend", "updated_at").
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build market snapshot query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to load market snapshots", err)
	}
	defer rows.Close()

	next := map[string]entities.MarketSnapshot{}
	for rows.Next() {
		var snapshot entities.MarketSnapshot
		var trend string
		if err := rows.Scan(
			&snapshot.Region,
			&snapshot.AveragePrice,
			&snapshot.PriceGrowth,
			&snapshot.RentalYield,
			&trend,
			&snapshot.UpdatedAt,
		); err != nil {
			return apperrors.NewInternalError("failed to scan market snapshot", err)
		}
		snapshot.MarketTrend = entities.MarketTrend(trend)
		next[strings.ToLower(snapshot.Region)] = snapshot
	}
	if err := rows.Err(); err != nil {
		return apperrors.NewInternalError("failed to iterate market snapshots", err)
	}

	a.cache.Store(&next)
	return nil
}
