package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	"github.com/propie/recommendation-engine/internal/infrastructure/clients/postgres"
	apperrors "github.com/propie/recommendation-engine/pkg/errors"
)

// InteractionAdapter implements durable interaction persistence in
// Postgres: an append-only user_interactions table plus a
// property_views counter table maintained on the same write.
type InteractionAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewInteractionAdapter creates a new interaction adapter.
func NewInteractionAdapter(client *postgres.Client) repositories.InteractionRepository {
	return &InteractionAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Append inserts an interaction and increments the property's view
// counter.
func (a *InteractionAdapter) Append(ctx context.Context, interaction *entities.Interaction) error {
	if interaction == nil {
		return apperrors.NewInternalError("interaction is nil", fmt.Errorf("interaction is nil"))
	}

	var feedback sql.NullString
	if interaction.Feedback != nil {
		raw, err := json.Marshal(interaction.Feedback)
		if err != nil {
			return apperrors.NewInternalError("failed to serialize feedback", err)
		}
		feedback = sql.NullString{String: string(raw), Valid: true}
	}

	record := goqu.Record{
		"id":               interaction.ID,
		"user_id":          interaction.UserID,
		"property_id":      interaction.PropertyID,
		"interaction_type": string(interaction.InteractionType),
		"feedback":         feedback,
		"created_at":       interaction.Timestamp,
	}

	query, args, err := a.db.Insert("user_interactions").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build interaction insert query", err)
	}

	tx, err := a.client.DB().BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to insert interaction", err)
	}

	viewQuery := `INSERT INTO property_views (property_id, views) VALUES ($1, 1)
		ON CONFLICT (property_id) DO UPDATE SET views = property_views.views + 1`
	if _, err := tx.ExecContext(ctx, viewQuery, interaction.PropertyID); err != nil {
		return apperrors.NewInternalError("failed to increment property views", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit interaction", err)
	}
	return nil
}

// ListByUser returns the user's interactions in append order.
func (a *InteractionAdapter) ListByUser(ctx context.Context, userID string) ([]entities.Interaction, error) {
	query, args, err := a.db.From("user_interactions").
		Select("id", "user_id", "property_id", "interaction_type", "feedback", "created_at").
		Where(goqu.Ex{"user_id": userID}).
		Order(goqu.I("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build interaction list query", err)
	}
	return a.queryInteractions(ctx, query, args...)
}

// ListRated returns every interaction carrying feedback, in append order.
func (a *InteractionAdapter) ListRated(ctx context.Context) ([]entities.Interaction, error) {
	query, args, err := a.db.From("user_interactions").
		Select("id", "user_id", "property_id", "interaction_type", "feedback", "created_at").
		Where(goqu.C("feedback").IsNotNull()).
		Order(goqu.I("created_at").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build rated interaction query", err)
	}
	return a.queryInteractions(ctx, query, args...)
}

// CountAll returns the total number of recorded interactions.
func (a *InteractionAdapter) CountAll(ctx context.Context) (int, error) {
	var count int
	row := a.client.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM user_interactions")
	if err := row.Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count interactions", err)
	}
	return count, nil
}

// TotalViews returns the sum of per-property view counters.
func (a *InteractionAdapter) TotalViews(ctx context.Context) (int, error) {
	var total sql.NullInt64
	row := a.client.DB().QueryRowContext(ctx, "SELECT SUM(views) FROM property_views")
	if err := row.Scan(&total); err != nil {
		return 0, apperrors.NewInternalError("failed to sum property views", err)
	}
	return int(total.Int64), nil
}

func (a *InteractionAdapter) queryInteractions(ctx context.Context, query string, args ...interface{}) ([]entities.Interaction, error) {
	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query interactions", err)
	}
	defer rows.Close()

	var interactions []entities.Interaction
	for rows.Next() {
		var interaction entities.Interaction
		var interactionType string
		var feedback sql.NullString
		if err := rows.Scan(
			&interaction.ID,
			&interaction.UserID,
			&interaction.PropertyID,
			&interactionType,
			&feedback,
			&interaction.Timestamp,
		); err != nil {
			return nil, apperrors.NewInternalError("failed to scan interaction", err)
		}
		interaction.InteractionType = entities.InteractionType(interactionType)
		if feedback.Valid {
			var fb entities.InteractionFeedback
			if err := json.Unmarshal([]byte(feedback.String), &fb); err != nil {
				return nil, apperrors.NewInternalError("failed to decode feedback", err)
			}
			interaction.Feedback = &fb
		}
		interactions = append(interactions, interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate interactions", err)
	}
	return interactions, nil
}
