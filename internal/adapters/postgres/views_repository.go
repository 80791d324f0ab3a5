package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// PostgresViewsRepository — реализация ViewStoragePort для PostgreSQL.
type PostgresViewsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresViewsRepository(pool *pgxpool.Pool) (*PostgresViewsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresViewsRepository{pool: pool}, nil
}

// RecordUnique вставляет просмотр; ON CONFLICT DO NOTHING означает,
// что повторный просмотр тем же пользователем не меняет ничего.
func (r *PostgresViewsRepository) RecordUnique(ctx context.Context, viewerID int64, adType domain.AdType, adID int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx,
		`INSERT INTO ad_views (viewer_telegram_id, ad_type, ad_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (viewer_telegram_id, ad_type, ad_id) DO NOTHING`,
		viewerID, string(adType), adID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record ad view: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
