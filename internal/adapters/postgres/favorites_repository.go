package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// PostgresFavoritesRepository — реализация FavoriteStoragePort для PostgreSQL.
type PostgresFavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavoritesRepository(pool *pgxpool.Pool) (*PostgresFavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresFavoritesRepository{pool: pool}, nil
}

func (r *PostgresFavoritesRepository) Add(ctx context.Context, userID int64, adType domain.AdType, adID int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, ad_type, ad_id) VALUES ($1, $2, $3)`,
		userID, string(adType), adID,
	)
	if err != nil {
		// 23505 — уже в избранном, считаем операцию успешной.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil
		}
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *PostgresFavoritesRepository) Remove(ctx context.Context, userID int64, adType domain.AdType, adID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND ad_type = $2 AND ad_id = $3`,
		userID, string(adType), adID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *PostgresFavoritesRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, ad_type, ad_id, created_at
		 FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		var adType string
		if err := rows.Scan(&f.ID, &f.UserID, &adType, &f.AdID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		f.AdType = domain.AdType(adType)
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during favorite rows iteration: %w", err)
	}
	return favorites, nil
}
