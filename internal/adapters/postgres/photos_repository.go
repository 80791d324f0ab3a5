package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// PostgresPhotosRepository — реализация PhotoStoragePort для PostgreSQL.
type PostgresPhotosRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPhotosRepository(pool *pgxpool.Pool) (*PostgresPhotosRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPhotosRepository{pool: pool}, nil
}

func (r *PostgresPhotosRepository) Attach(ctx context.Context, adType domain.AdType, adID int64, fileIDs []string) error {
	if len(fileIDs) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO ad_photos (ad_type, ad_id, file_id, position) VALUES ($1, $2, $3, $4)`
	for i, fileID := range fileIDs {
		if _, err := tx.Exec(ctx, query, string(adType), adID, fileID, i); err != nil {
			return fmt.Errorf("failed to insert ad photo: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit photos: %w", err)
	}
	return nil
}

func (r *PostgresPhotosRepository) FindByAd(ctx context.Context, adType domain.AdType, adID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT file_id FROM ad_photos WHERE ad_type = $1 AND ad_id = $2 ORDER BY position ASC`,
		string(adType), adID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query ad photos: %w", err)
	}
	defer rows.Close()

	var fileIDs []string
	for rows.Next() {
		var fileID string
		if err := rows.Scan(&fileID); err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		fileIDs = append(fileIDs, fileID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during photo rows iteration: %w", err)
	}
	return fileIDs, nil
}

func (r *PostgresPhotosRepository) FirstPhotos(ctx context.Context, adType domain.AdType, adIDs []int64) (map[int64]string, error) {
	covers := make(map[int64]string)
	if len(adIDs) == 0 {
		return covers, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT ad_id, file_id FROM ad_photos
		 WHERE ad_type = $1 AND ad_id = ANY($2)
		 ORDER BY ad_id, position ASC`,
		string(adType), adIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cover photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var adID int64
		var fileID string
		if err := rows.Scan(&adID, &fileID); err != nil {
			return nil, fmt.Errorf("failed to scan cover photo row: %w", err)
		}
		// Строки идут по возрастанию position, первая и есть обложка.
		if _, ok := covers[adID]; !ok {
			covers[adID] = fileID
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during cover photo rows iteration: %w", err)
	}
	return covers, nil
}
