package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

const userColumns = `id, telegram_id, username, full_name, phone, is_admin, is_banned, created_at, updated_at`

// PostgresUsersRepository — реализация UserStoragePort для PostgreSQL.
type PostgresUsersRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUsersRepository(pool *pgxpool.Pool) (*PostgresUsersRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresUsersRepository{pool: pool}, nil
}

func (r *PostgresUsersRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE telegram_id = $1"
	return r.getOne(ctx, query, telegramID)
}

func (r *PostgresUsersRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return r.getOne(ctx, query, id)
}

func (r *PostgresUsersRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var u domain.User
	var username, fullName, phone *string

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.TelegramID, &username, &fullName, &phone,
		&u.IsAdmin, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	u.Username = deref(username)
	u.FullName = deref(fullName)
	u.Phone = deref(phone)
	return &u, nil
}

// GetOrCreate использует UPSERT по telegram_id: новые username и
// full_name перезаписывают старые, только если они непустые.
func (r *PostgresUsersRepository) GetOrCreate(ctx context.Context, telegramID int64, username, fullName string) (*domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresUsersRepository",
		"method":      "GetOrCreate",
		"telegram_id": telegramID,
	})

	query := `INSERT INTO users (telegram_id, username, full_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username  = COALESCE(NULLIF(EXCLUDED.username, ''), users.username),
			full_name = COALESCE(NULLIF(EXCLUDED.full_name, ''), users.full_name),
			updated_at = now()
		RETURNING ` + userColumns

	var u domain.User
	var dbUsername, dbFullName, phone *string

	err := r.pool.QueryRow(ctx, query,
		telegramID, nullIfEmpty(username), nullIfEmpty(fullName),
	).Scan(
		&u.ID, &u.TelegramID, &dbUsername, &dbFullName, &phone,
		&u.IsAdmin, &u.IsBanned, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to get or create user", err, nil)
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	u.Username = deref(dbUsername)
	u.FullName = deref(dbFullName)
	u.Phone = deref(phone)
	return &u, nil
}

func (r *PostgresUsersRepository) UpdateName(ctx context.Context, telegramID int64, name string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE users SET full_name = $1, updated_at = now() WHERE telegram_id = $2`,
		name, telegramID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresUsersRepository) SetBanned(ctx context.Context, telegramID int64, banned bool) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE users SET is_banned = $1, updated_at = now() WHERE telegram_id = $2`,
		banned, telegramID,
	)
	if err != nil {
		return fmt.Errorf("failed to set ban state: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
