package postgres_adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

const plateAdColumns = `id, user_id, plate_number, price, description, region, city,
	contact_phone, contact_telegram, status, rejection_reason, view_count,
	expires_at, channel_message_id, created_at, updated_at`

// PostgresPlateAdsRepository — реализация PlateAdStoragePort для PostgreSQL.
type PostgresPlateAdsRepository struct {
	pool   *pgxpool.Pool
	photos port.PhotoStoragePort
}

func NewPostgresPlateAdsRepository(pool *pgxpool.Pool, photos port.PhotoStoragePort) (*PostgresPlateAdsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPlateAdsRepository{pool: pool, photos: photos}, nil
}

func approvedPlateConds(f domain.PlateAdFilter) *condBuilder {
	b := &condBuilder{}
	b.add("status = ?", string(domain.StatusApproved))
	b.add("(expires_at IS NULL OR expires_at > ?)", time.Now().UTC())

	if f.PriceMin > 0 {
		b.add("price >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		b.add("price <= ?", f.PriceMax)
	}
	if f.City != "" {
		b.add("city = ?", f.City)
	}
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		b.add("(plate_number ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	return b
}

func (r *PostgresPlateAdsRepository) FindApproved(ctx context.Context, f domain.PlateAdFilter) (*domain.PaginatedPlateAds, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPlateAdsRepository",
		"method":    "FindApproved",
	})
	repoLogger.Debug("Querying approved plate ads", nil)

	b := approvedPlateConds(f)
	where := b.where()

	var total int
	countQuery := "SELECT COUNT(*) FROM plate_ads WHERE " + where
	if err := r.pool.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count plate ads", err, nil)
		return nil, fmt.Errorf("failed to count plate ads: %w", err)
	}

	query := "SELECT " + plateAdColumns + " FROM plate_ads WHERE " + where +
		" ORDER BY " + plateSortClause(f.Sort) +
		" LIMIT " + b.next(f.Limit) + " OFFSET " + b.next(f.Offset)

	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		repoLogger.Error("Failed to query plate ads", err, nil)
		return nil, fmt.Errorf("failed to query plate ads: %w", err)
	}
	defer rows.Close()

	ads, err := scanPlateAds(rows)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(ads))
	for i, ad := range ads {
		ids[i] = ad.ID
	}
	covers, err := r.photos.FirstPhotos(ctx, domain.AdTypePlate, ids)
	if err != nil {
		return nil, err
	}

	previews := make([]domain.PlateAdPreview, 0, len(ads))
	for _, ad := range ads {
		previews = append(previews, domain.PlateAdPreview{
			ID:          ad.ID,
			PlateNumber: ad.PlateNumber,
			Price:       ad.Price,
			City:        ad.City,
			Photo:       covers[ad.ID],
			ViewCount:   ad.ViewCount,
		})
	}

	return &domain.PaginatedPlateAds{Items: previews, Total: total}, nil
}

func (r *PostgresPlateAdsRepository) GetApprovedByID(ctx context.Context, adID int64) (*domain.PlateAd, error) {
	query := "SELECT " + plateAdColumns + " FROM plate_ads WHERE id = $1 AND status = $2"
	return r.getOne(ctx, query, adID, string(domain.StatusApproved))
}

func (r *PostgresPlateAdsRepository) GetByID(ctx context.Context, adID int64) (*domain.PlateAd, error) {
	query := "SELECT " + plateAdColumns + " FROM plate_ads WHERE id = $1"
	return r.getOne(ctx, query, adID)
}

func (r *PostgresPlateAdsRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.PlateAd, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query plate ad: %w", err)
	}
	defer rows.Close()

	ads, err := scanPlateAds(rows)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, domain.ErrNotFound
	}
	return &ads[0], nil
}

func (r *PostgresPlateAdsRepository) Insert(ctx context.Context, ad *domain.PlateAd) (int64, error) {
	query := `INSERT INTO plate_ads (
		user_id, plate_number, price, description, region, city,
		contact_phone, contact_telegram, status, expires_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		ad.UserID, ad.PlateNumber, ad.Price, ad.Description,
		nullIfEmpty(ad.Region), ad.City, ad.ContactPhone,
		nullIfEmpty(ad.ContactTelegram), string(ad.Status), ad.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert plate ad: %w", err)
	}
	return id, nil
}

func (r *PostgresPlateAdsRepository) Update(ctx context.Context, ad *domain.PlateAd) error {
	query := `UPDATE plate_ads SET
		plate_number = $1, price = $2, description = $3, region = $4, city = $5,
		contact_phone = $6, contact_telegram = $7, status = $8, view_count = $9,
		updated_at = now()
	WHERE id = $10`

	cmd, err := r.pool.Exec(ctx, query,
		ad.PlateNumber, ad.Price, ad.Description, nullIfEmpty(ad.Region), ad.City,
		ad.ContactPhone, nullIfEmpty(ad.ContactTelegram), string(ad.Status),
		ad.ViewCount, ad.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update plate ad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPlateAdsRepository) SetStatus(ctx context.Context, adID int64, status domain.AdStatus, reason string) error {
	query := `UPDATE plate_ads SET status = $1, rejection_reason = $2, updated_at = now() WHERE id = $3`
	cmd, err := r.pool.Exec(ctx, query, string(status), nullIfEmpty(reason), adID)
	if err != nil {
		return fmt.Errorf("failed to set plate ad status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPlateAdsRepository) FindByUser(ctx context.Context, userID int64) ([]domain.PlateAd, error) {
	query := "SELECT " + plateAdColumns + " FROM plate_ads WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user plate ads: %w", err)
	}
	defer rows.Close()
	return scanPlateAds(rows)
}

func (r *PostgresPlateAdsRepository) FindPending(ctx context.Context) ([]domain.PlateAd, error) {
	query := "SELECT " + plateAdColumns + " FROM plate_ads WHERE status = $1 ORDER BY created_at ASC"
	rows, err := r.pool.Query(ctx, query, string(domain.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending plate ads: %w", err)
	}
	defer rows.Close()
	return scanPlateAds(rows)
}

func (r *PostgresPlateAdsRepository) FindRecentSimilar(ctx context.Context, userID int64, plateNumber string, since time.Time) (*domain.PlateAd, error) {
	query := "SELECT " + plateAdColumns + ` FROM plate_ads
		WHERE user_id = $1 AND plate_number = $2 AND created_at > $3 AND status <> $4
		LIMIT 1`

	rows, err := r.pool.Query(ctx, query, userID, plateNumber, since, string(domain.StatusRejected))
	if err != nil {
		return nil, fmt.Errorf("failed to query similar plate ads: %w", err)
	}
	defer rows.Close()

	ads, err := scanPlateAds(rows)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	return &ads[0], nil
}

func (r *PostgresPlateAdsRepository) CountByUserAndStatus(ctx context.Context, userID int64, status domain.AdStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM plate_ads WHERE user_id = $1 AND status = $2`,
		userID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user plate ads: %w", err)
	}
	return count, nil
}

func (r *PostgresPlateAdsRepository) CountByStatus(ctx context.Context, status domain.AdStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM plate_ads WHERE status = $1`, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count plate ads: %w", err)
	}
	return count, nil
}

func (r *PostgresPlateAdsRepository) CitiesWithApproved(ctx context.Context) ([]domain.CityCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT city, COUNT(*) FROM plate_ads WHERE status = $1 GROUP BY city`,
		string(domain.StatusApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plate ad cities: %w", err)
	}
	defer rows.Close()

	var cities []domain.CityCount
	for rows.Next() {
		var c domain.CityCount
		if err := rows.Scan(&c.City, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during city rows iteration: %w", err)
	}
	return cities, nil
}

func scanPlateAds(rows pgx.Rows) ([]domain.PlateAd, error) {
	var ads []domain.PlateAd
	for rows.Next() {
		var ad domain.PlateAd
		var status string
		var region, contactTelegram, rejectionReason *string
		var expiresAt *time.Time
		var channelMessageID *int64

		if err := rows.Scan(
			&ad.ID, &ad.UserID, &ad.PlateNumber, &ad.Price, &ad.Description,
			&region, &ad.City, &ad.ContactPhone, &contactTelegram, &status,
			&rejectionReason, &ad.ViewCount, &expiresAt, &channelMessageID,
			&ad.CreatedAt, &ad.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan plate ad: %w", err)
		}

		ad.Status = domain.AdStatus(status)
		ad.Region = deref(region)
		ad.ContactTelegram = deref(contactTelegram)
		ad.RejectionReason = deref(rejectionReason)
		ad.ExpiresAt = expiresAt
		ad.ChannelMessageID = channelMessageID
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during plate ad rows iteration: %w", err)
	}
	return ads, nil
}
