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

const carAdColumns = `id, user_id, brand, model, year, mileage, engine_volume, fuel_type,
	transmission, color, price, description, has_gbo, region, city, contact_phone,
	contact_telegram, status, rejection_reason, view_count, expires_at, created_at, updated_at`

// PostgresCarAdsRepository — реализация CarAdStoragePort для PostgreSQL.
type PostgresCarAdsRepository struct {
	pool   *pgxpool.Pool
	photos port.PhotoStoragePort
}

func NewPostgresCarAdsRepository(pool *pgxpool.Pool, photos port.PhotoStoragePort) (*PostgresCarAdsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresCarAdsRepository{pool: pool, photos: photos}, nil
}

// approvedConds собирает условия каталога: одобрено, не просрочено,
// плюс заданные фильтры. Пустые/нулевые фильтры не попадают в запрос.
func approvedCarConds(f domain.CarAdFilter) *condBuilder {
	b := &condBuilder{}
	b.add("status = ?", string(domain.StatusApproved))
	b.add("(expires_at IS NULL OR expires_at > ?)", time.Now().UTC())

	if f.PriceMin > 0 {
		b.add("price >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		b.add("price <= ?", f.PriceMax)
	}
	if f.YearMin > 0 {
		b.add("year >= ?", f.YearMin)
	}
	if f.YearMax > 0 {
		b.add("year <= ?", f.YearMax)
	}
	if f.Brand != "" {
		b.add("brand = ?", f.Brand)
	}
	if f.Model != "" {
		b.add("model = ?", f.Model)
	}
	if f.City != "" {
		b.add("city = ?", f.City)
	}
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		b.add("(brand ILIKE ? OR model ILIKE ? OR description ILIKE ?)", pattern, pattern, pattern)
	}
	return b
}

func (r *PostgresCarAdsRepository) FindApproved(ctx context.Context, f domain.CarAdFilter) (*domain.PaginatedCarAds, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresCarAdsRepository",
		"method":    "FindApproved",
	})
	repoLogger.Debug("Querying approved car ads", nil)

	b := approvedCarConds(f)
	where := b.where()

	var total int
	countQuery := "SELECT COUNT(*) FROM car_ads WHERE " + where
	if err := r.pool.QueryRow(ctx, countQuery, b.args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count car ads", err, nil)
		return nil, fmt.Errorf("failed to count car ads: %w", err)
	}

	query := "SELECT " + carAdColumns + " FROM car_ads WHERE " + where +
		" ORDER BY " + carSortClause(f.Sort) +
		" LIMIT " + b.next(f.Limit) + " OFFSET " + b.next(f.Offset)

	rows, err := r.pool.Query(ctx, query, b.args...)
	if err != nil {
		repoLogger.Error("Failed to query car ads", err, nil)
		return nil, fmt.Errorf("failed to query car ads: %w", err)
	}
	defer rows.Close()

	ads, err := scanCarAds(rows)
	if err != nil {
		return nil, err
	}

	previews, err := r.buildPreviews(ctx, ads)
	if err != nil {
		return nil, err
	}

	return &domain.PaginatedCarAds{Items: previews, Total: total}, nil
}

func (r *PostgresCarAdsRepository) buildPreviews(ctx context.Context, ads []domain.CarAd) ([]domain.CarAdPreview, error) {
	ids := make([]int64, len(ads))
	for i, ad := range ads {
		ids[i] = ad.ID
	}
	covers, err := r.photos.FirstPhotos(ctx, domain.AdTypeCar, ids)
	if err != nil {
		return nil, err
	}

	previews := make([]domain.CarAdPreview, 0, len(ads))
	for _, ad := range ads {
		previews = append(previews, domain.CarAdPreview{
			ID:           ad.ID,
			Brand:        ad.Brand,
			Model:        ad.Model,
			Year:         ad.Year,
			Price:        ad.Price,
			City:         ad.City,
			Mileage:      ad.Mileage,
			FuelType:     ad.FuelType,
			Transmission: ad.Transmission,
			Photo:        covers[ad.ID],
			ViewCount:    ad.ViewCount,
		})
	}
	return previews, nil
}

func (r *PostgresCarAdsRepository) GetApprovedByID(ctx context.Context, adID int64) (*domain.CarAd, error) {
	query := "SELECT " + carAdColumns + " FROM car_ads WHERE id = $1 AND status = $2"
	return r.getOne(ctx, query, adID, string(domain.StatusApproved))
}

func (r *PostgresCarAdsRepository) GetByID(ctx context.Context, adID int64) (*domain.CarAd, error) {
	query := "SELECT " + carAdColumns + " FROM car_ads WHERE id = $1"
	return r.getOne(ctx, query, adID)
}

func (r *PostgresCarAdsRepository) getOne(ctx context.Context, query string, args ...interface{}) (*domain.CarAd, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query car ad: %w", err)
	}
	defer rows.Close()

	ads, err := scanCarAds(rows)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, domain.ErrNotFound
	}
	return &ads[0], nil
}

func (r *PostgresCarAdsRepository) Insert(ctx context.Context, ad *domain.CarAd) (int64, error) {
	query := `INSERT INTO car_ads (
		user_id, brand, model, year, mileage, engine_volume, fuel_type, transmission,
		color, price, description, has_gbo, region, city, contact_phone,
		contact_telegram, status, expires_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		ad.UserID, ad.Brand, ad.Model, ad.Year, ad.Mileage, ad.EngineVolume,
		string(ad.FuelType), string(ad.Transmission), ad.Color, ad.Price,
		ad.Description, ad.HasGBO, nullIfEmpty(ad.Region), ad.City,
		ad.ContactPhone, nullIfEmpty(ad.ContactTelegram), string(ad.Status), ad.ExpiresAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert car ad: %w", err)
	}
	return id, nil
}

func (r *PostgresCarAdsRepository) Update(ctx context.Context, ad *domain.CarAd) error {
	query := `UPDATE car_ads SET
		brand = $1, model = $2, year = $3, mileage = $4, engine_volume = $5,
		fuel_type = $6, transmission = $7, color = $8, price = $9, description = $10,
		has_gbo = $11, region = $12, city = $13, contact_phone = $14,
		contact_telegram = $15, status = $16, view_count = $17, updated_at = now()
	WHERE id = $18`

	cmd, err := r.pool.Exec(ctx, query,
		ad.Brand, ad.Model, ad.Year, ad.Mileage, ad.EngineVolume,
		string(ad.FuelType), string(ad.Transmission), ad.Color, ad.Price, ad.Description,
		ad.HasGBO, nullIfEmpty(ad.Region), ad.City, ad.ContactPhone,
		nullIfEmpty(ad.ContactTelegram), string(ad.Status), ad.ViewCount, ad.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update car ad: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresCarAdsRepository) SetStatus(ctx context.Context, adID int64, status domain.AdStatus, reason string) error {
	query := `UPDATE car_ads SET status = $1, rejection_reason = $2, updated_at = now() WHERE id = $3`
	cmd, err := r.pool.Exec(ctx, query, string(status), nullIfEmpty(reason), adID)
	if err != nil {
		return fmt.Errorf("failed to set car ad status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresCarAdsRepository) FindByUser(ctx context.Context, userID int64) ([]domain.CarAd, error) {
	query := "SELECT " + carAdColumns + " FROM car_ads WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user car ads: %w", err)
	}
	defer rows.Close()
	return scanCarAds(rows)
}

func (r *PostgresCarAdsRepository) FindPending(ctx context.Context) ([]domain.CarAd, error) {
	query := "SELECT " + carAdColumns + " FROM car_ads WHERE status = $1 ORDER BY created_at ASC"
	rows, err := r.pool.Query(ctx, query, string(domain.StatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to query pending car ads: %w", err)
	}
	defer rows.Close()
	return scanCarAds(rows)
}

func (r *PostgresCarAdsRepository) FindRecentSimilar(ctx context.Context, userID int64, brand, model string, year int, since time.Time) (*domain.CarAd, error) {
	query := "SELECT " + carAdColumns + ` FROM car_ads
		WHERE user_id = $1 AND brand = $2 AND model = $3 AND year = $4
		AND created_at > $5 AND status <> $6
		LIMIT 1`

	rows, err := r.pool.Query(ctx, query, userID, brand, model, year, since, string(domain.StatusRejected))
	if err != nil {
		return nil, fmt.Errorf("failed to query similar car ads: %w", err)
	}
	defer rows.Close()

	ads, err := scanCarAds(rows)
	if err != nil {
		return nil, err
	}
	if len(ads) == 0 {
		return nil, nil
	}
	return &ads[0], nil
}

func (r *PostgresCarAdsRepository) CountByUserAndStatus(ctx context.Context, userID int64, status domain.AdStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM car_ads WHERE user_id = $1 AND status = $2`,
		userID, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user car ads: %w", err)
	}
	return count, nil
}

func (r *PostgresCarAdsRepository) CountByStatus(ctx context.Context, status domain.AdStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM car_ads WHERE status = $1`, string(status),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count car ads: %w", err)
	}
	return count, nil
}

func (r *PostgresCarAdsRepository) CitiesWithApproved(ctx context.Context) ([]domain.CityCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT city, COUNT(*) FROM car_ads WHERE status = $1 GROUP BY city`,
		string(domain.StatusApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query car ad cities: %w", err)
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

// scanCarAds вычитывает все строки курсора в доменные структуры.
func scanCarAds(rows pgx.Rows) ([]domain.CarAd, error) {
	var ads []domain.CarAd
	for rows.Next() {
		var ad domain.CarAd
		var fuel, transmission, status string
		var region, contactTelegram, rejectionReason *string
		var expiresAt *time.Time

		if err := rows.Scan(
			&ad.ID, &ad.UserID, &ad.Brand, &ad.Model, &ad.Year, &ad.Mileage,
			&ad.EngineVolume, &fuel, &transmission, &ad.Color, &ad.Price,
			&ad.Description, &ad.HasGBO, &region, &ad.City, &ad.ContactPhone,
			&contactTelegram, &status, &rejectionReason, &ad.ViewCount,
			&expiresAt, &ad.CreatedAt, &ad.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan car ad: %w", err)
		}

		ad.FuelType = domain.FuelType(fuel)
		ad.Transmission = domain.Transmission(transmission)
		ad.Status = domain.AdStatus(status)
		ad.Region = deref(region)
		ad.ContactTelegram = deref(contactTelegram)
		ad.RejectionReason = deref(rejectionReason)
		ad.ExpiresAt = expiresAt
		ads = append(ads, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during car ad rows iteration: %w", err)
	}
	return ads, nil
}

// nullIfEmpty превращает пустую строку в NULL для nullable-колонок.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
