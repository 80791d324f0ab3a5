package port

import (
	"context"
	"time"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// CarAdStoragePort — контракт адаптера хранения авто-объявлений.
type CarAdStoragePort interface {
	// FindApproved возвращает страницу одобренных и непросроченных
	// объявлений по фильтрам вместе с общим числом совпадений.
	FindApproved(ctx context.Context, f domain.CarAdFilter) (*domain.PaginatedCarAds, error)

	// GetApprovedByID возвращает одобренное объявление или domain.ErrNotFound.
	GetApprovedByID(ctx context.Context, adID int64) (*domain.CarAd, error)

	// GetByID возвращает объявление в любом статусе или domain.ErrNotFound.
	GetByID(ctx context.Context, adID int64) (*domain.CarAd, error)

	// Insert сохраняет новое объявление и возвращает его id.
	Insert(ctx context.Context, ad *domain.CarAd) (int64, error)

	// Update перезаписывает изменяемые поля объявления, включая статус.
	Update(ctx context.Context, ad *domain.CarAd) error

	// SetStatus меняет статус; reason пишется в rejection_reason (пустая
	// строка очищает его).
	SetStatus(ctx context.Context, adID int64, status domain.AdStatus, reason string) error

	// FindByUser возвращает все объявления пользователя, новые первыми.
	FindByUser(ctx context.Context, userID int64) ([]domain.CarAd, error)

	// FindPending возвращает очередь модерации, старые первыми.
	FindPending(ctx context.Context) ([]domain.CarAd, error)

	// FindRecentSimilar ищет неотклонённое объявление той же марки,
	// модели и года от того же пользователя, поданное после since.
	FindRecentSimilar(ctx context.Context, userID int64, brand, model string, year int, since time.Time) (*domain.CarAd, error)

	// CountByUserAndStatus — число объявлений пользователя в статусе.
	CountByUserAndStatus(ctx context.Context, userID int64, status domain.AdStatus) (int, error)

	// CountByStatus — общее число объявлений в статусе.
	CountByStatus(ctx context.Context, status domain.AdStatus) (int, error)

	// CitiesWithApproved — города с количеством одобренных объявлений.
	CitiesWithApproved(ctx context.Context) ([]domain.CityCount, error)
}

// PlateAdStoragePort — контракт адаптера хранения номер-объявлений.
type PlateAdStoragePort interface {
	FindApproved(ctx context.Context, f domain.PlateAdFilter) (*domain.PaginatedPlateAds, error)
	GetApprovedByID(ctx context.Context, adID int64) (*domain.PlateAd, error)
	GetByID(ctx context.Context, adID int64) (*domain.PlateAd, error)
	Insert(ctx context.Context, ad *domain.PlateAd) (int64, error)
	Update(ctx context.Context, ad *domain.PlateAd) error
	SetStatus(ctx context.Context, adID int64, status domain.AdStatus, reason string) error
	FindByUser(ctx context.Context, userID int64) ([]domain.PlateAd, error)
	FindPending(ctx context.Context) ([]domain.PlateAd, error)

	// FindRecentSimilar ищет неотклонённое объявление с тем же номером
	// от того же пользователя, поданное после since.
	FindRecentSimilar(ctx context.Context, userID int64, plateNumber string, since time.Time) (*domain.PlateAd, error)

	CountByUserAndStatus(ctx context.Context, userID int64, status domain.AdStatus) (int, error)
	CountByStatus(ctx context.Context, status domain.AdStatus) (int, error)
	CitiesWithApproved(ctx context.Context) ([]domain.CityCount, error)
}
