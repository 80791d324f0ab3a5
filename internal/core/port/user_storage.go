package port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// UserStoragePort — контракт адаптера таблицы users.
type UserStoragePort interface {
	// GetByTelegramID возвращает пользователя или domain.ErrNotFound.
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)

	// GetByID возвращает пользователя по внутреннему id или domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetOrCreate находит пользователя по telegram_id либо создает его.
	// Непустые username и fullName обновляют существующую запись.
	GetOrCreate(ctx context.Context, telegramID int64, username, fullName string) (*domain.User, error)

	// UpdateName меняет отображаемое имя.
	UpdateName(ctx context.Context, telegramID int64, name string) error

	// SetBanned выставляет или снимает бан.
	SetBanned(ctx context.Context, telegramID int64, banned bool) error
}

// FavoriteStoragePort — контракт адаптера таблицы favorites.
type FavoriteStoragePort interface {
	// Add добавляет в избранное. Повторное добавление не ошибка.
	Add(ctx context.Context, userID int64, adType domain.AdType, adID int64) error

	// Remove убирает из избранного. Отсутствие записи не ошибка.
	Remove(ctx context.Context, userID int64, adType domain.AdType, adID int64) error

	// FindByUser возвращает избранное пользователя, новые первыми.
	FindByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
}

// ViewStoragePort — контракт адаптера таблицы ad_views (уникальные просмотры).
type ViewStoragePort interface {
	// RecordUnique фиксирует просмотр и возвращает true, если этот
	// пользователь видит объявление впервые (счетчик нужно увеличить).
	RecordUnique(ctx context.Context, viewerID int64, adType domain.AdType, adID int64) (bool, error)
}
