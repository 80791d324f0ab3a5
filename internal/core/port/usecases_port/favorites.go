package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type AddToFavoritesUseCasePort interface {
	Execute(ctx context.Context, telegramID int64, adType domain.AdType, adID int64) error
}

type RemoveFromFavoritesUseCasePort interface {
	Execute(ctx context.Context, telegramID int64, adType domain.AdType, adID int64) error
}

// FavoriteItem — карточка избранного: живые объявления обоих типов.
type FavoriteItem struct {
	AdType    domain.AdType
	ID        int64
	Title     string
	Price     int
	City      string
	Photo     string
	ViewCount int
}

type GetFavoritesUseCasePort interface {
	Execute(ctx context.Context, telegramID int64) ([]FavoriteItem, error)
}
