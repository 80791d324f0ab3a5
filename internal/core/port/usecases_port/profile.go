package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type GetProfileUseCasePort interface {
	Execute(ctx context.Context, telegramID int64) (*domain.Profile, error)
}

type UpdateProfileUseCasePort interface {
	Execute(ctx context.Context, telegramID int64, name string) error
}

// UserAds — все объявления пользователя для страницы «Мои объявления».
type UserAds struct {
	Cars   []domain.OwnedAdSummary
	Plates []domain.OwnedAdSummary
}

type GetUserAdsUseCasePort interface {
	Execute(ctx context.Context, telegramID int64) (*UserAds, error)
}
