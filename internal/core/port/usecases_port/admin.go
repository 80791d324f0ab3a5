package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type GetPendingAdsUseCasePort interface {
	Execute(ctx context.Context) ([]domain.PendingAdCard, error)
}

type GetAdStatsUseCasePort interface {
	Execute(ctx context.Context) (*domain.ModerationStats, error)
}

type ApproveAdUseCasePort interface {
	Execute(ctx context.Context, adType domain.AdType, adID int64) error
}

type RejectAdUseCasePort interface {
	// Пустая reason заменяется стандартной формулировкой.
	Execute(ctx context.Context, adType domain.AdType, adID int64, reason string) error
}

type BanUserUseCasePort interface {
	Execute(ctx context.Context, telegramID int64, banned bool) error
}
