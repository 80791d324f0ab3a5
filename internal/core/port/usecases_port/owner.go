package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// Patch-семантика: в картах только присланные клиентом поля.
// asAdmin обходит проверку владельца и не сбрасывает статус.
type EditCarAdUseCasePort interface {
	Execute(ctx context.Context, adID, telegramID int64, patch map[string]interface{}, asAdmin bool) error
}

type EditPlateAdUseCasePort interface {
	Execute(ctx context.Context, adID, telegramID int64, patch map[string]interface{}, asAdmin bool) error
}

type DeleteAdUseCasePort interface {
	Execute(ctx context.Context, adType domain.AdType, adID, telegramID int64) error
}

type MarkSoldUseCasePort interface {
	Execute(ctx context.Context, adType domain.AdType, adID, telegramID int64) error
}
