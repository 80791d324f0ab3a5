package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type BanUserUseCase struct {
	users port.UserStoragePort
}

func NewBanUserUseCase(users port.UserStoragePort) *BanUserUseCase {
	return &BanUserUseCase{users: users}
}

// Execute банит или разбанивает пользователя. Забаненный не может
// подавать объявления; уже поданные остаются как есть.
func (uc *BanUserUseCase) Execute(ctx context.Context, telegramID int64, banned bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "BanUser",
		"telegram_id": telegramID,
		"banned":      banned,
	})

	if _, err := uc.users.GetByTelegramID(ctx, telegramID); err != nil {
		return err
	}

	if err := uc.users.SetBanned(ctx, telegramID, banned); err != nil {
		ucLogger.Error("Failed to change ban state", err, nil)
		return err
	}

	ucLogger.Info("Ban state changed", nil)
	return nil
}
