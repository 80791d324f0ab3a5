package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type UpdateProfileUseCase struct {
	users port.UserStoragePort
}

func NewUpdateProfileUseCase(users port.UserStoragePort) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{users: users}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, telegramID int64, name string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "UpdateProfile", "telegram_id": telegramID})

	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
		return &domain.ValidationError{Messages: []string{"Имя должно быть от 1 до 100 символов"}}
	}

	if _, err := uc.users.GetByTelegramID(ctx, telegramID); err != nil {
		return err
	}

	if err := uc.users.UpdateName(ctx, telegramID, name); err != nil {
		ucLogger.Error("Failed to update name", err, nil)
		return err
	}

	ucLogger.Info("Profile name updated", nil)
	return nil
}
