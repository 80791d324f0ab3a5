package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type RemoveFromFavoritesUseCase struct {
	favorites port.FavoriteStoragePort
	users     port.UserStoragePort
}

func NewRemoveFromFavoritesUseCase(favorites port.FavoriteStoragePort, users port.UserStoragePort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{favorites: favorites, users: users}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, telegramID int64, adType domain.AdType, adID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromFavorites",
		"telegram_id": telegramID,
		"ad_type":     adType,
		"ad_id":       adID,
	})

	user, err := uc.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}

	if err := uc.favorites.Remove(ctx, user.ID, adType, adID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Removed from favorites", nil)
	return nil
}
