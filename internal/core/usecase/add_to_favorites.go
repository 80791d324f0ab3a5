package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type AddToFavoritesUseCase struct {
	favorites port.FavoriteStoragePort
	users     port.UserStoragePort
}

func NewAddToFavoritesUseCase(favorites port.FavoriteStoragePort, users port.UserStoragePort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{favorites: favorites, users: users}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, telegramID int64, adType domain.AdType, adID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddToFavorites",
		"telegram_id": telegramID,
		"ad_type":     adType,
		"ad_id":       adID,
	})

	user, err := uc.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}

	if err := uc.favorites.Add(ctx, user.ID, adType, adID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Added to favorites", nil)
	return nil
}
