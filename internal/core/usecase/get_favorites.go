package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

type GetFavoritesUseCase struct {
	favorites port.FavoriteStoragePort
	users     port.UserStoragePort
	carAds    port.CarAdStoragePort
	plateAds  port.PlateAdStoragePort
	photos    port.PhotoStoragePort
}

func NewGetFavoritesUseCase(
	favorites port.FavoriteStoragePort,
	users port.UserStoragePort,
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	photos port.PhotoStoragePort,
) *GetFavoritesUseCase {
	return &GetFavoritesUseCase{
		favorites: favorites,
		users:     users,
		carAds:    carAds,
		plateAds:  plateAds,
		photos:    photos,
	}
}

// Execute возвращает избранное пользователя. Объявления, которые уже
// не одобрены (проданы, отклонены, сняты), из выдачи выпадают молча —
// запись в favorites при этом не трогаем.
func (uc *GetFavoritesUseCase) Execute(ctx context.Context, telegramID int64) ([]usecases_port.FavoriteItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFavorites", "telegram_id": telegramID})

	user, err := uc.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []usecases_port.FavoriteItem{}, nil
		}
		return nil, err
	}

	favs, err := uc.favorites.FindByUser(ctx, user.ID)
	if err != nil {
		ucLogger.Error("Failed to load favorites", err, nil)
		return nil, err
	}

	items := make([]usecases_port.FavoriteItem, 0, len(favs))
	for _, fav := range favs {
		switch fav.AdType {
		case domain.AdTypeCar:
			ad, err := uc.carAds.GetApprovedByID(ctx, fav.AdID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			photo, err := uc.firstPhoto(ctx, domain.AdTypeCar, ad.ID)
			if err != nil {
				return nil, err
			}
			items = append(items, usecases_port.FavoriteItem{
				AdType:    domain.AdTypeCar,
				ID:        ad.ID,
				Title:     fmt.Sprintf("%s %s (%d)", ad.Brand, ad.Model, ad.Year),
				Price:     ad.Price,
				City:      ad.City,
				Photo:     photo,
				ViewCount: ad.ViewCount,
			})
		case domain.AdTypePlate:
			ad, err := uc.plateAds.GetApprovedByID(ctx, fav.AdID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return nil, err
			}
			photo, err := uc.firstPhoto(ctx, domain.AdTypePlate, ad.ID)
			if err != nil {
				return nil, err
			}
			items = append(items, usecases_port.FavoriteItem{
				AdType:    domain.AdTypePlate,
				ID:        ad.ID,
				Title:     ad.PlateNumber,
				Price:     ad.Price,
				City:      ad.City,
				Photo:     photo,
				ViewCount: ad.ViewCount,
			})
		}
	}

	ucLogger.Debug("Use case finished", port.Fields{"items": len(items)})
	return items, nil
}

func (uc *GetFavoritesUseCase) firstPhoto(ctx context.Context, adType domain.AdType, adID int64) (string, error) {
	covers, err := uc.photos.FirstPhotos(ctx, adType, []int64{adID})
	if err != nil {
		return "", err
	}
	return covers[adID], nil
}
