package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

type GetUserAdsUseCase struct {
	users    port.UserStoragePort
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	photos   port.PhotoStoragePort
}

func NewGetUserAdsUseCase(
	users port.UserStoragePort,
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	photos port.PhotoStoragePort,
) *GetUserAdsUseCase {
	return &GetUserAdsUseCase{users: users, carAds: carAds, plateAds: plateAds, photos: photos}
}

// Execute возвращает все объявления пользователя для страницы
// «Мои объявления» — любые статусы, новые первыми.
func (uc *GetUserAdsUseCase) Execute(ctx context.Context, telegramID int64) (*usecases_port.UserAds, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetUserAds", "telegram_id": telegramID})

	user, err := uc.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &usecases_port.UserAds{
				Cars:   []domain.OwnedAdSummary{},
				Plates: []domain.OwnedAdSummary{},
			}, nil
		}
		return nil, err
	}

	cars, err := uc.carAds.FindByUser(ctx, user.ID)
	if err != nil {
		ucLogger.Error("Failed to load car ads", err, nil)
		return nil, err
	}
	plates, err := uc.plateAds.FindByUser(ctx, user.ID)
	if err != nil {
		ucLogger.Error("Failed to load plate ads", err, nil)
		return nil, err
	}

	carIDs := make([]int64, len(cars))
	for i, ad := range cars {
		carIDs[i] = ad.ID
	}
	plateIDs := make([]int64, len(plates))
	for i, ad := range plates {
		plateIDs[i] = ad.ID
	}

	carCovers, err := uc.photos.FirstPhotos(ctx, domain.AdTypeCar, carIDs)
	if err != nil {
		return nil, err
	}
	plateCovers, err := uc.photos.FirstPhotos(ctx, domain.AdTypePlate, plateIDs)
	if err != nil {
		return nil, err
	}

	result := &usecases_port.UserAds{
		Cars:   make([]domain.OwnedAdSummary, 0, len(cars)),
		Plates: make([]domain.OwnedAdSummary, 0, len(plates)),
	}
	for _, ad := range cars {
		result.Cars = append(result.Cars, domain.OwnedAdSummary{
			ID:        ad.ID,
			Title:     fmt.Sprintf("%s %s", ad.Brand, ad.Model),
			Status:    ad.Status,
			Price:     ad.Price,
			City:      ad.City,
			Photo:     carCovers[ad.ID],
			CreatedAt: formatCreatedAt(ad.CreatedAt),
		})
	}
	for _, ad := range plates {
		result.Plates = append(result.Plates, domain.OwnedAdSummary{
			ID:        ad.ID,
			Title:     ad.PlateNumber,
			Status:    ad.Status,
			Price:     ad.Price,
			City:      ad.City,
			Photo:     plateCovers[ad.ID],
			CreatedAt: formatCreatedAt(ad.CreatedAt),
		})
	}

	return result, nil
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
