package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetCarAdUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	photos   port.PhotoStoragePort
	users    port.UserStoragePort
	views    port.ViewStoragePort
}

func NewGetCarAdUseCase(
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	photos port.PhotoStoragePort,
	users port.UserStoragePort,
	views port.ViewStoragePort,
) *GetCarAdUseCase {
	return &GetCarAdUseCase{carAds: carAds, plateAds: plateAds, photos: photos, users: users, views: views}
}

// Execute возвращает детальную карточку одобренного объявления.
// Ненулевой viewerID учитывается как уникальный просмотр: счетчик
// растет один раз на пользователя.
func (uc *GetCarAdUseCase) Execute(ctx context.Context, adID, viewerID int64) (*domain.CarAdDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetCarAd", "ad_id": adID})

	ad, err := uc.carAds.GetApprovedByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		first, err := uc.views.RecordUnique(ctx, viewerID, domain.AdTypeCar, adID)
		if err != nil {
			// Просмотр не критичен для выдачи карточки — логируем и едем дальше.
			ucLogger.Warn("Failed to record view", port.Fields{"error": err.Error()})
		} else if first {
			ad.ViewCount++
			if err := uc.carAds.Update(ctx, ad); err != nil {
				ucLogger.Warn("Failed to bump view count", port.Fields{"error": err.Error()})
			}
		}
	}

	photos, err := uc.photos.FindByAd(ctx, domain.AdTypeCar, adID)
	if err != nil {
		ucLogger.Error("Failed to load photos", err, nil)
		return nil, err
	}

	author, err := adAuthor(ctx, uc.users, uc.carAds, uc.plateAds, ad.UserID)
	if err != nil {
		ucLogger.Error("Failed to load author", err, nil)
		return nil, err
	}

	return &domain.CarAdDetails{Ad: *ad, Photos: photos, Author: author}, nil
}
