package usecase

import (
	"context"
	"errors"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetPlateAdUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	photos   port.PhotoStoragePort
	users    port.UserStoragePort
	views    port.ViewStoragePort
}

func NewGetPlateAdUseCase(
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	photos port.PhotoStoragePort,
	users port.UserStoragePort,
	views port.ViewStoragePort,
) *GetPlateAdUseCase {
	return &GetPlateAdUseCase{carAds: carAds, plateAds: plateAds, photos: photos, users: users, views: views}
}

func (uc *GetPlateAdUseCase) Execute(ctx context.Context, adID, viewerID int64) (*domain.PlateAdDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPlateAd", "ad_id": adID})

	ad, err := uc.plateAds.GetApprovedByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		first, err := uc.views.RecordUnique(ctx, viewerID, domain.AdTypePlate, adID)
		if err != nil {
			ucLogger.Warn("Failed to record view", port.Fields{"error": err.Error()})
		} else if first {
			ad.ViewCount++
			if err := uc.plateAds.Update(ctx, ad); err != nil {
				ucLogger.Warn("Failed to bump view count", port.Fields{"error": err.Error()})
			}
		}
	}

	photos, err := uc.photos.FindByAd(ctx, domain.AdTypePlate, adID)
	if err != nil {
		ucLogger.Error("Failed to load photos", err, nil)
		return nil, err
	}

	author, err := adAuthor(ctx, uc.users, uc.carAds, uc.plateAds, ad.UserID)
	if err != nil {
		ucLogger.Error("Failed to load author", err, nil)
		return nil, err
	}

	return &domain.PlateAdDetails{Ad: *ad, Photos: photos, Author: author}, nil
}

// adAuthor собирает сведения об авторе для детальной карточки.
// Отсутствие пользователя не ошибка: вернется пустая структура.
func adAuthor(
	ctx context.Context,
	users port.UserStoragePort,
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	userID int64,
) (domain.AuthorInfo, error) {
	author, err := users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.AuthorInfo{}, nil
		}
		return domain.AuthorInfo{}, err
	}

	carCount, err := carAds.CountByUserAndStatus(ctx, author.ID, domain.StatusApproved)
	if err != nil {
		return domain.AuthorInfo{}, err
	}
	plateCount, err := plateAds.CountByUserAndStatus(ctx, author.ID, domain.StatusApproved)
	if err != nil {
		return domain.AuthorInfo{}, err
	}

	info := domain.AuthorInfo{
		Username: author.Username,
		Name:     author.FullName,
		AdsCount: carCount + plateCount,
	}
	if !author.CreatedAt.IsZero() {
		info.Since = author.CreatedAt.Format("02.01.2006")
	}
	return info, nil
}
