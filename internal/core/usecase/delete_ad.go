package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type DeleteAdUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	users    port.UserStoragePort
}

func NewDeleteAdUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort, users port.UserStoragePort) *DeleteAdUseCase {
	return &DeleteAdUseCase{carAds: carAds, plateAds: plateAds, users: users}
}

// Execute мягко удаляет объявление владельца: статус → rejected
// с причиной «Удалено владельцем». Запись остается для истории.
func (uc *DeleteAdUseCase) Execute(ctx context.Context, adType domain.AdType, adID, telegramID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "DeleteAd",
		"ad_type":  adType,
		"ad_id":    adID,
	})

	var ownerID int64
	switch adType {
	case domain.AdTypeCar:
		ad, err := uc.carAds.GetByID(ctx, adID)
		if err != nil {
			return err
		}
		ownerID = ad.UserID
	case domain.AdTypePlate:
		ad, err := uc.plateAds.GetByID(ctx, adID)
		if err != nil {
			return err
		}
		ownerID = ad.UserID
	default:
		return domain.ErrNotFound
	}

	if err := checkOwner(ctx, uc.users, ownerID, telegramID); err != nil {
		return err
	}

	var err error
	if adType == domain.AdTypeCar {
		err = uc.carAds.SetStatus(ctx, adID, domain.StatusRejected, constants.DeletedByOwnerReason)
	} else {
		err = uc.plateAds.SetStatus(ctx, adID, domain.StatusRejected, constants.DeletedByOwnerReason)
	}
	if err != nil {
		ucLogger.Error("Failed to soft-delete ad", err, nil)
		return err
	}

	ucLogger.Info("Ad soft-deleted by owner", nil)
	return nil
}
