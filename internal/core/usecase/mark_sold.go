package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type MarkSoldUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	users    port.UserStoragePort
}

func NewMarkSoldUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort, users port.UserStoragePort) *MarkSoldUseCase {
	return &MarkSoldUseCase{carAds: carAds, plateAds: plateAds, users: users}
}

// Execute помечает объявление проданным. Доступно только владельцу;
// из каталога объявление пропадает, но остается в «Моих объявлениях».
func (uc *MarkSoldUseCase) Execute(ctx context.Context, adType domain.AdType, adID, telegramID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MarkSold",
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
		err = uc.carAds.SetStatus(ctx, adID, domain.StatusSold, "")
	} else {
		err = uc.plateAds.SetStatus(ctx, adID, domain.StatusSold, "")
	}
	if err != nil {
		ucLogger.Error("Failed to mark ad as sold", err, nil)
		return err
	}

	ucLogger.Info("Ad marked as sold", nil)
	return nil
}
