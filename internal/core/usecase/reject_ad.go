package usecase

import (
	"context"
	"strings"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type RejectAdUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
}

func NewRejectAdUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort) *RejectAdUseCase {
	return &RejectAdUseCase{carAds: carAds, plateAds: plateAds}
}

func (uc *RejectAdUseCase) Execute(ctx context.Context, adType domain.AdType, adID int64, reason string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "RejectAd",
		"ad_type":  adType,
		"ad_id":    adID,
	})

	if strings.TrimSpace(reason) == "" {
		reason = constants.DefaultRejectedReason
	}

	var err error
	switch adType {
	case domain.AdTypeCar:
		if _, err = uc.carAds.GetByID(ctx, adID); err == nil {
			err = uc.carAds.SetStatus(ctx, adID, domain.StatusRejected, reason)
		}
	case domain.AdTypePlate:
		if _, err = uc.plateAds.GetByID(ctx, adID); err == nil {
			err = uc.plateAds.SetStatus(ctx, adID, domain.StatusRejected, reason)
		}
	default:
		return domain.ErrNotFound
	}
	if err != nil {
		ucLogger.Error("Failed to reject ad", err, nil)
		return err
	}

	ucLogger.Info("Ad rejected", port.Fields{"reason": reason})
	return nil
}
