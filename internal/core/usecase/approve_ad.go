package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type ApproveAdUseCase struct {
	carAds    port.CarAdStoragePort
	plateAds  port.PlateAdStoragePort
	users     port.UserStoragePort
	publisher port.EventPublisherPort
}

func NewApproveAdUseCase(
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	users port.UserStoragePort,
	publisher port.EventPublisherPort,
) *ApproveAdUseCase {
	return &ApproveAdUseCase{carAds: carAds, plateAds: plateAds, users: users, publisher: publisher}
}

// Execute одобряет объявление и публикует событие для бот-процесса
// (уведомление владельцу, пост в канал). Статус фиксируется до
// публикации события: сбой брокера не откатывает одобрение.
func (uc *ApproveAdUseCase) Execute(ctx context.Context, adType domain.AdType, adID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ApproveAd",
		"ad_type":  adType,
		"ad_id":    adID,
	})

	event := port.AdApprovedEvent{
		AdType:     adType,
		AdID:       adID,
		ApprovedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var ownerID int64
	switch adType {
	case domain.AdTypeCar:
		ad, err := uc.carAds.GetByID(ctx, adID)
		if err != nil {
			return err
		}
		if err := uc.carAds.SetStatus(ctx, adID, domain.StatusApproved, ""); err != nil {
			ucLogger.Error("Failed to approve car ad", err, nil)
			return err
		}
		ownerID = ad.UserID
		event.Title = fmt.Sprintf("%s %s (%d)", ad.Brand, ad.Model, ad.Year)
		event.Price, event.City = ad.Price, ad.City
	case domain.AdTypePlate:
		ad, err := uc.plateAds.GetByID(ctx, adID)
		if err != nil {
			return err
		}
		if err := uc.plateAds.SetStatus(ctx, adID, domain.StatusApproved, ""); err != nil {
			ucLogger.Error("Failed to approve plate ad", err, nil)
			return err
		}
		ownerID = ad.UserID
		event.Title = ad.PlateNumber
		event.Price, event.City = ad.Price, ad.City
	default:
		return domain.ErrNotFound
	}

	if owner, err := uc.users.GetByID(ctx, ownerID); err == nil {
		event.TelegramID = owner.TelegramID
	}

	if err := uc.publisher.PublishAdApproved(ctx, event); err != nil {
		ucLogger.Error("Failed to publish ad-approved event", err, nil)
	}

	ucLogger.Info("Ad approved", nil)
	return nil
}
