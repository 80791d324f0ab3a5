package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type EditPlateAdUseCase struct {
	plateAds port.PlateAdStoragePort
	users    port.UserStoragePort
}

func NewEditPlateAdUseCase(plateAds port.PlateAdStoragePort, users port.UserStoragePort) *EditPlateAdUseCase {
	return &EditPlateAdUseCase{plateAds: plateAds, users: users}
}

// Execute — то же, что EditCarAdUseCase.Execute, но для номеров.
func (uc *EditPlateAdUseCase) Execute(ctx context.Context, adID, telegramID int64, patch map[string]interface{}, asAdmin bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "EditPlateAd",
		"ad_id":    adID,
		"as_admin": asAdmin,
	})

	ad, err := uc.plateAds.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	if !asAdmin {
		if ad.Status != domain.StatusPending && ad.Status != domain.StatusApproved {
			return domain.ErrNotEditable
		}
		if err := checkOwner(ctx, uc.users, ad.UserID, telegramID); err != nil {
			return err
		}
	}

	applyPlatePatch(ad, patch)

	merged := domain.PlateAdInput{
		PlateNumber:     ad.PlateNumber,
		Price:           ad.Price,
		Description:     ad.Description,
		Region:          ad.Region,
		City:            ad.City,
		ContactPhone:    ad.ContactPhone,
		ContactTelegram: ad.ContactTelegram,
	}
	if msgs := domain.ValidatePlateAd(merged); len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}

	if !asAdmin && len(patch) > 0 && ad.Status == domain.StatusApproved {
		ad.Status = domain.StatusPending
	}

	if err := uc.plateAds.Update(ctx, ad); err != nil {
		ucLogger.Error("Failed to update plate ad", err, nil)
		return err
	}

	ucLogger.Info("Plate ad updated", port.Fields{"fields": len(patch), "status": ad.Status})
	return nil
}

func applyPlatePatch(ad *domain.PlateAd, patch map[string]interface{}) {
	for field, value := range patch {
		switch field {
		case "plate_number":
			patchString(&ad.PlateNumber, value)
		case "price":
			patchInt(&ad.Price, value)
		case "description":
			patchString(&ad.Description, value)
		case "region":
			patchString(&ad.Region, value)
		case "city":
			if s, ok := value.(string); ok {
				ad.City = domain.NormalizeCity(s)
			}
		case "contact_phone":
			patchString(&ad.ContactPhone, value)
		case "contact_telegram":
			patchString(&ad.ContactTelegram, value)
		}
	}
}
