package usecase

import (
	"context"
	"strings"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type EditCarAdUseCase struct {
	carAds port.CarAdStoragePort
	users  port.UserStoragePort
}

func NewEditCarAdUseCase(carAds port.CarAdStoragePort, users port.UserStoragePort) *EditCarAdUseCase {
	return &EditCarAdUseCase{carAds: carAds, users: users}
}

// Execute частично обновляет авто-объявление. В patch — только
// присланные клиентом поля, остальные не трогаем.
//
// Владельческий режим: редактировать можно pending и approved;
// одобренное после правки возвращается на модерацию (pending).
// Админский режим (asAdmin): любой статус, владелец не проверяется,
// статус не меняется.
func (uc *EditCarAdUseCase) Execute(ctx context.Context, adID, telegramID int64, patch map[string]interface{}, asAdmin bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "EditCarAd",
		"ad_id":    adID,
		"as_admin": asAdmin,
	})

	ad, err := uc.carAds.GetByID(ctx, adID)
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

	applyCarPatch(ad, patch)

	// Валидируем итоговое состояние, а не отдельные поля: правка
	// не должна оставить объявление в невалидном виде.
	merged := domain.CarAdInput{
		Brand:           ad.Brand,
		Model:           ad.Model,
		Year:            ad.Year,
		Mileage:         ad.Mileage,
		EngineVolume:    ad.EngineVolume,
		FuelType:        string(ad.FuelType),
		Transmission:    string(ad.Transmission),
		Color:           ad.Color,
		Price:           ad.Price,
		Description:     ad.Description,
		HasGBO:          ad.HasGBO,
		Region:          ad.Region,
		City:            ad.City,
		ContactPhone:    ad.ContactPhone,
		ContactTelegram: ad.ContactTelegram,
	}
	if msgs := domain.ValidateCarAd(merged); len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}

	if !asAdmin && len(patch) > 0 && ad.Status == domain.StatusApproved {
		ad.Status = domain.StatusPending
	}

	if err := uc.carAds.Update(ctx, ad); err != nil {
		ucLogger.Error("Failed to update car ad", err, nil)
		return err
	}

	ucLogger.Info("Car ad updated", port.Fields{"fields": len(patch), "status": ad.Status})
	return nil
}

// applyCarPatch переносит разрешенные поля из patch в объявление.
// Неизвестные ключи и значения неподходящего типа игнорируются.
func applyCarPatch(ad *domain.CarAd, patch map[string]interface{}) {
	for field, value := range patch {
		switch field {
		case "brand":
			patchString(&ad.Brand, value)
		case "model":
			patchString(&ad.Model, value)
		case "year":
			patchInt(&ad.Year, value)
		case "mileage":
			patchInt(&ad.Mileage, value)
		case "engine_volume":
			patchFloat(&ad.EngineVolume, value)
		case "fuel_type":
			if s, ok := value.(string); ok {
				if ft, ok := domain.ValidFuelTypes[s]; ok {
					ad.FuelType = ft
				}
			}
		case "transmission":
			if s, ok := value.(string); ok {
				if tr, ok := domain.ValidTransmissions[s]; ok {
					ad.Transmission = tr
				}
			}
		case "color":
			patchString(&ad.Color, value)
		case "price":
			patchInt(&ad.Price, value)
		case "description":
			patchString(&ad.Description, value)
		case "has_gbo":
			if b, ok := value.(bool); ok {
				ad.HasGBO = b
			}
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

func patchString(dst *string, value interface{}) {
	if s, ok := value.(string); ok {
		*dst = strings.TrimSpace(s)
	}
}

// JSON-числа декодируются в float64 — приводим к int через него.
func patchInt(dst *int, value interface{}) {
	switch v := value.(type) {
	case float64:
		*dst = int(v)
	case int:
		*dst = v
	}
}

func patchFloat(dst *float64, value interface{}) {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	}
}

// checkOwner сверяет telegram_id запроса с владельцем объявления.
func checkOwner(ctx context.Context, users port.UserStoragePort, ownerID, telegramID int64) error {
	owner, err := users.GetByID(ctx, ownerID)
	if err != nil {
		return domain.ErrForbidden
	}
	if owner.TelegramID != telegramID {
		return domain.ErrForbidden
	}
	return nil
}
