package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type SubmitAdUseCase struct {
	carAds    port.CarAdStoragePort
	plateAds  port.PlateAdStoragePort
	photos    port.PhotoStoragePort
	files     port.PhotoFileStoragePort
	users     port.UserStoragePort
	limiter   port.RateLimiterPort
	publisher port.EventPublisherPort
}

func NewSubmitAdUseCase(
	carAds port.CarAdStoragePort,
	plateAds port.PlateAdStoragePort,
	photos port.PhotoStoragePort,
	files port.PhotoFileStoragePort,
	users port.UserStoragePort,
	limiter port.RateLimiterPort,
	publisher port.EventPublisherPort,
) *SubmitAdUseCase {
	return &SubmitAdUseCase{
		carAds:    carAds,
		plateAds:  plateAds,
		photos:    photos,
		files:     files,
		users:     users,
		limiter:   limiter,
		publisher: publisher,
	}
}

// Execute создает объявление из Mini App.
//
// Порядок проверок: rate limit → бан → валидация полей → дубликаты.
// Дубликат — неотклонённое объявление того же пользователя с теми же
// ключевыми полями за последние 7 дней; флаг Force его обходит.
// Если приложены валидные фото, объявление одобряется сразу и уходит
// событие для публикации в канал; иначе остается в pending.
func (uc *SubmitAdUseCase) Execute(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitAd",
		"ad_type":     req.Type,
		"telegram_id": req.TelegramID,
	})
	ucLogger.Info("Use case started", nil)

	if denied, reason := uc.limiter.Check(fmt.Sprintf("user:%d", req.TelegramID)); denied {
		ucLogger.Warn("Submit rate limited", port.Fields{"reason": reason})
		return nil, &RateLimitedError{Reason: reason}
	}

	existing, err := uc.users.GetByTelegramID(ctx, req.TelegramID)
	if err == nil && existing.IsBanned {
		ucLogger.Warn("Banned user tried to submit", nil)
		return nil, domain.ErrUserBanned
	}

	switch req.Type {
	case domain.AdTypeCar:
		if req.Car == nil {
			return nil, &domain.ValidationError{Messages: []string{"Нет данных объявления"}}
		}
		if msgs := domain.ValidateCarAd(*req.Car); len(msgs) > 0 {
			return nil, &domain.ValidationError{Messages: msgs}
		}
	case domain.AdTypePlate:
		if req.Plate == nil {
			return nil, &domain.ValidationError{Messages: []string{"Нет данных объявления"}}
		}
		if msgs := domain.ValidatePlateAd(*req.Plate); len(msgs) > 0 {
			return nil, &domain.ValidationError{Messages: msgs}
		}
	default:
		return nil, &domain.ValidationError{Messages: []string{"Неизвестный тип объявления"}}
	}

	user, err := uc.users.GetOrCreate(ctx, req.TelegramID, req.Username, req.FullName)
	if err != nil {
		ucLogger.Error("Failed to get or create user", err, nil)
		return nil, err
	}

	since := time.Now().UTC().Add(-constants.DuplicateWindow)
	if !req.Force {
		var dupe bool
		if req.Type == domain.AdTypeCar {
			d, err := uc.carAds.FindRecentSimilar(ctx, user.ID, strings.TrimSpace(req.Car.Brand), strings.TrimSpace(req.Car.Model), req.Car.Year, since)
			if err != nil {
				ucLogger.Error("Duplicate check failed", err, nil)
				return nil, err
			}
			dupe = d != nil
		} else {
			d, err := uc.plateAds.FindRecentSimilar(ctx, user.ID, strings.TrimSpace(req.Plate.PlateNumber), since)
			if err != nil {
				ucLogger.Error("Duplicate check failed", err, nil)
				return nil, err
			}
			dupe = d != nil
		}
		if dupe {
			ucLogger.Info("Duplicate ad rejected", nil)
			return nil, domain.ErrDuplicateAd
		}
	}

	// Фото, загруженные заранее: берем только существующие локальные,
	// не больше лимита. Наличие хотя бы одного включает авто-одобрение.
	var validPhotos []string
	for _, pid := range req.PhotoIDs {
		if len(validPhotos) == constants.MaxAdPhotos {
			break
		}
		if uc.files.IsLocal(pid) && uc.files.Exists(pid) {
			validPhotos = append(validPhotos, pid)
		}
	}

	expiresAt := time.Now().UTC().Add(constants.AdExpiry)
	status := domain.StatusPending
	if len(validPhotos) > 0 {
		status = domain.StatusApproved
	}

	var adID int64
	var title string
	var price int
	var city string

	if req.Type == domain.AdTypeCar {
		in := req.Car
		ad := &domain.CarAd{
			UserID:          user.ID,
			Brand:           strings.TrimSpace(in.Brand),
			Model:           strings.TrimSpace(in.Model),
			Year:            in.Year,
			Mileage:         in.Mileage,
			EngineVolume:    in.EngineVolume,
			FuelType:        fuelOrDefault(in.FuelType),
			Transmission:    transmissionOrDefault(in.Transmission),
			Color:           strings.TrimSpace(in.Color),
			Price:           in.Price,
			Description:     strings.TrimSpace(in.Description),
			HasGBO:          in.HasGBO,
			Region:          strings.TrimSpace(in.Region),
			City:            domain.NormalizeCity(in.City),
			ContactPhone:    strings.TrimSpace(in.ContactPhone),
			ContactTelegram: strings.TrimSpace(in.ContactTelegram),
			Status:          status,
			ExpiresAt:       &expiresAt,
		}
		adID, err = uc.carAds.Insert(ctx, ad)
		if err != nil {
			ucLogger.Error("Failed to insert car ad", err, nil)
			return nil, err
		}
		title = fmt.Sprintf("%s %s (%d)", ad.Brand, ad.Model, ad.Year)
		price, city = ad.Price, ad.City
	} else {
		in := req.Plate
		ad := &domain.PlateAd{
			UserID:          user.ID,
			PlateNumber:     strings.TrimSpace(in.PlateNumber),
			Price:           in.Price,
			Description:     strings.TrimSpace(in.Description),
			Region:          strings.TrimSpace(in.Region),
			City:            domain.NormalizeCity(in.City),
			ContactPhone:    strings.TrimSpace(in.ContactPhone),
			ContactTelegram: strings.TrimSpace(in.ContactTelegram),
			Status:          status,
			ExpiresAt:       &expiresAt,
		}
		adID, err = uc.plateAds.Insert(ctx, ad)
		if err != nil {
			ucLogger.Error("Failed to insert plate ad", err, nil)
			return nil, err
		}
		title = ad.PlateNumber
		price, city = ad.Price, ad.City
	}

	published := false
	if len(validPhotos) > 0 {
		if err := uc.photos.Attach(ctx, req.Type, adID, validPhotos); err != nil {
			ucLogger.Error("Failed to attach photos", err, nil)
			return nil, err
		}
		published = true

		// Объявление уже создано и одобрено: сбой публикации события
		// не откатывает подачу.
		event := port.AdApprovedEvent{
			AdType:     req.Type,
			AdID:       adID,
			TelegramID: req.TelegramID,
			Title:      title,
			Price:      price,
			City:       city,
			ApprovedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := uc.publisher.PublishAdApproved(ctx, event); err != nil {
			ucLogger.Error("Failed to publish ad-approved event", err, port.Fields{"ad_id": adID})
		}
	}

	ucLogger.Info("Use case finished", port.Fields{"ad_id": adID, "published": published})
	return &domain.SubmitResult{AdID: adID, Published: published}, nil
}

func fuelOrDefault(s string) domain.FuelType {
	if ft, ok := domain.ValidFuelTypes[s]; ok {
		return ft
	}
	return domain.FuelPetrol
}

func transmissionOrDefault(s string) domain.Transmission {
	if tr, ok := domain.ValidTransmissions[s]; ok {
		return tr
	}
	return domain.TransmissionManual
}

// RateLimitedError — отказ по частоте подачи. Reason показывается клиенту.
type RateLimitedError struct {
	Reason string
}

func (e *RateLimitedError) Error() string { return e.Reason }
