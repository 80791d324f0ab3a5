package usecase

import (
	"context"
	"fmt"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetPendingAdsUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
	photos   port.PhotoStoragePort
}

func NewGetPendingAdsUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort, photos port.PhotoStoragePort) *GetPendingAdsUseCase {
	return &GetPendingAdsUseCase{carAds: carAds, plateAds: plateAds, photos: photos}
}

// Execute возвращает очередь модерации: сначала авто, затем номера,
// внутри типа — старые первыми (FIFO для модератора).
func (uc *GetPendingAdsUseCase) Execute(ctx context.Context) ([]domain.PendingAdCard, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPendingAds"})

	cars, err := uc.carAds.FindPending(ctx)
	if err != nil {
		ucLogger.Error("Failed to load pending car ads", err, nil)
		return nil, err
	}
	plates, err := uc.plateAds.FindPending(ctx)
	if err != nil {
		ucLogger.Error("Failed to load pending plate ads", err, nil)
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

	cards := make([]domain.PendingAdCard, 0, len(cars)+len(plates))
	for _, ad := range cars {
		cards = append(cards, domain.PendingAdCard{
			AdType:          domain.AdTypeCar,
			ID:              ad.ID,
			Title:           fmt.Sprintf("%s %s (%d)", ad.Brand, ad.Model, ad.Year),
			Brand:           ad.Brand,
			Model:           ad.Model,
			Year:            ad.Year,
			Price:           ad.Price,
			City:            ad.City,
			Mileage:         ad.Mileage,
			EngineVolume:    ad.EngineVolume,
			FuelType:        string(ad.FuelType),
			Transmission:    string(ad.Transmission),
			Color:           ad.Color,
			Description:     ad.Description,
			ContactPhone:    ad.ContactPhone,
			ContactTelegram: ad.ContactTelegram,
			Photo:           carCovers[ad.ID],
			CreatedAt:       formatCreatedAt(ad.CreatedAt),
		})
	}
	for _, ad := range plates {
		cards = append(cards, domain.PendingAdCard{
			AdType:          domain.AdTypePlate,
			ID:              ad.ID,
			Title:           ad.PlateNumber,
			PlateNumber:     ad.PlateNumber,
			Price:           ad.Price,
			City:            ad.City,
			Description:     ad.Description,
			ContactPhone:    ad.ContactPhone,
			ContactTelegram: ad.ContactTelegram,
			Photo:           plateCovers[ad.ID],
			CreatedAt:       formatCreatedAt(ad.CreatedAt),
		})
	}

	ucLogger.Debug("Use case finished", port.Fields{"pending": len(cards)})
	return cards, nil
}
