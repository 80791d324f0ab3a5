package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type ListCarAdsUseCasePort interface {
	Execute(ctx context.Context, f domain.CarAdFilter) (*domain.PaginatedCarAds, error)
}

type ListPlateAdsUseCasePort interface {
	Execute(ctx context.Context, f domain.PlateAdFilter) (*domain.PaginatedPlateAds, error)
}

// viewerID == 0 означает анонимный просмотр: счетчик не трогаем.
type GetCarAdUseCasePort interface {
	Execute(ctx context.Context, adID, viewerID int64) (*domain.CarAdDetails, error)
}

type GetPlateAdUseCasePort interface {
	Execute(ctx context.Context, adID, viewerID int64) (*domain.PlateAdDetails, error)
}

type GetCitiesUseCasePort interface {
	Execute(ctx context.Context) ([]domain.CityCount, error)
}
