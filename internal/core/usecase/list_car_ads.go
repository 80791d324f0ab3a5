package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type ListCarAdsUseCase struct {
	carAds port.CarAdStoragePort
}

func NewListCarAdsUseCase(carAds port.CarAdStoragePort) *ListCarAdsUseCase {
	return &ListCarAdsUseCase{carAds: carAds}
}

func (uc *ListCarAdsUseCase) Execute(ctx context.Context, f domain.CarAdFilter) (*domain.PaginatedCarAds, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListCarAds",
		"offset":   f.Offset,
		"limit":    f.Limit,
	})

	// Нормализация пагинации: дефолт 20, потолок 50, отрицательные — в ноль.
	if f.Limit <= 0 {
		f.Limit = constants.DefaultPageSize
	}
	if f.Limit > constants.MaxPageSize {
		f.Limit = constants.MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	ucLogger.Debug("Use case started", nil)

	page, err := uc.carAds.FindApproved(ctx, f)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished", port.Fields{"items": len(page.Items), "total": page.Total})
	return page, nil
}
