package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type ListPlateAdsUseCase struct {
	plateAds port.PlateAdStoragePort
}

func NewListPlateAdsUseCase(plateAds port.PlateAdStoragePort) *ListPlateAdsUseCase {
	return &ListPlateAdsUseCase{plateAds: plateAds}
}

func (uc *ListPlateAdsUseCase) Execute(ctx context.Context, f domain.PlateAdFilter) (*domain.PaginatedPlateAds, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListPlateAds",
		"offset":   f.Offset,
		"limit":    f.Limit,
	})

	if f.Limit <= 0 {
		f.Limit = constants.DefaultPageSize
	}
	if f.Limit > constants.MaxPageSize {
		f.Limit = constants.MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	// mileage_asc не применим к номерам — откатываемся на дефолт.
	if f.Sort == domain.SortMileageAsc {
		f.Sort = domain.SortDateNew
	}

	ucLogger.Debug("Use case started", nil)

	page, err := uc.plateAds.FindApproved(ctx, f)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Use case finished", port.Fields{"items": len(page.Items), "total": page.Total})
	return page, nil
}
