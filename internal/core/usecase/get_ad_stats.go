package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetAdStatsUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
}

func NewGetAdStatsUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort) *GetAdStatsUseCase {
	return &GetAdStatsUseCase{carAds: carAds, plateAds: plateAds}
}

func (uc *GetAdStatsUseCase) Execute(ctx context.Context) (*domain.ModerationStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAdStats"})

	stats := &domain.ModerationStats{}
	for _, s := range []struct {
		status domain.AdStatus
		dst    *int
	}{
		{domain.StatusPending, &stats.Pending},
		{domain.StatusApproved, &stats.Approved},
		{domain.StatusRejected, &stats.Rejected},
	} {
		carCount, err := uc.carAds.CountByStatus(ctx, s.status)
		if err != nil {
			ucLogger.Error("Failed to count car ads", err, nil)
			return nil, err
		}
		plateCount, err := uc.plateAds.CountByStatus(ctx, s.status)
		if err != nil {
			ucLogger.Error("Failed to count plate ads", err, nil)
			return nil, err
		}
		*s.dst = carCount + plateCount
	}

	return stats, nil
}
