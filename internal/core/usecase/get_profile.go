package usecase

import (
	"context"
	"errors"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetProfileUseCase struct {
	users    port.UserStoragePort
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
}

func NewGetProfileUseCase(users port.UserStoragePort, carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort) *GetProfileUseCase {
	return &GetProfileUseCase{users: users, carAds: carAds, plateAds: plateAds}
}

// Execute собирает профиль со статистикой объявлений по статусам.
// Незнакомый telegram_id не ошибка: возвращается пустой профиль,
// Mini App показывает его до первой подачи объявления.
func (uc *GetProfileUseCase) Execute(ctx context.Context, telegramID int64) (*domain.Profile, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetProfile", "telegram_id": telegramID})

	user, err := uc.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Profile{Name: "Пользователь"}, nil
		}
		ucLogger.Error("Failed to load user", err, nil)
		return nil, err
	}

	cars, err := uc.statusCounts(ctx, uc.carAds.CountByUserAndStatus, user.ID)
	if err != nil {
		ucLogger.Error("Failed to count car ads", err, nil)
		return nil, err
	}
	plates, err := uc.statusCounts(ctx, uc.plateAds.CountByUserAndStatus, user.ID)
	if err != nil {
		ucLogger.Error("Failed to count plate ads", err, nil)
		return nil, err
	}

	profile := &domain.Profile{
		Name:     user.FullName,
		Username: user.Username,
		Cars:     cars,
		Plates:   plates,
	}
	if !user.CreatedAt.IsZero() {
		since := user.CreatedAt
		profile.MemberSince = &since
	}
	return profile, nil
}

func (uc *GetProfileUseCase) statusCounts(
	ctx context.Context,
	count func(context.Context, int64, domain.AdStatus) (int, error),
	userID int64,
) (domain.AdStatusCounts, error) {
	var c domain.AdStatusCounts
	var err error
	if c.Active, err = count(ctx, userID, domain.StatusApproved); err != nil {
		return c, err
	}
	if c.Pending, err = count(ctx, userID, domain.StatusPending); err != nil {
		return c, err
	}
	if c.Rejected, err = count(ctx, userID, domain.StatusRejected); err != nil {
		return c, err
	}
	return c, nil
}
