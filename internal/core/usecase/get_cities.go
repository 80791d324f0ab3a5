package usecase

import (
	"context"
	"sort"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type GetCitiesUseCase struct {
	carAds   port.CarAdStoragePort
	plateAds port.PlateAdStoragePort
}

func NewGetCitiesUseCase(carAds port.CarAdStoragePort, plateAds port.PlateAdStoragePort) *GetCitiesUseCase {
	return &GetCitiesUseCase{carAds: carAds, plateAds: plateAds}
}

// Execute возвращает города с активными объявлениями: счетчики обоих
// каталогов складываются, список отсортирован по имени города.
func (uc *GetCitiesUseCase) Execute(ctx context.Context) ([]domain.CityCount, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetCities"})

	carCities, err := uc.carAds.CitiesWithApproved(ctx)
	if err != nil {
		ucLogger.Error("Failed to load car cities", err, nil)
		return nil, err
	}
	plateCities, err := uc.plateAds.CitiesWithApproved(ctx)
	if err != nil {
		ucLogger.Error("Failed to load plate cities", err, nil)
		return nil, err
	}

	counts := make(map[string]int)
	for _, c := range carCities {
		counts[c.City] += c.Count
	}
	for _, c := range plateCities {
		counts[c.City] += c.Count
	}

	cities := make([]domain.CityCount, 0, len(counts))
	for city, count := range counts {
		cities = append(cities, domain.CityCount{City: city, Count: count})
	}
	sort.Slice(cities, func(i, j int) bool { return cities[i].City < cities[j].City })

	return cities, nil
}
