package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type stubListCars struct {
	gotFilter domain.CarAdFilter
	result    *domain.PaginatedCarAds
	err       error
}

func (s *stubListCars) Execute(_ context.Context, f domain.CarAdFilter) (*domain.PaginatedCarAds, error) {
	s.gotFilter = f
	return s.result, s.err
}

type stubGetCar struct {
	gotAdID     int64
	gotViewerID int64
	result      *domain.CarAdDetails
	err         error
}

func (s *stubGetCar) Execute(_ context.Context, adID, viewerID int64) (*domain.CarAdDetails, error) {
	s.gotAdID = adID
	s.gotViewerID = viewerID
	return s.result, s.err
}

func TestListCarAdsMapsQueryParamsToFilter(t *testing.T) {
	stub := &stubListCars{result: &domain.PaginatedCarAds{Items: []domain.CarAdPreview{}, Total: 0}}
	h := &CatalogHandler{listCarsUC: stub}

	req := httptest.NewRequest(http.MethodGet,
		"/api/cars?brand=BMW&model=X5&city=Минск&q=дизель&price_min=5000&price_max=30000&year_min=2015&year_max=2020&sort=price_asc&limit=10&offset=20",
		nil)
	rec := httptest.NewRecorder()

	h.ListCarAds(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CarAdFilter{
		Brand:    "BMW",
		Model:    "X5",
		City:     "Минск",
		Query:    "дизель",
		PriceMin: 5000,
		PriceMax: 30000,
		YearMin:  2015,
		YearMax:  2020,
		Sort:     domain.SortPriceAsc,
		Limit:    10,
		Offset:   20,
	}, stub.gotFilter)
}

func TestListCarAdsCapsLimit(t *testing.T) {
	stub := &stubListCars{result: &domain.PaginatedCarAds{Items: []domain.CarAdPreview{}, Total: 0}}
	h := &CatalogHandler{listCarsUC: stub}

	req := httptest.NewRequest(http.MethodGet, "/api/cars?limit=500", nil)
	h.ListCarAds(httptest.NewRecorder(), req)
	assert.Equal(t, 50, stub.gotFilter.Limit)

	req = httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	h.ListCarAds(httptest.NewRecorder(), req)
	assert.Equal(t, 20, stub.gotFilter.Limit)
}

func TestListCarAdsRendersCards(t *testing.T) {
	stub := &stubListCars{result: &domain.PaginatedCarAds{
		Items: []domain.CarAdPreview{{
			ID:           7,
			Brand:        "Audi",
			Model:        "A4",
			Year:         2017,
			Price:        14500,
			City:         "Гомель",
			Mileage:      98000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionManual,
			Photo:        "loc_aabb",
			ViewCount:    12,
		}},
		Total: 31,
	}}
	h := &CatalogHandler{listCarsUC: stub}

	rec := httptest.NewRecorder()
	h.ListCarAds(rec, httptest.NewRequest(http.MethodGet, "/api/cars", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PaginatedCarAdsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 31, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(7), resp.Items[0].ID)
	assert.Equal(t, "бензин", resp.Items[0].FuelType)
	assert.Equal(t, "loc_aabb", resp.Items[0].Photo)
}

func TestGetCarAdNotFound(t *testing.T) {
	stub := &stubGetCar{err: domain.ErrNotFound}
	h := &CatalogHandler{getCarUC: stub}

	r := chi.NewRouter()
	r.Get("/api/cars/{adID}", h.GetCarAd)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cars/99", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(99), stub.gotAdID)
}

func TestGetCarAdPassesViewerFromHeader(t *testing.T) {
	stub := &stubGetCar{result: &domain.CarAdDetails{
		Ad: domain.CarAd{ID: 5, CreatedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)},
	}}
	h := &CatalogHandler{getCarUC: stub}

	r := chi.NewRouter()
	r.Get("/api/cars/{adID}", h.GetCarAd)

	req := httptest.NewRequest(http.MethodGet, "/api/cars/5", nil)
	req.Header.Set("X-Telegram-User-Id", "123456789")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(123456789), stub.gotViewerID)

	var resp CarAdDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-05-01T10:00:00Z", resp.CreatedAt)
	// null в photos ломает клиент: всегда отдаём массив.
	assert.NotNil(t, resp.Photos)
}

func TestGetCarAdRejectsGarbageID(t *testing.T) {
	h := &CatalogHandler{getCarUC: &stubGetCar{}}

	r := chi.NewRouter()
	r.Get("/api/cars/{adID}", h.GetCarAd)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cars/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdTypeParam(t *testing.T) {
	for s, want := range map[string]domain.AdType{
		"car":    domain.AdTypeCar,
		"cars":   domain.AdTypeCar,
		"plate":  domain.AdTypePlate,
		"plates": domain.AdTypePlate,
	} {
		got, ok := adTypeParam(s)
		require.True(t, ok, "segment %q", s)
		assert.Equal(t, want, got)
	}

	_, ok := adTypeParam("boats")
	assert.False(t, ok)
}
