package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

// CatalogHandler обслуживает публичный каталог: списки, карточки,
// города и справочник марок.
type CatalogHandler struct {
	listCarsUC   usecases_port.ListCarAdsUseCasePort
	listPlatesUC usecases_port.ListPlateAdsUseCasePort
	getCarUC     usecases_port.GetCarAdUseCasePort
	getPlateUC   usecases_port.GetPlateAdUseCasePort
	getCitiesUC  usecases_port.GetCitiesUseCasePort
}

func NewCatalogHandler(
	listCarsUC usecases_port.ListCarAdsUseCasePort,
	listPlatesUC usecases_port.ListPlateAdsUseCasePort,
	getCarUC usecases_port.GetCarAdUseCasePort,
	getPlateUC usecases_port.GetPlateAdUseCasePort,
	getCitiesUC usecases_port.GetCitiesUseCasePort,
) *CatalogHandler {
	return &CatalogHandler{
		listCarsUC:   listCarsUC,
		listPlatesUC: listPlatesUC,
		getCarUC:     getCarUC,
		getPlateUC:   getPlateUC,
		getCitiesUC:  getCitiesUC,
	}
}

// ListCarAds обрабатывает GET /api/cars
func (h *CatalogHandler) ListCarAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListCarAds"})

	limit, offset := pageParams(r)
	q := r.URL.Query()
	filter := domain.CarAdFilter{
		Brand:    q.Get("brand"),
		Model:    q.Get("model"),
		City:     q.Get("city"),
		Query:    q.Get("q"),
		PriceMin: queryInt(r, "price_min"),
		PriceMax: queryInt(r, "price_max"),
		YearMin:  queryInt(r, "year_min"),
		YearMax:  queryInt(r, "year_max"),
		Sort:     domain.SortOption(q.Get("sort")),
		Limit:    limit,
		Offset:   offset,
	}

	result, err := h.listCarsUC.Execute(r.Context(), filter)
	if err != nil {
		logger.Error("List car ads use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve ads")
		return
	}

	response := PaginatedCarAdsResponse{
		Items: make([]CarAdCardResponse, len(result.Items)),
		Total: result.Total,
	}
	for i, ad := range result.Items {
		response.Items[i] = CarAdCardResponse{
			ID:           ad.ID,
			Brand:        ad.Brand,
			Model:        ad.Model,
			Year:         ad.Year,
			Price:        ad.Price,
			City:         ad.City,
			Mileage:      ad.Mileage,
			FuelType:     string(ad.FuelType),
			Transmission: string(ad.Transmission),
			Photo:        ad.Photo,
			ViewCount:    ad.ViewCount,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// ListPlateAds обрабатывает GET /api/plates
func (h *CatalogHandler) ListPlateAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListPlateAds"})

	limit, offset := pageParams(r)
	q := r.URL.Query()
	filter := domain.PlateAdFilter{
		City:     q.Get("city"),
		Query:    q.Get("q"),
		PriceMin: queryInt(r, "price_min"),
		PriceMax: queryInt(r, "price_max"),
		Sort:     domain.SortOption(q.Get("sort")),
		Limit:    limit,
		Offset:   offset,
	}

	result, err := h.listPlatesUC.Execute(r.Context(), filter)
	if err != nil {
		logger.Error("List plate ads use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve ads")
		return
	}

	response := PaginatedPlateAdsResponse{
		Items: make([]PlateAdCardResponse, len(result.Items)),
		Total: result.Total,
	}
	for i, ad := range result.Items {
		response.Items[i] = PlateAdCardResponse{
			ID:          ad.ID,
			PlateNumber: ad.PlateNumber,
			Price:       ad.Price,
			City:        ad.City,
			Photo:       ad.Photo,
			ViewCount:   ad.ViewCount,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetCarAd обрабатывает GET /api/cars/{adID}
func (h *CatalogHandler) GetCarAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCarAd"})

	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	details, err := h.getCarUC.Execute(r.Context(), adID, viewerID(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Ad not found")
			return
		}
		logger.Error("Get car ad use case failed", err, port.Fields{"ad_id": adID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve ad")
		return
	}

	ad := details.Ad
	response := CarAdDetailResponse{
		ID:              ad.ID,
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
		ViewCount:       ad.ViewCount,
		CreatedAt:       ad.CreatedAt.Format(time.RFC3339),
		Photos:          photosOrEmpty(details.Photos),
		Author:          toAuthorResponse(details.Author),
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetPlateAd обрабатывает GET /api/plates/{adID}
func (h *CatalogHandler) GetPlateAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPlateAd"})

	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	details, err := h.getPlateUC.Execute(r.Context(), adID, viewerID(r))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Ad not found")
			return
		}
		logger.Error("Get plate ad use case failed", err, port.Fields{"ad_id": adID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve ad")
		return
	}

	ad := details.Ad
	response := PlateAdDetailResponse{
		ID:              ad.ID,
		PlateNumber:     ad.PlateNumber,
		Price:           ad.Price,
		Description:     ad.Description,
		Region:          ad.Region,
		City:            ad.City,
		ContactPhone:    ad.ContactPhone,
		ContactTelegram: ad.ContactTelegram,
		ViewCount:       ad.ViewCount,
		CreatedAt:       ad.CreatedAt.Format(time.RFC3339),
		Photos:          photosOrEmpty(details.Photos),
		Author:          toAuthorResponse(details.Author),
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetCities обрабатывает GET /api/cities
func (h *CatalogHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCities"})

	cities, err := h.getCitiesUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get cities use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve cities")
		return
	}

	response := make([]CityResponse, len(cities))
	for i, c := range cities {
		response[i] = CityResponse{City: c.City, Count: c.Count}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetBrands обрабатывает GET /api/brands - статический справочник
// марок и моделей для формы подачи.
func (h *CatalogHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	response := make([]BrandModelsResponse, 0, len(domain.Brands))
	for _, name := range domain.BrandNames() {
		response = append(response, BrandModelsResponse{Brand: name, Models: domain.Brands[name]})
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetModels обрабатывает GET /api/brands/{brand}/models
func (h *CatalogHandler) GetModels(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	models, ok := domain.Brands[brand]
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Brand not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, models)
}

func toAuthorResponse(a domain.AuthorInfo) AuthorResponse {
	return AuthorResponse{
		Username: a.Username,
		Name:     a.Name,
		Since:    a.Since,
		AdsCount: a.AdsCount,
	}
}

// photosOrEmpty гарантирует [] вместо null в JSON.
func photosOrEmpty(photos []string) []string {
	if photos == nil {
		return []string{}
	}
	return photos
}
