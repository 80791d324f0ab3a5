package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

// AdminHandler обслуживает модерацию: очередь, статистику, решения
// по объявлениям, баны и правки от имени админа.
type AdminHandler struct {
	getPendingUC usecases_port.GetPendingAdsUseCasePort
	getStatsUC   usecases_port.GetAdStatsUseCasePort
	approveUC    usecases_port.ApproveAdUseCasePort
	rejectUC     usecases_port.RejectAdUseCasePort
	banUserUC    usecases_port.BanUserUseCasePort
	editCarUC    usecases_port.EditCarAdUseCasePort
	editPlateUC  usecases_port.EditPlateAdUseCasePort
}

func NewAdminHandler(
	getPendingUC usecases_port.GetPendingAdsUseCasePort,
	getStatsUC usecases_port.GetAdStatsUseCasePort,
	approveUC usecases_port.ApproveAdUseCasePort,
	rejectUC usecases_port.RejectAdUseCasePort,
	banUserUC usecases_port.BanUserUseCasePort,
	editCarUC usecases_port.EditCarAdUseCasePort,
	editPlateUC usecases_port.EditPlateAdUseCasePort,
) *AdminHandler {
	return &AdminHandler{
		getPendingUC: getPendingUC,
		getStatsUC:   getStatsUC,
		approveUC:    approveUC,
		rejectUC:     rejectUC,
		banUserUC:    banUserUC,
		editCarUC:    editCarUC,
		editPlateUC:  editPlateUC,
	}
}

// GetPendingAds обрабатывает GET /api/admin/pending
func (h *AdminHandler) GetPendingAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPendingAds"})

	cards, err := h.getPendingUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get pending ads use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve pending ads")
		return
	}

	response := make([]PendingAdResponse, len(cards))
	for i, c := range cards {
		response[i] = PendingAdResponse{
			AdType:          string(c.AdType),
			ID:              c.ID,
			Title:           c.Title,
			Price:           c.Price,
			City:            c.City,
			Description:     c.Description,
			ContactPhone:    c.ContactPhone,
			ContactTelegram: c.ContactTelegram,
			Photo:           c.Photo,
			CreatedAt:       c.CreatedAt,
			Brand:           c.Brand,
			Model:           c.Model,
			Year:            c.Year,
			Mileage:         c.Mileage,
			EngineVolume:    c.EngineVolume,
			FuelType:        c.FuelType,
			Transmission:    c.Transmission,
			Color:           c.Color,
			PlateNumber:     c.PlateNumber,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// GetStats обрабатывает GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetStats"})

	stats, err := h.getStatsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get ad stats use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve stats")
		return
	}

	RespondWithJSON(w, http.StatusOK, ModerationStatsResponse{
		Pending:  stats.Pending,
		Approved: stats.Approved,
		Rejected: stats.Rejected,
		Total:    stats.Total(),
	})
}

// ApproveAd обрабатывает POST /api/admin/{adType}/{adID}/approve
func (h *AdminHandler) ApproveAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ApproveAd"})

	adType, adID, ok := h.adParams(w, r)
	if !ok {
		return
	}

	if err := h.approveUC.Execute(r.Context(), adType, adID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Ad not found")
			return
		}
		logger.Error("Approve ad use case failed", err, port.Fields{"ad_type": adType, "ad_id": adID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to approve ad")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RejectAd обрабатывает POST /api/admin/{adType}/{adID}/reject
func (h *AdminHandler) RejectAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RejectAd"})

	adType, adID, ok := h.adParams(w, r)
	if !ok {
		return
	}

	var reqDTO RejectAdRequest
	// Тело опционально: без причины подставится стандартная.
	_ = json.NewDecoder(r.Body).Decode(&reqDTO)

	if err := h.rejectUC.Execute(r.Context(), adType, adID, reqDTO.Reason); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Ad not found")
			return
		}
		logger.Error("Reject ad use case failed", err, port.Fields{"ad_type": adType, "ad_id": adID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to reject ad")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// EditAd обрабатывает PUT /api/admin/{adType}/{adID} - правка без
// проверки владельца и без сброса статуса в pending.
func (h *AdminHandler) EditAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AdminEditAd"})

	adType, adID, ok := h.adParams(w, r)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var err error
	if adType == domain.AdTypeCar {
		err = h.editCarUC.Execute(r.Context(), adID, 0, patch, true)
	} else {
		err = h.editPlateUC.Execute(r.Context(), adID, 0, patch, true)
	}
	if err != nil {
		writeOwnerError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BanUser обрабатывает POST /api/admin/users/{telegramID}/ban
func (h *AdminHandler) BanUser(w http.ResponseWriter, r *http.Request) {
	h.setBan(w, r, true)
}

// UnbanUser обрабатывает POST /api/admin/users/{telegramID}/unban
func (h *AdminHandler) UnbanUser(w http.ResponseWriter, r *http.Request) {
	h.setBan(w, r, false)
}

func (h *AdminHandler) setBan(w http.ResponseWriter, r *http.Request, banned bool) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "BanUser"})

	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid telegram id")
		return
	}

	if err := h.banUserUC.Execute(r.Context(), telegramID, banned); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("Ban user use case failed", err, port.Fields{"telegram_id": telegramID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to change ban state")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) adParams(w http.ResponseWriter, r *http.Request) (domain.AdType, int64, bool) {
	adType, ok := adTypeParam(chi.URLParam(r, "adType"))
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Unknown ad type")
		return "", 0, false
	}
	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad id")
		return "", 0, false
	}
	return adType, adID, true
}
