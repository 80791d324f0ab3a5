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

// ProfileHandler обслуживает профиль и "Мои объявления".
type ProfileHandler struct {
	getProfileUC    usecases_port.GetProfileUseCasePort
	updateProfileUC usecases_port.UpdateProfileUseCasePort
	getUserAdsUC    usecases_port.GetUserAdsUseCasePort
}

func NewProfileHandler(
	getProfileUC usecases_port.GetProfileUseCasePort,
	updateProfileUC usecases_port.UpdateProfileUseCasePort,
	getUserAdsUC usecases_port.GetUserAdsUseCasePort,
) *ProfileHandler {
	return &ProfileHandler{
		getProfileUC:    getProfileUC,
		updateProfileUC: updateProfileUC,
		getUserAdsUC:    getUserAdsUC,
	}
}

// GetProfile обрабатывает GET /api/profile/{telegramID}
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProfile"})

	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil || telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Invalid telegram_id")
		return
	}

	profile, err := h.getProfileUC.Execute(r.Context(), telegramID)
	if err != nil {
		logger.Error("Get profile use case failed", err, port.Fields{"telegram_id": telegramID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}

	response := ProfileResponse{
		Name:     profile.Name,
		Username: profile.Username,
		Cars:     toStatusCountsDTO(profile.Cars),
		Plates:   toStatusCountsDTO(profile.Plates),
	}
	if profile.MemberSince != nil {
		response.MemberSince = profile.MemberSince.Format("02.01.2006")
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// UpdateProfile обрабатывает PUT /api/profile/{telegramID}
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProfile"})

	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil || telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Invalid telegram_id")
		return
	}

	var reqDTO UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.updateProfileUC.Execute(r.Context(), telegramID, reqDTO.Name); err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			WriteJSONError(w, http.StatusBadRequest, ve.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.Error("Update profile use case failed", err, port.Fields{"telegram_id": telegramID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetUserAds обрабатывает GET /api/user/{telegramID}/ads
func (h *ProfileHandler) GetUserAds(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserAds"})

	telegramID, err := strconv.ParseInt(chi.URLParam(r, "telegramID"), 10, 64)
	if err != nil || telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "Invalid telegram_id")
		return
	}

	userAds, err := h.getUserAdsUC.Execute(r.Context(), telegramID)
	if err != nil {
		logger.Error("Get user ads use case failed", err, port.Fields{"telegram_id": telegramID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve ads")
		return
	}

	response := UserAdsResponse{
		Cars:   toOwnedAdResponses(userAds.Cars),
		Plates: toOwnedAdResponses(userAds.Plates),
	}
	RespondWithJSON(w, http.StatusOK, response)
}

func toStatusCountsDTO(c domain.AdStatusCounts) AdStatusCountsDTO {
	return AdStatusCountsDTO{
		Active:   c.Active,
		Pending:  c.Pending,
		Rejected: c.Rejected,
		Total:    c.Total(),
	}
}

func toOwnedAdResponses(ads []domain.OwnedAdSummary) []OwnedAdResponse {
	result := make([]OwnedAdResponse, len(ads))
	for i, ad := range ads {
		result[i] = OwnedAdResponse{
			ID:        ad.ID,
			Title:     ad.Title,
			Status:    string(ad.Status),
			Price:     ad.Price,
			City:      ad.City,
			Photo:     ad.Photo,
			CreatedAt: ad.CreatedAt,
		}
	}
	return result
}
