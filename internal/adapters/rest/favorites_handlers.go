package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

// FavoritesHandler обслуживает избранное пользователя.
type FavoritesHandler struct {
	addUC    usecases_port.AddToFavoritesUseCasePort
	removeUC usecases_port.RemoveFromFavoritesUseCasePort
	getUC    usecases_port.GetFavoritesUseCasePort
}

func NewFavoritesHandler(
	addUC usecases_port.AddToFavoritesUseCasePort,
	removeUC usecases_port.RemoveFromFavoritesUseCasePort,
	getUC usecases_port.GetFavoritesUseCasePort,
) *FavoritesHandler {
	return &FavoritesHandler{addUC: addUC, removeUC: removeUC, getUC: getUC}
}

// GetFavorites обрабатывает GET /api/favorites?user_id=...
func (h *FavoritesHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFavorites"})

	telegramID := viewerID(r)
	if telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	items, err := h.getUC.Execute(r.Context(), telegramID)
	if err != nil {
		logger.Error("Get favorites use case failed", err, port.Fields{"telegram_id": telegramID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve favorites")
		return
	}

	response := make([]FavoriteItemResponse, len(items))
	for i, item := range items {
		response[i] = FavoriteItemResponse{
			AdType:    string(item.AdType),
			ID:        item.ID,
			Title:     item.Title,
			Price:     item.Price,
			City:      item.City,
			Photo:     item.Photo,
			ViewCount: item.ViewCount,
		}
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// AddToFavorites обрабатывает POST /api/favorites?user_id=...
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToFavorites"})

	telegramID := viewerID(r)
	if telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	var reqDTO FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	adType, ok := adTypeParam(reqDTO.AdType)
	if !ok || reqDTO.AdID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "ad_type and ad_id are required")
		return
	}

	if err := h.addUC.Execute(r.Context(), telegramID, adType, reqDTO.AdID); err != nil {
		logger.Error("Add to favorites use case failed", err, port.Fields{
			"telegram_id": telegramID,
			"ad_type":     adType,
			"ad_id":       reqDTO.AdID,
		})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add to favorites")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// RemoveFromFavorites обрабатывает DELETE /api/favorites/{adType}/{adID}?user_id=...
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromFavorites"})

	telegramID := viewerID(r)
	if telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	adType, ok := adTypeParam(chi.URLParam(r, "adType"))
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Unknown ad type")
		return
	}
	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	if err := h.removeUC.Execute(r.Context(), telegramID, adType, adID); err != nil {
		logger.Error("Remove from favorites use case failed", err, port.Fields{
			"telegram_id": telegramID,
			"ad_type":     adType,
			"ad_id":       adID,
		})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove from favorites")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
