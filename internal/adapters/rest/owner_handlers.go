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

// OwnerHandler обслуживает операции владельца над своим объявлением:
// редактирование, удаление, отметка "продано".
type OwnerHandler struct {
	editCarUC   usecases_port.EditCarAdUseCasePort
	editPlateUC usecases_port.EditPlateAdUseCasePort
	deleteUC    usecases_port.DeleteAdUseCasePort
	markSoldUC  usecases_port.MarkSoldUseCasePort
}

func NewOwnerHandler(
	editCarUC usecases_port.EditCarAdUseCasePort,
	editPlateUC usecases_port.EditPlateAdUseCasePort,
	deleteUC usecases_port.DeleteAdUseCasePort,
	markSoldUC usecases_port.MarkSoldUseCasePort,
) *OwnerHandler {
	return &OwnerHandler{
		editCarUC:   editCarUC,
		editPlateUC: editPlateUC,
		deleteUC:    deleteUC,
		markSoldUC:  markSoldUC,
	}
}

// EditAd обрабатывает PUT /api/ads/{adType}/{adID}?user_id=...
// Тело - частичный JSON: присланные поля перезаписывают старые,
// объединённый результат валидируется целиком.
func (h *OwnerHandler) EditAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "EditAd"})

	adType, adID, telegramID, ok := h.ownerParams(w, r)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"ad_type":     adType,
		"ad_id":       adID,
		"telegram_id": telegramID,
	})
	handlerLogger.Info("Processing ad edit", nil)

	var err error
	if adType == domain.AdTypeCar {
		err = h.editCarUC.Execute(r.Context(), adID, telegramID, patch, false)
	} else {
		err = h.editPlateUC.Execute(r.Context(), adID, telegramID, patch, false)
	}
	if err != nil {
		writeOwnerError(w, handlerLogger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAd обрабатывает DELETE /api/ads/{adType}/{adID}?user_id=...
// Удаление мягкое: объявление уходит в rejected и пропадает из каталога.
func (h *OwnerHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteAd"})

	adType, adID, telegramID, ok := h.ownerParams(w, r)
	if !ok {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"ad_type":     adType,
		"ad_id":       adID,
		"telegram_id": telegramID,
	})
	handlerLogger.Info("Processing ad deletion", nil)

	if err := h.deleteUC.Execute(r.Context(), adType, adID, telegramID); err != nil {
		writeOwnerError(w, handlerLogger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkSold обрабатывает POST /api/ads/{adType}/{adID}/sold?user_id=...
func (h *OwnerHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkSold"})

	adType, adID, telegramID, ok := h.ownerParams(w, r)
	if !ok {
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"ad_type":     adType,
		"ad_id":       adID,
		"telegram_id": telegramID,
	})
	handlerLogger.Info("Processing mark sold", nil)

	if err := h.markSoldUC.Execute(r.Context(), adType, adID, telegramID); err != nil {
		writeOwnerError(w, handlerLogger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *OwnerHandler) ownerParams(w http.ResponseWriter, r *http.Request) (domain.AdType, int64, int64, bool) {
	adType, ok := adTypeParam(chi.URLParam(r, "adType"))
	if !ok {
		WriteJSONError(w, http.StatusBadRequest, "Unknown ad type")
		return "", 0, 0, false
	}
	adID, err := strconv.ParseInt(chi.URLParam(r, "adID"), 10, 64)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid ad id")
		return "", 0, 0, false
	}
	telegramID := viewerID(r)
	if telegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "user_id is required")
		return "", 0, 0, false
	}
	return adType, adID, telegramID, true
}

// writeOwnerError переводит ошибки операций владельца в HTTP-статусы.
func writeOwnerError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "Ad not found")
	case errors.Is(err, domain.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, "Это не ваше объявление")
	case errors.Is(err, domain.ErrNotEditable):
		WriteJSONError(w, http.StatusConflict, "Объявление нельзя изменить в текущем статусе")
	default:
		if ve, ok := domain.AsValidationError(err); ok {
			RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": ve.Messages})
			return
		}
		logger.Error("Owner operation failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Operation failed")
	}
}
