package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/usecase"
)

// SubmitHandler обслуживает подачу объявлений из Mini App.
type SubmitHandler struct {
	submitUC usecases_port.SubmitAdUseCasePort
}

func NewSubmitHandler(submitUC usecases_port.SubmitAdUseCasePort) *SubmitHandler {
	return &SubmitHandler{submitUC: submitUC}
}

// SubmitAd обрабатывает POST /api/submit
func (h *SubmitHandler) SubmitAd(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitAd"})

	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxSubmitBodySize)
	var reqDTO SubmitAdRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		logger.Warn("Failed to decode submit body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if reqDTO.TelegramID == 0 {
		WriteJSONError(w, http.StatusBadRequest, "telegram_id is required")
		return
	}

	req := domain.SubmitRequest{
		Type:       domain.AdType(reqDTO.Type),
		TelegramID: reqDTO.TelegramID,
		Username:   reqDTO.Username,
		FullName:   reqDTO.FullName,
		PhotoIDs:   reqDTO.PhotoIDs,
		Force:      reqDTO.Force,
	}
	switch req.Type {
	case domain.AdTypeCar:
		req.Car = &domain.CarAdInput{
			Brand:           reqDTO.Brand,
			Model:           reqDTO.Model,
			Year:            reqDTO.Year,
			Mileage:         reqDTO.Mileage,
			EngineVolume:    reqDTO.EngineVolume,
			FuelType:        reqDTO.FuelType,
			Transmission:    reqDTO.Transmission,
			Color:           reqDTO.Color,
			Price:           reqDTO.Price,
			Description:     reqDTO.Description,
			HasGBO:          reqDTO.HasGBO,
			Region:          reqDTO.Region,
			City:            reqDTO.City,
			ContactPhone:    reqDTO.ContactPhone,
			ContactTelegram: reqDTO.ContactTelegram,
		}
	case domain.AdTypePlate:
		req.Plate = &domain.PlateAdInput{
			PlateNumber:     reqDTO.PlateNumber,
			Price:           reqDTO.Price,
			Description:     reqDTO.Description,
			Region:          reqDTO.Region,
			City:            reqDTO.City,
			ContactPhone:    reqDTO.ContactPhone,
			ContactTelegram: reqDTO.ContactTelegram,
		}
	default:
		WriteJSONError(w, http.StatusBadRequest, "Unknown ad type")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"ad_type":     req.Type,
		"telegram_id": req.TelegramID,
	})
	handlerLogger.Info("Processing ad submission", nil)

	result, err := h.submitUC.Execute(r.Context(), req)
	if err != nil {
		h.writeSubmitError(w, handlerLogger, err)
		return
	}

	status := string(domain.StatusPending)
	if result.Published {
		status = string(domain.StatusApproved)
	}
	handlerLogger.Info("Ad submitted", port.Fields{"ad_id": result.AdID, "published": result.Published})
	RespondWithJSON(w, http.StatusCreated, SubmitAdResponse{
		AdID:      result.AdID,
		Published: result.Published,
		Status:    status,
	})
}

// writeSubmitError переводит доменные ошибки подачи в HTTP-статусы.
func (h *SubmitHandler) writeSubmitError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var rateErr *usecase.RateLimitedError
	if errors.As(err, &rateErr) {
		WriteJSONError(w, http.StatusTooManyRequests, rateErr.Reason)
		return
	}
	if errors.Is(err, domain.ErrUserBanned) {
		WriteJSONError(w, http.StatusForbidden, "Ваш аккаунт заблокирован")
		return
	}
	if ve, ok := domain.AsValidationError(err); ok {
		RespondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
			"errors": ve.Messages,
		})
		return
	}
	if errors.Is(err, domain.ErrDuplicateAd) {
		RespondWithJSON(w, http.StatusConflict, map[string]string{
			"error":      "Похожее объявление уже подано. Повторите с подтверждением.",
			"error_type": "duplicate",
		})
		return
	}
	logger.Error("Submit ad use case failed", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, "Failed to submit ad")
}
