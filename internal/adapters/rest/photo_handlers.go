package rest

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port/usecases_port"
)

// photoIDRe отсекает всё, что не похоже на наш или телеграмный file_id.
var photoIDRe = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)

// PhotoHandler обслуживает загрузку фото перед подачей и их раздачу.
type PhotoHandler struct {
	uploadUC usecases_port.UploadPhotoUseCasePort
	files    port.PhotoFileStoragePort
}

func NewPhotoHandler(uploadUC usecases_port.UploadPhotoUseCasePort, files port.PhotoFileStoragePort) *PhotoHandler {
	return &PhotoHandler{uploadUC: uploadUC, files: files}
}

// UploadPhoto обрабатывает POST /api/photos/upload (multipart, поле "photo").
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UploadPhoto"})

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadBodySize)
	if err := r.ParseMultipartForm(constants.MaxPhotoSize); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Photo field is required")
		return
	}
	defer file.Close()

	if header.Size > constants.MaxPhotoSize {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "Фото больше 5 МБ")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, constants.MaxPhotoSize+1))
	if err != nil {
		logger.Error("Failed to read uploaded photo", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to read photo")
		return
	}
	if len(data) > constants.MaxPhotoSize {
		WriteJSONError(w, http.StatusRequestEntityTooLarge, "Фото больше 5 МБ")
		return
	}

	contentType := header.Header.Get("Content-Type")
	photoID, err := h.uploadUC.Execute(r.Context(), data, contentType)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			WriteJSONError(w, http.StatusBadRequest, ve.Error())
			return
		}
		logger.Error("Upload photo use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	logger.Info("Photo uploaded", port.Fields{"photo_id": photoID, "size": len(data)})
	RespondWithJSON(w, http.StatusCreated, UploadPhotoResponse{PhotoID: photoID})
}

// ServePhoto обрабатывает GET /api/photos/{photoID} - раздача локально
// сохранённых фото. Внешние file_id мы не проксируем.
func (h *PhotoHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photoID")
	if len(photoID) > 256 || !photoIDRe.MatchString(photoID) {
		WriteJSONError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}
	if !h.files.IsLocal(photoID) {
		WriteJSONError(w, http.StatusNotFound, "Photo not found")
		return
	}

	data, contentType, err := h.files.Open(photoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Photo not found")
			return
		}
		contextkeys.LoggerFromContext(r.Context()).Error("Failed to open photo", err, port.Fields{"photo_id": photoID})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to read photo")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
