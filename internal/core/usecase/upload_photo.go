package usecase

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/contextkeys"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/port"
)

type UploadPhotoUseCase struct {
	files port.PhotoFileStoragePort
}

func NewUploadPhotoUseCase(files port.PhotoFileStoragePort) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{files: files}
}

// Execute сохраняет фото на диск до привязки к объявлению. Привязка
// происходит позже, в момент подачи (photo_ids в запросе submit).
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, data []byte, contentType string) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "UploadPhoto",
		"content_type": contentType,
		"size_bytes":   len(data),
	})

	photoID, err := uc.files.Save(data, contentType)
	if err != nil {
		ucLogger.Error("Failed to save photo", err, nil)
		return "", err
	}

	ucLogger.Info("Photo saved", port.Fields{"photo_id": photoID})
	return photoID, nil
}
