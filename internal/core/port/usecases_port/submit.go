package usecases_port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

type SubmitAdUseCasePort interface {
	Execute(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error)
}

type UploadPhotoUseCasePort interface {
	// Execute сохраняет фото и возвращает photo_id (loc_<uuid>).
	Execute(ctx context.Context, data []byte, contentType string) (string, error)
}
