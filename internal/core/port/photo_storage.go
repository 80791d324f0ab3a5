package port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// PhotoStoragePort — контракт адаптера таблицы ad_photos.
type PhotoStoragePort interface {
	// Attach привязывает фото к объявлению в заданном порядке.
	Attach(ctx context.Context, adType domain.AdType, adID int64, fileIDs []string) error

	// FindByAd возвращает file_id всех фото объявления по позиции.
	FindByAd(ctx context.Context, adType domain.AdType, adID int64) ([]string, error)

	// FirstPhotos возвращает обложку (первое фото по позиции) для каждого
	// из adIDs: map[adID]fileID. Объявления без фото в карте отсутствуют.
	FirstPhotos(ctx context.Context, adType domain.AdType, adIDs []int64) (map[int64]string, error)
}

// PhotoFileStoragePort — контракт файлового хранилища загруженных фото.
type PhotoFileStoragePort interface {
	// Save сохраняет изображение и возвращает photo_id вида "loc_<uuid>".
	// Возвращает ошибку при неподдерживаемом типе или превышении размера.
	Save(data []byte, contentType string) (string, error)

	// Open возвращает содержимое и MIME-тип фото или domain.ErrNotFound.
	Open(photoID string) ([]byte, string, error)

	// Exists сообщает, лежит ли фото с таким photo_id на диске.
	Exists(photoID string) bool

	// IsLocal различает наши идентификаторы (loc_*) и внешние file_id.
	IsLocal(photoID string) bool
}
