// Числовые константы и лимиты сервиса.
// Не хардкодить магические числа в логике — всё сюда.
package constants

import "time"

// Пагинация каталога
const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

// Подача объявлений
const (
	MaxSubmitBodySize = 10 * 1024 // 10 KB
	AdExpiry          = 30 * 24 * time.Hour
	DuplicateWindow   = 7 * 24 * time.Hour
	MaxAdPhotos       = 10
)

// Загрузка фото
const (
	MaxPhotoSize      = 5 * 1024 * 1024 // 5 MB
	MaxUploadBodySize = 10 * 1024 * 1024
)

// Причины смены статуса
const (
	DeletedByOwnerReason  = "Удалено владельцем"
	DefaultRejectedReason = "Не прошло модерацию"
)
