package photostore_adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// Расширение по MIME-типу. Всё, чего здесь нет, не принимаем.
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var contentTypeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// localIDRe - наши идентификаторы: loc_ + hex от uuid.
var localIDRe = regexp.MustCompile(`^loc_[0-9a-f]{32}$`)

// LocalPhotoStore хранит загруженные фото на диске сервиса.
// Идентификаторы вида loc_<uuid> отличают их от телеграмных file_id.
type LocalPhotoStore struct {
	dir string
}

func NewLocalPhotoStore(dir string) (*LocalPhotoStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalPhotoStore{dir: dir}, nil
}

// Save сохраняет изображение и возвращает его photo_id.
func (s *LocalPhotoStore) Save(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", &domain.ValidationError{Messages: []string{"Пустой файл"}}
	}
	if len(data) > constants.MaxPhotoSize {
		return "", &domain.ValidationError{Messages: []string{"Фото больше 5 МБ"}}
	}

	ext, ok := extByContentType[normalizeContentType(contentType)]
	if !ok {
		return "", &domain.ValidationError{Messages: []string{"Допустимы только JPEG, PNG и WebP"}}
	}

	photoID := "loc_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	path := filepath.Join(s.dir, photoID+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}
	return photoID, nil
}

// Open возвращает содержимое и MIME-тип фото.
func (s *LocalPhotoStore) Open(photoID string) ([]byte, string, error) {
	path, ext, err := s.find(photoID)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to read photo file: %w", err)
	}
	return data, contentTypeByExt[ext], nil
}

// Exists сообщает, лежит ли фото на диске.
func (s *LocalPhotoStore) Exists(photoID string) bool {
	_, _, err := s.find(photoID)
	return err == nil
}

// IsLocal различает наши идентификаторы и внешние file_id.
func (s *LocalPhotoStore) IsLocal(photoID string) bool {
	return localIDRe.MatchString(photoID)
}

// find ищет файл фото, перебирая известные расширения. Формат photoID
// проверяется жестко, так что path traversal через него невозможен.
func (s *LocalPhotoStore) find(photoID string) (path, ext string, err error) {
	if !s.IsLocal(photoID) {
		return "", "", domain.ErrNotFound
	}
	for e := range contentTypeByExt {
		p := filepath.Join(s.dir, photoID+e)
		if _, statErr := os.Stat(p); statErr == nil {
			return p, e, nil
		}
	}
	return "", "", domain.ErrNotFound
}

func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
