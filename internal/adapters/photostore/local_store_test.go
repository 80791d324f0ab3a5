package photostore_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

func newTestStore(t *testing.T) *LocalPhotoStore {
	t.Helper()
	store, err := NewLocalPhotoStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	store := newTestStore(t)
	payload := []byte("fake-jpeg-bytes")

	photoID, err := store.Save(payload, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, store.IsLocal(photoID))
	assert.True(t, store.Exists(photoID))

	data, contentType, err := store.Open(photoID)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestSaveNormalizesContentType(t *testing.T) {
	store := newTestStore(t)

	photoID, err := store.Save([]byte("png"), "Image/PNG; charset=binary")
	require.NoError(t, err)

	_, contentType, err := store.Open(photoID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestSaveRejectsEmptyFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(nil, "image/jpeg")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "Пустой файл")
}

func TestSaveRejectsUnsupportedType(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save([]byte("gif"), "image/gif")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "Допустимы только JPEG, PNG и WebP")
}

func TestOpenUnknownIDReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Open("loc_00000000000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIsLocalDistinguishesTelegramFileIDs(t *testing.T) {
	store := newTestStore(t)

	assert.False(t, store.IsLocal("AgACAgIAAxkBAAIB"))
	assert.False(t, store.IsLocal("loc_../../etc/passwd"))
	assert.False(t, store.IsLocal(""))
}

func TestOpenRejectsTraversalAttempts(t *testing.T) {
	store := newTestStore(t)

	for _, id := range []string{"../secret", "loc_..", "loc_ABCDEF"} {
		_, _, err := store.Open(id)
		assert.ErrorIs(t, err, domain.ErrNotFound, "id %q", id)
	}
}
