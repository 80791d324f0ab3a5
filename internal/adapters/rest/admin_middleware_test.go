package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminProtected(t *testing.T, token string, ids map[int64]bool) http.Handler {
	t.Helper()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminAuthMiddleware(token, ids)(ok)
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	h := adminProtected(t, "s3cret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/pending", nil)
	req.Header.Set("X-Admin-Token", "s3cret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminAuthRejectsWrongToken(t *testing.T) {
	h := adminProtected(t, "s3cret", nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/pending", nil)
	req.Header.Set("X-Admin-Token", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAuthAcceptsWhitelistedID(t *testing.T) {
	h := adminProtected(t, "", map[int64]bool{42: true})

	req := httptest.NewRequest(http.MethodGet, "/admin/pending?user_id=42", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	// То же через заголовок.
	req = httptest.NewRequest(http.MethodGet, "/admin/pending", nil)
	req.Header.Set("X-Telegram-User-Id", "42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminAuthRejectsUnknownID(t *testing.T) {
	h := adminProtected(t, "", map[int64]bool{42: true})

	req := httptest.NewRequest(http.MethodGet, "/admin/pending?user_id=7", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAuthEmptyConfigRejectsEveryone(t *testing.T) {
	h := adminProtected(t, "", nil)

	// Пустой настроенный токен не должен совпадать с пустым заголовком.
	req := httptest.NewRequest(http.MethodGet, "/admin/pending", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
