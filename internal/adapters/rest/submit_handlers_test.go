package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/usecase"
)

type stubSubmit struct {
	gotReq domain.SubmitRequest
	result *domain.SubmitResult
	err    error
}

func (s *stubSubmit) Execute(_ context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	s.gotReq = req
	return s.result, s.err
}

func postSubmit(t *testing.T, h *SubmitHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.SubmitAd(rec, req)
	return rec
}

const carSubmitBody = `{
	"type": "car",
	"telegram_id": 42,
	"brand": "BMW",
	"model": "X5",
	"year": 2018,
	"price": 25000,
	"city": "Минск",
	"contact_phone": "+375291234567"
}`

func TestSubmitAdRequiresJSONContentType(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{})

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(carSubmitBody))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.SubmitAd(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestSubmitAdRequiresTelegramID(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{})

	rec := postSubmit(t, h, `{"type": "car", "brand": "BMW"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAdRejectsUnknownType(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{})

	rec := postSubmit(t, h, `{"type": "boat", "telegram_id": 42}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAdBuildsCarInput(t *testing.T) {
	stub := &stubSubmit{result: &domain.SubmitResult{AdID: 10, Published: false}}
	h := NewSubmitHandler(stub)

	rec := postSubmit(t, h, carSubmitBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.gotReq.Car)
	assert.Nil(t, stub.gotReq.Plate)
	assert.Equal(t, "BMW", stub.gotReq.Car.Brand)
	assert.Equal(t, int64(42), stub.gotReq.TelegramID)

	var resp SubmitAdResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.AdID)
	assert.Equal(t, "pending", resp.Status)
}

func TestSubmitAdPublishedStatus(t *testing.T) {
	stub := &stubSubmit{result: &domain.SubmitResult{AdID: 11, Published: true}}
	h := NewSubmitHandler(stub)

	rec := postSubmit(t, h, carSubmitBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SubmitAdResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Published)
	assert.Equal(t, "approved", resp.Status)
}

func TestSubmitAdRateLimited(t *testing.T) {
	stub := &stubSubmit{err: &usecase.RateLimitedError{Reason: "Подождите 30 сек. перед следующей подачей"}}
	h := NewSubmitHandler(stub)

	rec := postSubmit(t, h, carSubmitBody)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Подождите")
}

func TestSubmitAdBannedUser(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{err: domain.ErrUserBanned})

	rec := postSubmit(t, h, carSubmitBody)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitAdValidationErrors(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{err: &domain.ValidationError{
		Messages: []string{"Укажите марку автомобиля", "Укажите цену"},
	}})

	rec := postSubmit(t, h, carSubmitBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 2)
}

func TestSubmitAdDuplicate(t *testing.T) {
	h := NewSubmitHandler(&stubSubmit{err: domain.ErrDuplicateAd})

	rec := postSubmit(t, h, carSubmitBody)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "duplicate", resp["error_type"])
}
