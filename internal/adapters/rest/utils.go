package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/constants"
	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// queryInt возвращает числовой query-параметр или 0 (мусор игнорируем,
// как и отсутствие параметра).
func queryInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(name))
	return v
}

// queryInt64 — то же для int64 (telegram_id не влезает в int на 32 битах).
func queryInt64(r *http.Request, name string) int64 {
	v, _ := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	return v
}

// pageParams извлекает limit/offset с дефолтом и потолком.
func pageParams(r *http.Request) (limit, offset int) {
	limit = queryInt(r, "limit")
	if limit <= 0 {
		limit = constants.DefaultPageSize
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	offset = queryInt(r, "offset")
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// adTypeParam разбирает тип объявления из URL-сегмента.
func adTypeParam(s string) (domain.AdType, bool) {
	switch s {
	case string(domain.AdTypeCar), "cars":
		return domain.AdTypeCar, true
	case string(domain.AdTypePlate), "plates":
		return domain.AdTypePlate, true
	}
	return "", false
}

// viewerID извлекает telegram_id зрителя: query-параметр или заголовок
// X-Telegram-User-Id. 0 — анонимный просмотр.
func viewerID(r *http.Request) int64 {
	if id := queryInt64(r, "user_id"); id != 0 {
		return id
	}
	id, _ := strconv.ParseInt(r.Header.Get("X-Telegram-User-Id"), 10, 64)
	return id
}
