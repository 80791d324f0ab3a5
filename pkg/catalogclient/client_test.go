package catalogclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSendsOnlyPopulatedParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.List(context.Background(), CatalogCars, ListQuery{
		Query:    "BMW",
		Brand:    "BMW",
		PriceMin: 5000,
		Sort:     SortDateNew,
	}, 0, 20)
	require.NoError(t, err)

	assert.Equal(t, "BMW", got.Get("q"))
	assert.Equal(t, "BMW", got.Get("brand"))
	assert.Equal(t, "5000", got.Get("price_min"))
	assert.Equal(t, "0", got.Get("offset"))
	assert.Equal(t, "20", got.Get("limit"))

	// Незаполненные и дефолтные поля опускаются, а не шлются пустыми.
	for _, absent := range []string{"city", "price_max", "year_min", "year_max", "model", "sort"} {
		_, ok := got[absent]
		assert.False(t, ok, "param %q must be omitted", absent)
	}
}

func TestListPlatesOmitsCarOnlyParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		assert.Equal(t, "/api/plates", r.URL.Path)
		w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.List(context.Background(), CatalogPlates, ListQuery{
		Brand:   "BMW", // неприменимо к номерам
		YearMin: 2015,
		City:    "Минск",
	}, 0, 20)
	require.NoError(t, err)

	assert.Equal(t, "Минск", got.Get("city"))
	for _, absent := range []string{"brand", "model", "year_min", "year_max"} {
		_, ok := got[absent]
		assert.False(t, ok, "param %q must be omitted for plates", absent)
	}
}

func TestListDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":7,"brand":"Audi","model":"A4","year":2018,"city":"Минск","price":15500,"view_count":12}],"total":45}`))
	}))
	defer srv.Close()

	page, err := New(srv.URL).List(context.Background(), CatalogCars, DefaultQuery(), 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(7), page.Items[0].ID)
	assert.Equal(t, "Audi", page.Items[0].Brand)
	assert.Equal(t, 15500, page.Items[0].Price)
}

// Любой не-2xx статус и любой транспортный сбой — одна и та же ошибка
// ErrFetchFailed: клиент не различает подтипы.
func TestFetchFailureIsUniform(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background(), CatalogCars, DefaultQuery(), 0, 20)
	assert.ErrorIs(t, err, ErrFetchFailed)

	srv.Close() // транспортный сбой
	_, err = New(srv.URL).List(context.Background(), CatalogCars, DefaultQuery(), 0, 20)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestUserIDHeader(t *testing.T) {
	var header string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Telegram-User-Id")
		w.Write([]byte(`{"id":1,"brand":"Audi","model":"A4","photos":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithUserID(987654)).CarDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "987654", header)
}
