package catalogsession

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogclient"
)

func carEntry() CacheEntry {
	return CacheEntry{
		Query: catalogclient.ListQuery{
			Query:    "BMW",
			Brand:    "BMW",
			City:     "Минск",
			PriceMin: 5000,
			PriceMax: 30000,
			Sort:     catalogclient.SortPriceAsc,
		},
		Items:  makeItems(0, 40),
		Total:  45,
		Offset: 40,
		Scroll: 1200,
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache := NewViewCache()
	want := carEntry()

	cache.Save(catalogclient.CatalogCars, want)
	got, ok := cache.Load(catalogclient.CatalogCars)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Чтение неразрушающее: слот остаётся на месте.
	again, ok := cache.Load(catalogclient.CatalogCars)
	require.True(t, ok)
	assert.Equal(t, want, again)
}

func TestCacheSlotsAreIsolated(t *testing.T) {
	cache := NewViewCache()
	cache.Save(catalogclient.CatalogCars, carEntry())

	_, ok := cache.Load(catalogclient.CatalogPlates)
	assert.False(t, ok)

	plateEntry := CacheEntry{
		Query:  catalogclient.ListQuery{Query: "777"},
		Items:  []catalogclient.AdPreview{{ID: 1, PlateNumber: "А777АА", Price: 3000}},
		Total:  1,
		Offset: 1,
	}
	cache.Save(catalogclient.CatalogPlates, plateEntry)

	carGot, ok := cache.Load(catalogclient.CatalogCars)
	require.True(t, ok)
	assert.Equal(t, carEntry(), carGot)

	plateGot, ok := cache.Load(catalogclient.CatalogPlates)
	require.True(t, ok)
	assert.Equal(t, plateEntry, plateGot)
}

func TestCacheSaveOverwritesWhole(t *testing.T) {
	cache := NewViewCache()
	cache.Save(catalogclient.CatalogCars, carEntry())

	small := CacheEntry{
		Query:  catalogclient.DefaultQuery(),
		Items:  makeItems(0, 3),
		Total:  3,
		Offset: 3,
	}
	cache.Save(catalogclient.CatalogCars, small)

	got, ok := cache.Load(catalogclient.CatalogCars)
	require.True(t, ok)
	assert.Equal(t, small, got) // без слияния со старым слепком
}

func TestCacheClear(t *testing.T) {
	cache := NewViewCache()
	cache.Save(catalogclient.CatalogCars, carEntry())
	cache.Clear(catalogclient.CatalogCars)

	_, ok := cache.Load(catalogclient.CatalogCars)
	assert.False(t, ok)
}
