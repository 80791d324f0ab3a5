package catalogsession

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogclient"
)

// listCall — один зафиксированный вызов List у стаба.
type listCall struct {
	query  catalogclient.ListQuery
	offset int
	limit  int
}

// stubFetcher отдаёт страницы по запросу вызывающего теста и
// записывает каждый вызов.
type stubFetcher struct {
	mu    sync.Mutex
	calls []listCall

	// respond строит ответ на вызов; nil ответ с ошибкой = сбой сети.
	respond func(q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error)
}

func (f *stubFetcher) List(ctx context.Context, catalog catalogclient.CatalogType, q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, listCall{query: q, offset: offset, limit: limit})
	f.mu.Unlock()
	return f.respond(q, offset, limit)
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *stubFetcher) lastCall() listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

// makeItems генерирует превью с последовательными ID начиная с from.
func makeItems(from, n int) []catalogclient.AdPreview {
	items := make([]catalogclient.AdPreview, n)
	for i := range items {
		items[i] = catalogclient.AdPreview{
			ID:    int64(from + i),
			Brand: "Toyota",
			Model: fmt.Sprintf("Model-%d", from+i),
			City:  "Минск",
			Price: 10000 + from + i,
		}
	}
	return items
}

// pagedFetcher отдаёт окно из общего набора total элементов.
func pagedFetcher(total int) *stubFetcher {
	return &stubFetcher{
		respond: func(q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error) {
			n := total - offset
			if n < 0 {
				n = 0
			}
			if n > limit {
				n = limit
			}
			return &catalogclient.ListPage{Items: makeItems(offset, n), Total: total}, nil
		},
	}
}

func TestMountLoadsFirstPage(t *testing.T) {
	f := pagedFetcher(45)
	s := NewSession(catalogclient.CatalogCars, f)

	restored, err := s.Mount(context.Background())
	require.NoError(t, err)
	assert.False(t, restored)

	assert.Len(t, s.Items(), 20)
	assert.Equal(t, 45, s.Total())
	assert.True(t, s.HasMore())
	assert.Equal(t, makeItems(0, 20), s.Items())
}

// Сценарий: 45 объявлений, три страницы 20+20+5, порядок сохраняется.
func TestLoadMoreAccumulatesPages(t *testing.T) {
	f := pagedFetcher(45)
	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)

	require.NoError(t, s.LoadMore(ctx))
	assert.Len(t, s.Items(), 40)
	assert.True(t, s.HasMore())
	assert.Equal(t, 20, f.lastCall().offset)

	require.NoError(t, s.LoadMore(ctx))
	assert.Len(t, s.Items(), 45)
	assert.False(t, s.HasMore())
	assert.Equal(t, 40, f.lastCall().offset)

	// Всё накоплено по порядку, без дублей и пропусков.
	assert.Equal(t, makeItems(0, 45), s.Items())

	// Догружать больше нечего — сетевой вызов не делается.
	calls := f.callCount()
	require.NoError(t, s.LoadMore(ctx))
	assert.Equal(t, calls, f.callCount())
}

func TestFilterChangeResetsAccumulator(t *testing.T) {
	f := pagedFetcher(45)
	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	require.NoError(t, s.LoadMore(ctx))
	require.Len(t, s.Items(), 40)

	require.NoError(t, s.SetCity(ctx, "Гомель"))
	assert.Len(t, s.Items(), 20) // выдача начата заново
	last := f.lastCall()
	assert.Equal(t, 0, last.offset)
	assert.Equal(t, "Гомель", last.query.City)
}

func TestApplyFiltersBatchesOneFetch(t *testing.T) {
	f := pagedFetcher(10)
	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	before := f.callCount()

	priceMin, priceMax := 5000, 20000
	yearMin := 2015
	require.NoError(t, s.ApplyFilters(ctx, Filters{
		PriceMin: &priceMin,
		PriceMax: &priceMax,
		YearMin:  &yearMin,
	}))

	// Три правки — один запрос.
	assert.Equal(t, before+1, f.callCount())
	q := f.lastCall().query
	assert.Equal(t, 5000, q.PriceMin)
	assert.Equal(t, 20000, q.PriceMax)
	assert.Equal(t, 2015, q.YearMin)
}

func TestBrandSetterIsNoopForPlates(t *testing.T) {
	f := pagedFetcher(10)
	s := NewSession(catalogclient.CatalogPlates, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	before := f.callCount()

	require.NoError(t, s.SetBrand(ctx, "BMW"))
	assert.Equal(t, before, f.callCount())
	assert.Empty(t, s.Query().Brand)
}

func TestResetAllRestoresDefaults(t *testing.T) {
	f := pagedFetcher(10)
	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	require.NoError(t, s.SetCity(ctx, "Брест"))
	require.NoError(t, s.SetSort(ctx, catalogclient.SortPriceAsc))

	require.NoError(t, s.ResetAll(ctx))
	assert.Equal(t, catalogclient.DefaultQuery(), s.Query())
	assert.Equal(t, 0, f.lastCall().offset)
}

// Сбой сети не портит аккумулятор: последнее корректное состояние
// остаётся, Retry повторяет тот же запрос с тем же смещением.
func TestFetchFailureKeepsStateAndRetries(t *testing.T) {
	failing := false
	f := &stubFetcher{}
	f.respond = func(q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error) {
		if failing {
			return nil, catalogclient.ErrFetchFailed
		}
		n := 45 - offset
		if n > limit {
			n = limit
		}
		return &catalogclient.ListPage{Items: makeItems(offset, n), Total: 45}, nil
	}

	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	wantItems := s.Items()
	wantTotal := s.Total()

	failing = true
	err = s.LoadMore(ctx)
	require.Error(t, err)
	assert.True(t, s.Failed())
	assert.Equal(t, wantItems, s.Items())
	assert.Equal(t, wantTotal, s.Total())

	failing = false
	require.NoError(t, s.Retry(ctx))
	assert.False(t, s.Failed())
	assert.Equal(t, 20, f.lastCall().offset) // тот же offset, что и у сбоя
	assert.Len(t, s.Items(), 40)
}

func TestRetryWithoutFailureIsNoop(t *testing.T) {
	f := pagedFetcher(5)
	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	calls := f.callCount()
	require.NoError(t, s.Retry(ctx))
	assert.Equal(t, calls, f.callCount())
}

// Шквал нажатий сводится в один запрос с текстом на момент последнего
// нажатия.
func TestSearchDebounceCoalesces(t *testing.T) {
	f := pagedFetcher(3)
	s := NewSession(catalogclient.CatalogCars, f,
		WithDebouncer(NewDebouncer(100*time.Millisecond)))
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	before := f.callCount()

	for _, text := range []string{"BMW", "BMW X", "BMW X5"} {
		s.SetQueryText(ctx, text)
		time.Sleep(25 * time.Millisecond) // каждое нажатие до истечения паузы
	}

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, before+1, f.callCount())
	last := f.lastCall()
	assert.Equal(t, "BMW X5", last.query.Query)
	assert.Equal(t, 0, last.offset)
}

// Очистка поиска обходит дебаунс: ожидающий таймер отменяется, запрос
// с пустым текстом уходит сразу.
func TestClearSearchBypassesDebounce(t *testing.T) {
	f := pagedFetcher(3)
	s := NewSession(catalogclient.CatalogCars, f,
		WithDebouncer(NewDebouncer(100*time.Millisecond)))
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)
	before := f.callCount()

	s.SetQueryText(ctx, "BMW")
	require.NoError(t, s.ClearSearch(ctx))

	assert.Equal(t, before+1, f.callCount())
	assert.Empty(t, f.lastCall().query.Query)

	// Отменённый таймер не должен выстрелить позже.
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, before+1, f.callCount())
}

// Поздний ответ на устаревший запрос выбрасывается: смена фильтра
// увеличивает поколение, и долетевший ответ старого поколения не
// затирает свежую выдачу.
func TestStaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	f := &stubFetcher{}
	f.respond = func(q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error) {
		if offset > 0 {
			<-release // зависший load-more старого поколения
			return &catalogclient.ListPage{Items: makeItems(offset, 20), Total: 45}, nil
		}
		if q.City == "Гомель" {
			return &catalogclient.ListPage{Items: makeItems(100, 5), Total: 5}, nil
		}
		return &catalogclient.ListPage{Items: makeItems(0, 20), Total: 45}, nil
	}

	s := NewSession(catalogclient.CatalogCars, f)
	ctx := context.Background()

	_, err := s.Mount(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.LoadMore(ctx) }()

	// Дать load-more дойти до стаба, затем сменить фильтр.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.SetCity(ctx, "Гомель"))
	require.Len(t, s.Items(), 5)

	close(release)
	require.NoError(t, <-done)

	// Ответ старого поколения не применился.
	assert.Equal(t, makeItems(100, 5), s.Items())
	assert.Equal(t, 5, s.Total())
}

// Возврат на экран каталога восстанавливает выдачу и прокрутку из кэша
// без единого сетевого вызова.
func TestLeaveAndMountRestoresFromCache(t *testing.T) {
	cache := NewViewCache()
	f := pagedFetcher(45)
	ctx := context.Background()

	s1 := NewSession(catalogclient.CatalogCars, f, WithCache(cache))
	_, err := s1.Mount(ctx)
	require.NoError(t, err)
	require.NoError(t, s1.LoadMore(ctx))
	require.Len(t, s1.Items(), 40)
	s1.Leave(1200)

	calls := f.callCount()
	s2 := NewSession(catalogclient.CatalogCars, f, WithCache(cache))
	restored, err := s2.Mount(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, calls, f.callCount()) // сети не было
	assert.Equal(t, s1.Items(), s2.Items())
	assert.Equal(t, 45, s2.Total())
	assert.Equal(t, 1200, s2.RestoredScroll())
	assert.True(t, s2.HasMore())
}

// Pull-to-refresh инвалидирует кэш и грузит свежую выдачу с нуля.
func TestRefreshClearsCacheAndRefetches(t *testing.T) {
	cache := NewViewCache()
	f := pagedFetcher(45)
	ctx := context.Background()

	s1 := NewSession(catalogclient.CatalogCars, f, WithCache(cache))
	_, err := s1.Mount(ctx)
	require.NoError(t, err)
	s1.Leave(500)

	require.NoError(t, s1.Refresh(ctx))
	assert.Equal(t, 0, f.lastCall().offset)

	// Слот очищен: следующий Mount не восстанавливается из кэша.
	s2 := NewSession(catalogclient.CatalogCars, f, WithCache(cache))
	restored, err := s2.Mount(ctx)
	require.NoError(t, err)
	assert.False(t, restored)
}
