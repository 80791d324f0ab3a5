// Package catalogsession управляет состоянием просмотра каталога:
// фильтры/поиск/сортировка, накопление страниц пагинации, кэш
// "вернуться назад" между экранами и дебаунс текстового поиска.
//
// Сетевые вызовы делегируются Fetcher (обычно catalogclient.Client);
// сам пакет ничего не знает о транспорте и рендеринге.
package catalogsession

import (
	"context"
	"sync"

	"github.com/G3ndalf/auto-sales-bot-sub000/pkg/catalogclient"
)

// DefaultPageSize — размер страницы выдачи, согласован с серверным
// дефолтом (limit=20, cap 50).
const DefaultPageSize = 20

// Fetcher — то, что сессия умеет спрашивать у каталога.
// Реализуется catalogclient.Client; в тестах подменяется стабом.
type Fetcher interface {
	List(ctx context.Context, catalog catalogclient.CatalogType, q catalogclient.ListQuery, offset, limit int) (*catalogclient.ListPage, error)
}

// Filters — пакет правок из панели фильтров. Указатели, чтобы отличать
// "не трогать поле" (nil) от "сбросить в ноль".
type Filters struct {
	City     *string
	PriceMin *int
	PriceMax *int
	YearMin  *int // только для авто
	YearMax  *int // только для авто
}

// Session — состояние одного экрана каталога: текущий ListQuery плюс
// аккумулятор загруженных превью. Потокобезопасна: колбэк дебаунса
// срабатывает не в горутине вызывающего.
type Session struct {
	catalog  catalogclient.CatalogType
	fetcher  Fetcher
	cache    *ViewCache // может быть nil (встроенное/эфемерное использование)
	pageSize int
	deb      *Debouncer

	mu    sync.Mutex
	query catalogclient.ListQuery

	items  []catalogclient.AdPreview
	total  int
	offset int

	// Ошибка последнего запроса: аккумулятор остаётся в последнем
	// корректном состоянии, UI показывает кнопку "повторить".
	failed      bool
	retryOffset int

	// Номер поколения запросов: каждый сброс выдачи (смена фильтра,
	// поиск, refresh) увеличивает его. Ответ, чьё поколение устарело,
	// выбрасывается — поздний ответ на старый запрос не затирает
	// данные нового.
	generation uint64

	restoredScroll int
}

type SessionOption func(*Session)

// WithPageSize меняет размер страницы (по умолчанию DefaultPageSize).
func WithPageSize(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithCache подключает кэш межэкранной навигации. Без него сессия
// эфемерна: Leave ничего не сохраняет, Mount всегда грузит с нуля.
func WithCache(c *ViewCache) SessionOption {
	return func(s *Session) { s.cache = c }
}

// WithDebouncer подменяет дебаунсер поиска (в тестах — с коротким окном).
func WithDebouncer(d *Debouncer) SessionOption {
	return func(s *Session) { s.deb = d }
}

// NewSession создаёт сессию каталога с дефолтными фильтрами.
func NewSession(catalog catalogclient.CatalogType, fetcher Fetcher, opts ...SessionOption) *Session {
	s := &Session{
		catalog:  catalog,
		fetcher:  fetcher,
		pageSize: DefaultPageSize,
		query:    catalogclient.DefaultQuery(),
		items:    []catalogclient.AdPreview{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deb == nil {
		s.deb = NewDebouncer(DefaultDebounce)
	}
	return s
}

// Mount вызывается при входе на экран каталога. Если в кэше есть слепок
// предыдущего визита — восстанавливает его без сетевого вызова и
// возвращает restored=true; иначе выполняет свежую загрузку с нуля.
func (s *Session) Mount(ctx context.Context) (restored bool, err error) {
	if s.cache != nil {
		if entry, ok := s.cache.Load(s.catalog); ok {
			s.mu.Lock()
			s.query = entry.Query
			s.items = entry.Items
			s.total = entry.Total
			s.offset = entry.Offset
			s.restoredScroll = entry.Scroll
			s.failed = false
			s.mu.Unlock()
			return true, nil
		}
	}
	return false, s.fetchFromZero(ctx)
}

// Leave вызывается при уходе с экрана: слепок состояния целиком
// перезаписывает слот кэша для этого типа каталога.
func (s *Session) Leave(scroll int) {
	if s.cache == nil {
		return
	}
	s.mu.Lock()
	entry := CacheEntry{
		Query:  s.query,
		Items:  s.items,
		Total:  s.total,
		Offset: s.offset,
		Scroll: scroll,
	}
	s.mu.Unlock()
	s.cache.Save(s.catalog, entry)
}

// Refresh — pull-to-refresh: инвалидирует кэш и грузит свежую выдачу
// с нулевого смещения.
func (s *Session) Refresh(ctx context.Context) error {
	if s.cache != nil {
		s.cache.Clear(s.catalog)
	}
	return s.fetchFromZero(ctx)
}

// SetQueryText обновляет текст поиска немедленно (для отображения),
// но сам запрос уходит только после паузы в наборе — через дебаунсер.
// Колбэк дебаунса выполняется в отдельной горутине таймера.
func (s *Session) SetQueryText(ctx context.Context, text string) {
	s.mu.Lock()
	s.query.Query = text
	s.mu.Unlock()

	s.deb.Trigger(func() {
		_ = s.fetchFromZero(ctx)
	})
}

// ClearSearch — явная очистка поиска: отменяет ожидающий таймер
// дебаунса и немедленно, без задержки, перезагружает выдачу с пустым
// текстом.
func (s *Session) ClearSearch(ctx context.Context) error {
	s.deb.Cancel()
	s.mu.Lock()
	s.query.Query = ""
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// SetSort меняет сортировку и сразу перезагружает выдачу.
func (s *Session) SetSort(ctx context.Context, sort catalogclient.Sort) error {
	s.mu.Lock()
	s.query.Sort = sort
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// SetCity меняет фильтр города и сразу перезагружает выдачу.
func (s *Session) SetCity(ctx context.Context, city string) error {
	s.mu.Lock()
	s.query.City = city
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// SetBrand меняет фильтр марки (и сбрасывает модель). Для каталога
// номеров — no-op: у номеров нет марок.
func (s *Session) SetBrand(ctx context.Context, brand string) error {
	if s.catalog != catalogclient.CatalogCars {
		return nil
	}
	s.mu.Lock()
	s.query.Brand = brand
	s.query.Model = ""
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// SetModel меняет фильтр модели. Для каталога номеров — no-op.
func (s *Session) SetModel(ctx context.Context, model string) error {
	if s.catalog != catalogclient.CatalogCars {
		return nil
	}
	s.mu.Lock()
	s.query.Model = model
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// ApplyFilters применяет пакет правок из панели фильтров одним махом:
// несколько полей меняются вместе, выдача перезагружается один раз
// (кнопка "Применить", в отличие от мгновенных сеттеров выше).
func (s *Session) ApplyFilters(ctx context.Context, f Filters) error {
	s.mu.Lock()
	if f.City != nil {
		s.query.City = *f.City
	}
	if f.PriceMin != nil {
		s.query.PriceMin = *f.PriceMin
	}
	if f.PriceMax != nil {
		s.query.PriceMax = *f.PriceMax
	}
	if s.catalog == catalogclient.CatalogCars {
		if f.YearMin != nil {
			s.query.YearMin = *f.YearMin
		}
		if f.YearMax != nil {
			s.query.YearMax = *f.YearMax
		}
	}
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// ResetAll сбрасывает все поля к дефолтам (пустой поиск и фильтры,
// сортировка date_new) и перезагружает выдачу.
func (s *Session) ResetAll(ctx context.Context) error {
	s.deb.Cancel()
	s.mu.Lock()
	s.query = catalogclient.DefaultQuery()
	s.mu.Unlock()
	return s.fetchFromZero(ctx)
}

// LoadMore догружает следующую страницу и дописывает её в конец
// аккумулятора. Смещение — текущее количество загруженных превью.
func (s *Session) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if s.total > 0 && len(s.items) >= s.total {
		s.mu.Unlock()
		return nil // догружать нечего
	}
	gen := s.generation
	q := s.query
	offset := len(s.items)
	s.mu.Unlock()

	return s.fetch(ctx, gen, q, offset)
}

// Retry повторяет последний неудавшийся запрос: тот же ListQuery,
// то же смещение. Если ошибки не было — no-op.
func (s *Session) Retry(ctx context.Context) error {
	s.mu.Lock()
	if !s.failed {
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	q := s.query
	offset := s.retryOffset
	s.mu.Unlock()

	return s.fetch(ctx, gen, q, offset)
}

// fetchFromZero сбрасывает выдачу и грузит первую страницу текущего
// запроса. Поколение увеличивается: ответы на все ранее отправленные
// запросы с этого момента устарели.
func (s *Session) fetchFromZero(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	q := s.query
	s.mu.Unlock()

	return s.fetch(ctx, gen, q, 0)
}

// fetch выполняет один сетевой вызов без удержания мьютекса и
// применяет результат, только если поколение всё ещё актуально.
func (s *Session) fetch(ctx context.Context, gen uint64, q catalogclient.ListQuery, offset int) error {
	page, err := s.fetcher.List(ctx, s.catalog, q, offset, s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		// Пока запрос летал, пользователь успел поменять фильтры —
		// этот ответ больше никому не нужен.
		return nil
	}

	if err != nil {
		// Аккумулятор не трогаем: последнее корректное состояние
		// остаётся на экране, UI рисует "повторить".
		s.failed = true
		s.retryOffset = offset
		return err
	}

	s.failed = false
	if offset == 0 {
		s.items = page.Items
	} else {
		s.items = append(s.items, page.Items...)
	}
	s.total = page.Total
	s.offset = len(s.items)
	return nil
}

// Items возвращает накопленные превью (слайс не копируется —
// вызывающий не должен его мутировать).
func (s *Session) Items() []catalogclient.AdPreview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Total — серверное число объявлений под текущий запрос.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// HasMore сообщает, остались ли незагруженные объявления.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) < s.total
}

// Failed сообщает, упал ли последний запрос.
func (s *Session) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}

// Query возвращает текущее намерение пользователя.
func (s *Session) Query() catalogclient.ListQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// RestoredScroll — позиция прокрутки из кэша после Mount с restored=true.
// Восстановление позиции — best-effort и остаётся на совести UI-слоя.
func (s *Session) RestoredScroll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restoredScroll
}
