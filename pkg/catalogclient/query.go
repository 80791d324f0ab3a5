package catalogclient

import (
	"net/url"
	"strconv"
)

// CatalogType — тип каталога: авто или госномера.
// У каждого типа свой набор фильтров и своя форма превью.
type CatalogType string

const (
	CatalogCars   CatalogType = "car"
	CatalogPlates CatalogType = "plate"
)

// Sort — варианты сортировки выдачи. Значения совпадают с query-параметром
// `sort` серверного API. SortMileageAsc применим только к авто.
type Sort string

const (
	SortDateNew    Sort = "date_new" // новые первыми (по умолчанию)
	SortDateOld    Sort = "date_old"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortMileageAsc Sort = "mileage_asc"
)

// ListQuery — намерение пользователя для выборки каталога: поиск, фильтры,
// сортировка. Нулевое значение поля означает "без фильтра".
// Инвертированные диапазоны (min > max) не валидируются на клиенте —
// сервер в этом случае вернёт пустую выборку.
type ListQuery struct {
	Query string // свободный текстовый поиск (q)
	Brand string // только для авто
	Model string // только для авто
	City  string

	PriceMin int
	PriceMax int
	YearMin  int // только для авто
	YearMax  int // только для авто

	Sort Sort // пустое значение = date_new на сервере
}

// DefaultQuery — состояние фильтров при первом открытии каталога.
func DefaultQuery() ListQuery {
	return ListQuery{Sort: SortDateNew}
}

// values кодирует запрос в query-параметры API. Незаполненные поля
// опускаются целиком: сервер трактует отсутствие параметра как
// отсутствие фильтра. Поля, неприменимые к каталогу номеров,
// не передаются даже если заполнены.
func (q ListQuery) values(catalog CatalogType, offset, limit int) url.Values {
	v := url.Values{}
	v.Set("offset", strconv.Itoa(offset))
	v.Set("limit", strconv.Itoa(limit))

	if q.Query != "" {
		v.Set("q", q.Query)
	}
	if q.City != "" {
		v.Set("city", q.City)
	}
	if q.PriceMin > 0 {
		v.Set("price_min", strconv.Itoa(q.PriceMin))
	}
	if q.PriceMax > 0 {
		v.Set("price_max", strconv.Itoa(q.PriceMax))
	}
	if q.Sort != "" && q.Sort != SortDateNew {
		v.Set("sort", string(q.Sort))
	}

	if catalog == CatalogCars {
		if q.Brand != "" {
			v.Set("brand", q.Brand)
		}
		if q.Model != "" {
			v.Set("model", q.Model)
		}
		if q.YearMin > 0 {
			v.Set("year_min", strconv.Itoa(q.YearMin))
		}
		if q.YearMax > 0 {
			v.Set("year_max", strconv.Itoa(q.YearMax))
		}
	}

	return v
}
