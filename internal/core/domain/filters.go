package domain

// SortOption — ключ сортировки каталога, как его присылает Mini App.
type SortOption string

const (
	SortPriceAsc   SortOption = "price_asc"
	SortPriceDesc  SortOption = "price_desc"
	SortDateNew    SortOption = "date_new"
	SortDateOld    SortOption = "date_old"
	SortMileageAsc SortOption = "mileage_asc" // только для авто
)

// CarAdFilter — фильтры каталога авто. Нулевые значения означают
// «фильтр не задан»: пустая строка / ноль не попадают в запрос.
type CarAdFilter struct {
	Brand    string
	Model    string
	City     string
	Query    string // поиск по марке, модели и описанию (ILIKE, OR)
	PriceMin int
	PriceMax int
	YearMin  int
	YearMax  int
	Sort     SortOption
	Offset   int
	Limit    int
}

// PlateAdFilter — фильтры каталога номеров. Поиск идёт по номеру и описанию.
type PlateAdFilter struct {
	City     string
	Query    string
	PriceMin int
	PriceMax int
	Sort     SortOption
	Offset   int
	Limit    int
}

// CarAdPreview — карточка авто в выдаче списка. Photo — file_id обложки
// (первое фото по позиции), пустая строка если фото нет.
type CarAdPreview struct {
	ID           int64
	Brand        string
	Model        string
	Year         int
	Price        int
	City         string
	Mileage      int
	FuelType     FuelType
	Transmission Transmission
	Photo        string
	ViewCount    int
}

// PlateAdPreview — карточка номера в выдаче списка.
type PlateAdPreview struct {
	ID          int64
	PlateNumber string
	Price       int
	City        string
	Photo       string
	ViewCount   int
}

// PaginatedCarAds — страница выдачи авто плюс общее число совпадений.
type PaginatedCarAds struct {
	Items []CarAdPreview
	Total int
}

// PaginatedPlateAds — страница выдачи номеров плюс общее число совпадений.
type PaginatedPlateAds struct {
	Items []PlateAdPreview
	Total int
}

// AuthorInfo — сведения об авторе для детальной карточки объявления.
type AuthorInfo struct {
	Username string
	Name     string
	Since    string // дата регистрации, формат ДД.ММ.ГГГГ
	AdsCount int    // активные объявления автора (оба типа)
}

// CarAdDetails — детальная карточка авто со всеми фото и автором.
type CarAdDetails struct {
	Ad     CarAd
	Photos []string
	Author AuthorInfo
}

// PlateAdDetails — детальная карточка номера.
type PlateAdDetails struct {
	Ad     PlateAd
	Photos []string
	Author AuthorInfo
}

// OwnedAdSummary — строка в «Моих объявлениях»: любой статус, с обложкой.
type OwnedAdSummary struct {
	ID        int64
	Title     string
	Status    AdStatus
	Price     int
	City      string
	Photo     string
	CreatedAt string // ISO 8601
}

// PendingAdCard — карточка объявления в очереди модерации.
type PendingAdCard struct {
	AdType          AdType
	ID              int64
	Title           string
	Price           int
	City            string
	Description     string
	ContactPhone    string
	ContactTelegram string
	Photo           string
	CreatedAt       string

	// Поля только для авто
	Brand        string
	Model        string
	Year         int
	Mileage      int
	EngineVolume float64
	FuelType     string
	Transmission string
	Color        string

	// Поле только для номеров
	PlateNumber string
}
