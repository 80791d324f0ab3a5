package rest

// CarAdCardResponse - карточка авто в списке каталога.
type CarAdCardResponse struct {
	ID           int64  `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Price        int    `json:"price"`
	City         string `json:"city"`
	Mileage      int    `json:"mileage"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
	Photo        string `json:"photo,omitempty"`
	ViewCount    int    `json:"view_count"`
}

// PlateAdCardResponse - карточка номера в списке каталога.
type PlateAdCardResponse struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plate_number"`
	Price       int    `json:"price"`
	City        string `json:"city"`
	Photo       string `json:"photo,omitempty"`
	ViewCount   int    `json:"view_count"`
}

// PaginatedCarAdsResponse - страница каталога авто.
type PaginatedCarAdsResponse struct {
	Items []CarAdCardResponse `json:"items"`
	Total int                 `json:"total"`
}

// PaginatedPlateAdsResponse - страница каталога номеров.
type PaginatedPlateAdsResponse struct {
	Items []PlateAdCardResponse `json:"items"`
	Total int                   `json:"total"`
}

// AuthorResponse - блок об авторе в детальной карточке.
type AuthorResponse struct {
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Since    string `json:"since,omitempty"`
	AdsCount int    `json:"ads_count"`
}

// CarAdDetailResponse - детальная карточка авто.
type CarAdDetailResponse struct {
	ID              int64          `json:"id"`
	Brand           string         `json:"brand"`
	Model           string         `json:"model"`
	Year            int            `json:"year"`
	Mileage         int            `json:"mileage"`
	EngineVolume    float64        `json:"engine_volume"`
	FuelType        string         `json:"fuel_type"`
	Transmission    string         `json:"transmission"`
	Color           string         `json:"color,omitempty"`
	Price           int            `json:"price"`
	Description     string         `json:"description"`
	HasGBO          bool           `json:"has_gbo"`
	Region          string         `json:"region,omitempty"`
	City            string         `json:"city"`
	ContactPhone    string         `json:"contact_phone"`
	ContactTelegram string         `json:"contact_telegram,omitempty"`
	ViewCount       int            `json:"view_count"`
	CreatedAt       string         `json:"created_at"`
	Photos          []string       `json:"photos"`
	Author          AuthorResponse `json:"author"`
}

// PlateAdDetailResponse - детальная карточка номера.
type PlateAdDetailResponse struct {
	ID              int64          `json:"id"`
	PlateNumber     string         `json:"plate_number"`
	Price           int            `json:"price"`
	Description     string         `json:"description"`
	Region          string         `json:"region,omitempty"`
	City            string         `json:"city"`
	ContactPhone    string         `json:"contact_phone"`
	ContactTelegram string         `json:"contact_telegram,omitempty"`
	ViewCount       int            `json:"view_count"`
	CreatedAt       string         `json:"created_at"`
	Photos          []string       `json:"photos"`
	Author          AuthorResponse `json:"author"`
}

// BrandModelsResponse - марка со списком моделей из статического справочника.
type BrandModelsResponse struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

// CityResponse - город с числом активных объявлений.
type CityResponse struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// SubmitAdRequest - тело запроса подачи объявления. Поля авто и номера
// лежат вперемешку, какие читать - решает поле Type.
type SubmitAdRequest struct {
	Type       string `json:"type"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`

	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Mileage      int     `json:"mileage"`
	EngineVolume float64 `json:"engine_volume"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Color        string  `json:"color"`
	HasGBO       bool    `json:"has_gbo"`

	PlateNumber string `json:"plate_number"`

	Price           int    `json:"price"`
	Description     string `json:"description"`
	Region          string `json:"region"`
	City            string `json:"city"`
	ContactPhone    string `json:"contact_phone"`
	ContactTelegram string `json:"contact_telegram"`

	PhotoIDs []string `json:"photo_ids"`
	Force    bool     `json:"force"`
}

// SubmitAdResponse - итог подачи.
type SubmitAdResponse struct {
	AdID      int64  `json:"ad_id"`
	Published bool   `json:"published"`
	Status    string `json:"status"`
}

// UploadPhotoResponse - идентификатор загруженного фото.
type UploadPhotoResponse struct {
	PhotoID string `json:"photo_id"`
}

// ProfileResponse - профиль со статистикой объявлений.
type ProfileResponse struct {
	Name        string              `json:"name"`
	Username    string              `json:"username,omitempty"`
	MemberSince string              `json:"member_since,omitempty"`
	Cars        AdStatusCountsDTO   `json:"cars"`
	Plates      AdStatusCountsDTO   `json:"plates"`
}

// AdStatusCountsDTO - разбивка объявлений по статусам.
type AdStatusCountsDTO struct {
	Active   int `json:"active"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// UpdateProfileRequest - смена отображаемого имени.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// OwnedAdResponse - строка в "Моих объявлениях".
type OwnedAdResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Price     int    `json:"price"`
	City      string `json:"city"`
	Photo     string `json:"photo,omitempty"`
	CreatedAt string `json:"created_at"`
}

// UserAdsResponse - объявления пользователя обоих типов.
type UserAdsResponse struct {
	Cars   []OwnedAdResponse `json:"cars"`
	Plates []OwnedAdResponse `json:"plates"`
}

// FavoriteRequest - тело запроса добавления в избранное.
type FavoriteRequest struct {
	AdType string `json:"ad_type"`
	AdID   int64  `json:"ad_id"`
}

// FavoriteItemResponse - карточка в списке избранного.
type FavoriteItemResponse struct {
	AdType    string `json:"ad_type"`
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
	City      string `json:"city"`
	Photo     string `json:"photo,omitempty"`
	ViewCount int    `json:"view_count"`
}

// PendingAdResponse - карточка в очереди модерации.
type PendingAdResponse struct {
	AdType          string `json:"ad_type"`
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Price           int    `json:"price"`
	City            string `json:"city"`
	Description     string `json:"description"`
	ContactPhone    string `json:"contact_phone"`
	ContactTelegram string `json:"contact_telegram,omitempty"`
	Photo           string `json:"photo,omitempty"`
	CreatedAt       string `json:"created_at"`

	Brand        string  `json:"brand,omitempty"`
	Model        string  `json:"model,omitempty"`
	Year         int     `json:"year,omitempty"`
	Mileage      int     `json:"mileage,omitempty"`
	EngineVolume float64 `json:"engine_volume,omitempty"`
	FuelType     string  `json:"fuel_type,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Color        string  `json:"color,omitempty"`

	PlateNumber string `json:"plate_number,omitempty"`
}

// ModerationStatsResponse - сводка для админ-панели.
type ModerationStatsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// RejectAdRequest - причина отклонения.
type RejectAdRequest struct {
	Reason string `json:"reason"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
