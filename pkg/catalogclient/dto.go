package catalogclient

// AdPreview — сокращённое представление объявления в списке.
// Одна структура покрывает оба типа каталога: для авто заполнены
// Brand/Model/Year/Mileage/FuelType/Transmission, для номеров — PlateNumber.
type AdPreview struct {
	ID           int64  `json:"id"`
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	Mileage      int    `json:"mileage,omitempty"`
	FuelType     string `json:"fuel_type,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	PlateNumber  string `json:"plate_number,omitempty"`
	City         string `json:"city"`
	Price        int    `json:"price"`
	Photo        string `json:"photo,omitempty"`
	ViewCount    int    `json:"view_count"`
}

// ListPage — одна страница выдачи. Total — серверное число всех объявлений
// под текущий запрос, независимо от того, сколько уже загружено.
type ListPage struct {
	Items []AdPreview `json:"items"`
	Total int         `json:"total"`
}

// CarDetails — полное авто-объявление (страница деталей).
type CarDetails struct {
	ID              int64    `json:"id"`
	Brand           string   `json:"brand"`
	Model           string   `json:"model"`
	Year            int      `json:"year"`
	Price           int      `json:"price"`
	Mileage         int      `json:"mileage"`
	EngineVolume    float64  `json:"engine_volume"`
	FuelType        string   `json:"fuel_type"`
	Transmission    string   `json:"transmission"`
	Color           string   `json:"color"`
	HasGBO          bool     `json:"has_gbo"`
	Region          string   `json:"region,omitempty"`
	City            string   `json:"city"`
	Description     string   `json:"description"`
	ContactPhone    string   `json:"contact_phone"`
	ContactTelegram string   `json:"contact_telegram,omitempty"`
	AuthorUsername  string   `json:"author_username,omitempty"`
	AuthorName      string   `json:"author_name,omitempty"`
	AuthorSince     string   `json:"author_since,omitempty"`
	AuthorAdsCount  int      `json:"author_ads_count"`
	Photos          []string `json:"photos"`
	CreatedAt       string   `json:"created_at,omitempty"`
	ViewCount       int      `json:"view_count"`
}

// PlateDetails — полное объявление о продаже госномера.
type PlateDetails struct {
	ID              int64    `json:"id"`
	PlateNumber     string   `json:"plate_number"`
	Price           int      `json:"price"`
	Region          string   `json:"region,omitempty"`
	City            string   `json:"city"`
	Description     string   `json:"description"`
	ContactPhone    string   `json:"contact_phone"`
	ContactTelegram string   `json:"contact_telegram,omitempty"`
	AuthorUsername  string   `json:"author_username,omitempty"`
	AuthorName      string   `json:"author_name,omitempty"`
	AuthorSince     string   `json:"author_since,omitempty"`
	AuthorAdsCount  int      `json:"author_ads_count"`
	Photos          []string `json:"photos"`
	CreatedAt       string   `json:"created_at,omitempty"`
	ViewCount       int      `json:"view_count"`
}

// CityCount — город и количество активных объявлений в нём.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// BrandModels — марка и её модели из статического каталога.
type BrandModels struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}
