package domain

// CarAdInput — данные формы подачи авто-объявления из Mini App.
// Строки приходят уже обрезанными (нормализация — на стороне REST DTO).
type CarAdInput struct {
	Brand        string
	Model        string
	Year         int
	Mileage      int
	EngineVolume float64
	FuelType     string
	Transmission string
	Color        string
	Price        int
	Description  string
	HasGBO       bool

	Region          string
	City            string
	ContactPhone    string
	ContactTelegram string
}

// PlateAdInput — данные формы подачи номер-объявления.
type PlateAdInput struct {
	PlateNumber string
	Price       int
	Description string

	Region          string
	City            string
	ContactPhone    string
	ContactTelegram string
}

// SubmitRequest — запрос на создание объявления. Заполнено ровно одно
// из полей Car / Plate в соответствии с Type.
type SubmitRequest struct {
	Type       AdType
	TelegramID int64
	Username   string
	FullName   string

	Car   *CarAdInput
	Plate *PlateAdInput

	// PhotoIDs — фото, загруженные заранее через /api/photos/upload.
	// Если список непустой, объявление публикуется сразу (авто-одобрение).
	PhotoIDs []string

	// Force — подать несмотря на найденный дубликат.
	Force bool
}

// SubmitResult — итог подачи: id созданного объявления и признак
// немедленной публикации (были валидные фото).
type SubmitResult struct {
	AdID      int64
	Published bool
}
