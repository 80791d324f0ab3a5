package domain

import "time"

// AdStatus — статус модерации объявления.
type AdStatus string

const (
	StatusPending  AdStatus = "pending"
	StatusApproved AdStatus = "approved"
	StatusRejected AdStatus = "rejected"
	StatusSold     AdStatus = "sold" // отмечено продавцом как проданное
)

// AdType — тип объявления: авто или госномер.
type AdType string

const (
	AdTypeCar   AdType = "car"
	AdTypePlate AdType = "plate"
)

// FuelType — тип топлива. Значения храним по-русски, как их видит
// пользователь: так они приходят из Mini App и так уходят в выдачу.
type FuelType string

const (
	FuelPetrol   FuelType = "бензин"
	FuelDiesel   FuelType = "дизель"
	FuelGas      FuelType = "газ"
	FuelElectric FuelType = "электро"
	FuelHybrid   FuelType = "гибрид"
)

// Transmission — коробка передач.
type Transmission string

const (
	TransmissionManual    Transmission = "механика"
	TransmissionAutomatic Transmission = "автомат"
	TransmissionRobot     Transmission = "робот"
	TransmissionVariator  Transmission = "вариатор"
)

// ValidFuelTypes и ValidTransmissions — допустимые значения для валидации
// и конвертации входных данных.
var (
	ValidFuelTypes = map[string]FuelType{
		string(FuelPetrol):   FuelPetrol,
		string(FuelDiesel):   FuelDiesel,
		string(FuelGas):      FuelGas,
		string(FuelElectric): FuelElectric,
		string(FuelHybrid):   FuelHybrid,
	}
	ValidTransmissions = map[string]Transmission{
		string(TransmissionManual):    TransmissionManual,
		string(TransmissionAutomatic): TransmissionAutomatic,
		string(TransmissionRobot):     TransmissionRobot,
		string(TransmissionVariator):  TransmissionVariator,
	}
)

// CarAd — объявление о продаже автомобиля.
type CarAd struct {
	ID     int64
	UserID int64

	Brand        string
	Model        string
	Year         int
	Mileage      int
	EngineVolume float64
	FuelType     FuelType
	Transmission Transmission
	Color        string
	Price        int
	Description  string
	HasGBO       bool // газобаллонное оборудование

	Region          string
	City            string
	ContactPhone    string
	ContactTelegram string

	Status          AdStatus
	RejectionReason string

	ViewCount int
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlateAd — объявление о продаже госномера.
type PlateAd struct {
	ID     int64
	UserID int64

	PlateNumber string
	Price       int
	Description string

	Region          string
	City            string
	ContactPhone    string
	ContactTelegram string

	Status          AdStatus
	RejectionReason string

	ViewCount        int
	ExpiresAt        *time.Time
	ChannelMessageID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AdPhoto — фото, прикреплённое к объявлению. Position задаёт порядок,
// фото с позицией 0 — обложка в списках.
type AdPhoto struct {
	ID       int64
	AdType   AdType
	AdID     int64
	FileID   string
	Position int
}

// CityCount — город и число активных объявлений в нём (оба типа вместе).
type CityCount struct {
	City  string
	Count int
}
