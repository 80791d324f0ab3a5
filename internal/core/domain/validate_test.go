package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCarInput() CarAdInput {
	return CarAdInput{
		Brand:        "BMW",
		Model:        "X5",
		Year:         2018,
		Mileage:      120000,
		EngineVolume: 3.0,
		FuelType:     "дизель",
		Transmission: "автомат",
		Color:        "чёрный",
		Price:        25000,
		Description:  "Отличное состояние",
		City:         "Минск",
		ContactPhone: "+375291234567",
	}
}

func validPlateInput() PlateAdInput {
	return PlateAdInput{
		PlateNumber:  "А777АА 77",
		Price:        5000,
		Description:  "Красивый номер",
		City:         "Минск",
		ContactPhone: "80291234567",
	}
}

func TestValidateCarAdAcceptsValidInput(t *testing.T) {
	assert.Empty(t, ValidateCarAd(validCarInput()))
}

func TestValidateCarAdRejectsMissingRequiredFields(t *testing.T) {
	in := validCarInput()
	in.Brand = "  "
	in.Model = ""
	in.Price = 0
	in.ContactPhone = ""

	errs := ValidateCarAd(in)
	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "Укажите марку автомобиля")
	assert.Contains(t, errs, "Укажите модель автомобиля")
	assert.Contains(t, errs, "Укажите цену")
	assert.Contains(t, errs, "Укажите контактный телефон")
}

func TestValidateCarAdYearBounds(t *testing.T) {
	in := validCarInput()

	in.Year = MinCarYear - 1
	assert.NotEmpty(t, ValidateCarAd(in))

	in.Year = MinCarYear
	assert.Empty(t, ValidateCarAd(in))

	// Следующий модельный год ещё допустим, через один — уже нет.
	in.Year = time.Now().Year() + 1
	assert.Empty(t, ValidateCarAd(in))

	in.Year = time.Now().Year() + 2
	assert.NotEmpty(t, ValidateCarAd(in))
}

func TestValidateCarAdRejectsUnknownEnums(t *testing.T) {
	in := validCarInput()
	in.FuelType = "уголь"
	in.Transmission = "ручка"

	errs := ValidateCarAd(in)
	assert.Contains(t, errs, "Некорректный тип топлива")
	assert.Contains(t, errs, "Некорректная коробка передач")
}

func TestValidateCarAdEmptyEnumsAreAllowed(t *testing.T) {
	in := validCarInput()
	in.FuelType = ""
	in.Transmission = ""
	assert.Empty(t, ValidateCarAd(in))
}

func TestValidateCarAdNumericRanges(t *testing.T) {
	in := validCarInput()
	in.Mileage = MaxMileage + 1
	assert.Contains(t, ValidateCarAd(in), "Некорректный пробег")

	in = validCarInput()
	in.EngineVolume = MaxEngineVolume + 0.1
	assert.Contains(t, ValidateCarAd(in), "Некорректный объём двигателя")

	in = validCarInput()
	in.Price = MaxAdPrice + 1
	assert.Contains(t, ValidateCarAd(in), "Слишком большая цена")
}

func TestValidatePlateAdAcceptsValidInput(t *testing.T) {
	assert.Empty(t, ValidatePlateAd(validPlateInput()))
}

func TestValidatePlateAdRejectsMissingNumber(t *testing.T) {
	in := validPlateInput()
	in.PlateNumber = "   "
	assert.Contains(t, ValidatePlateAd(in), "Укажите номер")
}

func TestValidatePlateAdNumberLength(t *testing.T) {
	in := validPlateInput()
	// Кириллица: длина считается в рунах, не в байтах.
	in.PlateNumber = strings.Repeat("А", MaxPlateNumberLength)
	assert.Empty(t, ValidatePlateAd(in))

	in.PlateNumber = strings.Repeat("А", MaxPlateNumberLength+1)
	assert.NotEmpty(t, ValidatePlateAd(in))
}

func TestValidateCommonPhoneFormats(t *testing.T) {
	in := validPlateInput()

	for _, phone := range []string{"+375291234567", "80291234567", "+7 929 123 45 67"} {
		in.ContactPhone = phone
		assert.Empty(t, ValidatePlateAd(in), "phone %q should be valid", phone)
	}

	for _, phone := range []string{"12345", "abc", "+375-29-123"} {
		in.ContactPhone = phone
		assert.Contains(t, ValidatePlateAd(in), "Некорректный номер телефона", "phone %q", phone)
	}
}

func TestValidateCommonTelegramHandle(t *testing.T) {
	in := validPlateInput()

	in.ContactTelegram = "@good_handle"
	assert.Empty(t, ValidatePlateAd(in))

	in.ContactTelegram = "good_handle"
	assert.Empty(t, ValidatePlateAd(in)) // @ опционален

	in.ContactTelegram = "ab"
	assert.Contains(t, ValidatePlateAd(in), "Некорректный ник в Telegram")
}

func TestValidateCommonDescriptionLength(t *testing.T) {
	in := validPlateInput()
	in.Description = strings.Repeat("о", MaxDescriptionLength)
	assert.Empty(t, ValidatePlateAd(in))

	in.Description = strings.Repeat("о", MaxDescriptionLength+1)
	assert.NotEmpty(t, ValidatePlateAd(in))
}

func TestNormalizeCity(t *testing.T) {
	assert.Equal(t, "Нальчик", NormalizeCity("нальчик"))
	assert.Equal(t, "Нальчик", NormalizeCity("  НАЛЬЧИК  "))
	assert.Equal(t, "Другой", NormalizeCity(""))
	assert.Equal(t, "Другой", NormalizeCity("   "))
}
