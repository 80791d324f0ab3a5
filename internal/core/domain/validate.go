package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Лимиты полей объявления. Совпадают с ограничениями схемы БД.
const (
	MaxDescriptionLength = 1000
	MaxAdPrice           = 999_999_999
	MinCarYear           = 1950
	MaxMileage           = 10_000_000
	MaxEngineVolume      = 20.0
	MaxPlateNumberLength = 20
	MaxNameLength        = 100
)

// Телефон: цифры, допускается ведущий +, от 7 до 15 цифр.
var phoneRe = regexp.MustCompile(`^\+?\d{7,15}$`)

// Ник в Telegram: @ опционален, 5-32 символа из [A-Za-z0-9_].
var telegramRe = regexp.MustCompile(`^@?[A-Za-z0-9_]{5,32}$`)

var titleCaser = cases.Title(language.Russian)

// NormalizeCity приводит название города к единому виду: обрезает
// пробелы и выставляет заглавные буквы («нальчик» → «Нальчик»).
// Пустой ввод заменяется на «Другой», чтобы фильтр по городу работал.
func NormalizeCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return "Другой"
	}
	return titleCaser.String(city)
}

// ValidateCarAd проверяет поля авто-объявления и возвращает список
// человекочитаемых сообщений. Пустой список — данные валидны.
func ValidateCarAd(in CarAdInput) []string {
	var errs []string

	if strings.TrimSpace(in.Brand) == "" {
		errs = append(errs, "Укажите марку автомобиля")
	}
	if strings.TrimSpace(in.Model) == "" {
		errs = append(errs, "Укажите модель автомобиля")
	}

	maxYear := time.Now().Year() + 1
	if in.Year < MinCarYear || in.Year > maxYear {
		errs = append(errs, fmt.Sprintf("Год выпуска должен быть от %d до %d", MinCarYear, maxYear))
	}
	if in.Mileage < 0 || in.Mileage > MaxMileage {
		errs = append(errs, "Некорректный пробег")
	}
	if in.EngineVolume < 0 || in.EngineVolume > MaxEngineVolume {
		errs = append(errs, "Некорректный объём двигателя")
	}
	if in.FuelType != "" {
		if _, ok := ValidFuelTypes[in.FuelType]; !ok {
			errs = append(errs, "Некорректный тип топлива")
		}
	}
	if in.Transmission != "" {
		if _, ok := ValidTransmissions[in.Transmission]; !ok {
			errs = append(errs, "Некорректная коробка передач")
		}
	}

	errs = append(errs, validateCommon(in.Price, in.Description, in.ContactPhone, in.ContactTelegram)...)
	return errs
}

// ValidatePlateAd проверяет поля номер-объявления.
func ValidatePlateAd(in PlateAdInput) []string {
	var errs []string

	plate := strings.TrimSpace(in.PlateNumber)
	if plate == "" {
		errs = append(errs, "Укажите номер")
	} else if utf8.RuneCountInString(plate) > MaxPlateNumberLength {
		errs = append(errs, fmt.Sprintf("Номер не длиннее %d символов", MaxPlateNumberLength))
	}

	errs = append(errs, validateCommon(in.Price, in.Description, in.ContactPhone, in.ContactTelegram)...)
	return errs
}

// validateCommon — правила, общие для обоих типов объявлений.
func validateCommon(price int, description, phone, telegram string) []string {
	var errs []string

	if price <= 0 {
		errs = append(errs, "Укажите цену")
	} else if price > MaxAdPrice {
		errs = append(errs, "Слишком большая цена")
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs = append(errs, fmt.Sprintf("Описание не длиннее %d символов", MaxDescriptionLength))
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		errs = append(errs, "Укажите контактный телефон")
	} else if !phoneRe.MatchString(strings.ReplaceAll(phone, " ", "")) {
		errs = append(errs, "Некорректный номер телефона")
	}

	if tg := strings.TrimSpace(telegram); tg != "" && !telegramRe.MatchString(tg) {
		errs = append(errs, "Некорректный ник в Telegram")
	}

	return errs
}
