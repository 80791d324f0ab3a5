package domain

import "sort"

// Brands — статичный справочник марок и моделей для формы подачи
// и фильтров каталога. Каталог не ограничен этим списком: фильтр
// по марке работает по фактическим значениям в объявлениях.
var Brands = map[string][]string{
	"Audi":          {"A3", "A4", "A5", "A6", "A7", "A8", "Q3", "Q5", "Q7", "Q8", "TT"},
	"BMW":           {"1 серия", "3 серия", "5 серия", "7 серия", "X1", "X3", "X5", "X6", "X7"},
	"Chevrolet":     {"Aveo", "Cobalt", "Cruze", "Lacetti", "Niva", "Spark"},
	"Ford":          {"Fiesta", "Focus", "Fusion", "Kuga", "Mondeo", "Transit"},
	"Honda":         {"Accord", "Civic", "CR-V", "Fit", "Pilot"},
	"Hyundai":       {"Accent", "Creta", "Elantra", "Santa Fe", "Solaris", "Sonata", "Tucson"},
	"Kia":           {"Ceed", "Cerato", "Optima", "Rio", "Sorento", "Soul", "Sportage"},
	"Lada":          {"Granta", "Kalina", "Largus", "Niva", "Priora", "Vesta", "XRAY", "2107", "2110", "2114"},
	"Lexus":         {"ES", "GX", "LX", "NX", "RX"},
	"Mazda":         {"3", "6", "CX-5", "CX-7", "CX-9"},
	"Mercedes-Benz": {"A-класс", "C-класс", "E-класс", "S-класс", "GLA", "GLC", "GLE", "GLS", "Sprinter"},
	"Mitsubishi":    {"ASX", "Lancer", "Outlander", "Pajero"},
	"Nissan":        {"Almera", "Juke", "Qashqai", "Teana", "Terrano", "X-Trail"},
	"Opel":          {"Astra", "Corsa", "Insignia", "Vectra", "Zafira"},
	"Renault":       {"Arkana", "Duster", "Kaptur", "Logan", "Megane", "Sandero"},
	"Skoda":         {"Fabia", "Kodiaq", "Octavia", "Rapid", "Superb"},
	"Toyota":        {"Camry", "Corolla", "Highlander", "Land Cruiser", "Land Cruiser Prado", "RAV4"},
	"Volkswagen":    {"Golf", "Jetta", "Passat", "Polo", "Tiguan", "Touareg"},
	"ГАЗ":           {"Газель", "Соболь", "Волга"},
	"УАЗ":           {"Патриот", "Хантер", "Буханка"},
}

// BrandNames возвращает отсортированный список марок.
func BrandNames() []string {
	names := make([]string, 0, len(Brands))
	for name := range Brands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModelsForBrand возвращает модели марки и признак её наличия в справочнике.
func ModelsForBrand(brand string) ([]string, bool) {
	models, ok := Brands[brand]
	return models, ok
}
