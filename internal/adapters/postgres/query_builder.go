package postgres_adapter

import (
	"strconv"
	"strings"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// condBuilder накапливает условия WHERE с позиционными плейсхолдерами.
// Нумерация $N идет от числа уже добавленных аргументов, поэтому один
// builder отдает одинаковый набор условий и для SELECT, и для COUNT.
type condBuilder struct {
	conds []string
	args  []interface{}
}

// add добавляет условие; вхождения "?" заменяются на $N по порядку.
func (b *condBuilder) add(cond string, args ...interface{}) {
	for _, a := range args {
		b.args = append(b.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(b.args)), 1)
	}
	b.conds = append(b.conds, cond)
}

// where собирает итоговую строку условий (без ключевого слова WHERE).
func (b *condBuilder) where() string {
	return strings.Join(b.conds, " AND ")
}

// next возвращает плейсхолдер для аргумента сверх условий WHERE
// (LIMIT/OFFSET) и регистрирует его значение.
func (b *condBuilder) next(a interface{}) string {
	b.args = append(b.args, a)
	return "$" + strconv.Itoa(len(b.args))
}

// escapeLike экранирует спецсимволы LIKE/ILIKE: \ % _
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// carSortClause возвращает ORDER BY для каталога авто. Неизвестный
// ключ откатывается на date_new (новые первыми).
func carSortClause(sort domain.SortOption) string {
	switch sort {
	case domain.SortPriceAsc:
		return "price ASC"
	case domain.SortPriceDesc:
		return "price DESC"
	case domain.SortDateOld:
		return "created_at ASC"
	case domain.SortMileageAsc:
		return "mileage ASC"
	default:
		return "created_at DESC"
	}
}

// plateSortClause — ORDER BY для каталога номеров (без mileage_asc).
func plateSortClause(sort domain.SortOption) string {
	switch sort {
	case domain.SortPriceAsc:
		return "price ASC"
	case domain.SortPriceDesc:
		return "price DESC"
	case domain.SortDateOld:
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}
