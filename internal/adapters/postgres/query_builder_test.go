package postgres_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

func TestCondBuilderNumbersPlaceholdersSequentially(t *testing.T) {
	b := &condBuilder{}
	b.add("status = ?", "approved")
	b.add("price BETWEEN ? AND ?", 1000, 5000)
	b.add("expires_at IS NULL OR expires_at > now()")

	assert.Equal(t,
		"status = $1 AND price BETWEEN $2 AND $3 AND expires_at IS NULL OR expires_at > now()",
		b.where())
	assert.Equal(t, []interface{}{"approved", 1000, 5000}, b.args)
}

func TestCondBuilderNextContinuesNumbering(t *testing.T) {
	b := &condBuilder{}
	b.add("city = ?", "Минск")

	limit := b.next(20)
	offset := b.next(40)

	assert.Equal(t, "$2", limit)
	assert.Equal(t, "$3", offset)
	assert.Equal(t, []interface{}{"Минск", 20, 40}, b.args)
}

func TestCondBuilderEmptyWhere(t *testing.T) {
	b := &condBuilder{}
	assert.Equal(t, "", b.where())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `BMW`, escapeLike(`BMW`))
	assert.Equal(t, `100\%`, escapeLike(`100%`))
	assert.Equal(t, `a\_b`, escapeLike(`a_b`))
	// Обратный слэш экранируется первым, иначе двоился бы результат % и _.
	assert.Equal(t, `\\\%`, escapeLike(`\%`))
}

func TestCarSortClause(t *testing.T) {
	assert.Equal(t, "price ASC", carSortClause(domain.SortPriceAsc))
	assert.Equal(t, "price DESC", carSortClause(domain.SortPriceDesc))
	assert.Equal(t, "created_at ASC", carSortClause(domain.SortDateOld))
	assert.Equal(t, "mileage ASC", carSortClause(domain.SortMileageAsc))
	assert.Equal(t, "created_at DESC", carSortClause(domain.SortDateNew))
	assert.Equal(t, "created_at DESC", carSortClause(domain.SortOption("garbage")))
}

func TestPlateSortClauseIgnoresMileage(t *testing.T) {
	assert.Equal(t, "created_at DESC", plateSortClause(domain.SortMileageAsc))
	assert.Equal(t, "price ASC", plateSortClause(domain.SortPriceAsc))
}
