package postgres

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// addRoomsFilter: точное совпадение с одним из значений или "не меньше минимального"
func (qb *queryBuilder) addRoomsFilter(fieldName string, selected []int, mode domain.RoomsMatch) {
	if len(selected) == 0 {
		return
	}
	if mode == domain.RoomsMatchAtLeast {
		qb.addCondition("%s >= $%d", fieldName, slices.Min(selected))
		return
	}
	qb.addCondition("%s = ANY($%d)", fieldName, selected)
}

// build создает WHERE-часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// applyFilters переводит фильтр каталога в условия SQL.
// Условия повторяют domain.MatchesFilter, поэтому повторная фильтрация в памяти ничего не меняет.
func applyFilters(filters domain.FilterState) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.addCondition("%s = $%d", "p.status", string(domain.StatusApproved))

	if len(filters.Cities) > 0 {
		qb.addCondition("%s = ANY($%d)", "p.location", filters.Cities)
	}
	if len(filters.PropertyTypes) > 0 {
		qb.addCondition("%s = ANY($%d)", "p.property_type", toStrings(filters.PropertyTypes))
	}
	if len(filters.ListingTypes) > 0 {
		qb.addCondition("%s = ANY($%d)", "p.listing_type", toStrings(filters.ListingTypes))
	}

	if r := filters.PriceRange; r != nil {
		qb.addCondition("%s >= $%d", "p.price", r.Min)
		if r.HasUpperBound() {
			qb.addCondition("%s <= $%d", "p.price", r.Max)
		}
	}

	qb.addRoomsFilter("p.bedrooms", filters.Bedrooms, filters.RoomsMatch)
	qb.addRoomsFilter("p.bathrooms", filters.Bathrooms, filters.RoomsMatch)

	if len(filters.Amenities) > 0 {
		// @> - массив содержит все перечисленные удобства
		qb.addCondition("%s @> $%d", "p.amenity_ids", filters.Amenities)
	}

	return qb.build()
}
