package domain

import (
	"encoding/json"
	"math"
	"slices"
)

// PriceRange - ограничение по цене, границы включительно.
// Max = +Inf означает отсутствие верхней границы.
type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

func (r PriceRange) HasUpperBound() bool {
	return !math.IsInf(r.Max, 1)
}

// MarshalJSON: бесконечная верхняя граница кодируется как null.
func (r PriceRange) MarshalJSON() ([]byte, error) {
	out := struct {
		Min float64  `json:"min"`
		Max *float64 `json:"max"`
	}{Min: r.Min}
	if r.HasUpperBound() {
		out.Max = &r.Max
	}
	return json.Marshal(out)
}

// RoomsMatch - как сравнивать количество спален/санузлов с выбранными значениями.
type RoomsMatch string

const (
	// RoomsMatchExact - точное совпадение с одним из выбранных значений (по умолчанию).
	RoomsMatchExact RoomsMatch = "exact"
	// RoomsMatchAtLeast - "N+": не меньше минимального из выбранных значений.
	RoomsMatchAtLeast RoomsMatch = "at-least"
)

// FilterState - набор фильтров публичного каталога.
// Пустой срез означает "без ограничений". Значение неизменяемое:
// при каждом изменении вызывающий код создает новое.
type FilterState struct {
	Cities        []string
	PropertyTypes []PropertyType
	ListingTypes  []ListingType
	PriceRange    *PriceRange
	Bedrooms      []int
	Bathrooms     []int
	Amenities     []string
	RoomsMatch    RoomsMatch
}

// IsEmpty - ни одно ограничение не задано.
func (f FilterState) IsEmpty() bool {
	return len(f.Cities) == 0 && len(f.PropertyTypes) == 0 && len(f.ListingTypes) == 0 &&
		f.PriceRange == nil && len(f.Bedrooms) == 0 && len(f.Bathrooms) == 0 && len(f.Amenities) == 0
}

// MatchesFilter проверяет объявление по всем условиям фильтра (И).
// Неодобренные объявления в публичный каталог не попадают никогда.
func MatchesFilter(p Property, f FilterState) bool {
	if p.Status != StatusApproved {
		return false
	}

	if len(f.Cities) > 0 && !slices.Contains(f.Cities, p.Location) {
		return false
	}

	if len(f.PropertyTypes) > 0 && !slices.Contains(f.PropertyTypes, p.PropertyType) {
		return false
	}

	if len(f.ListingTypes) > 0 && !slices.Contains(f.ListingTypes, p.ListingType) {
		return false
	}

	// нулевая цена - бесплатное объявление, а не отсутствующая цена
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}

	if len(f.Bedrooms) > 0 && !matchRooms(p.Bedrooms, f.Bedrooms, f.RoomsMatch) {
		return false
	}

	if len(f.Bathrooms) > 0 && !matchRooms(p.Bathrooms, f.Bathrooms, f.RoomsMatch) {
		return false
	}

	// Все запрошенные удобства должны присутствовать
	for _, id := range f.Amenities {
		if !p.HasAmenity(id) {
			return false
		}
	}

	return true
}

func matchRooms(value int, selected []int, mode RoomsMatch) bool {
	if value < 0 {
		return false
	}
	if mode == RoomsMatchAtLeast {
		return value >= slices.Min(selected)
	}
	return slices.Contains(selected, value)
}

// FilterProperties возвращает подходящие объявления в исходном порядке.
// Результат никогда не nil.
func FilterProperties(props []Property, f FilterState) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if MatchesFilter(p, f) {
			out = append(out, p)
		}
	}
	return out
}
