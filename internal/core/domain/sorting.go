package domain

import "sort"

// SortKey - порядок сортировки каталога
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

func (k SortKey) IsValid() bool {
	return k == SortNewest || k == SortPriceLow || k == SortPriceHigh
}

var SortKeyLabels = []DictionaryItem{
	{SystemName: string(SortNewest), DisplayName: "Newest First"},
	{SystemName: string(SortPriceLow), DisplayName: "Price: Low to High"},
	{SystemName: string(SortPriceHigh), DisplayName: "Price: High to Low"},
}

// SortProperties возвращает новый отсортированный срез, входной не меняется.
// Сортировка стабильная: при равных ключах сохраняется исходный порядок.
// Неизвестный ключ обрабатывается как SortNewest.
func SortProperties(props []Property, key SortKey) []Property {
	out := make([]Property, len(props))
	copy(out, props)

	var less func(i, j int) bool
	switch key {
	case SortPriceLow:
		less = func(i, j int) bool { return out[i].Price < out[j].Price }
	case SortPriceHigh:
		less = func(i, j int) bool { return out[i].Price > out[j].Price }
	default:
		less = func(i, j int) bool { return out[i].ListingDate.After(out[j].ListingDate) }
	}

	sort.SliceStable(out, less)
	return out
}
