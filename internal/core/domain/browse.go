package domain

// BrowseState - состояние страницы каталога: фильтры, сортировка, номер страницы.
// Любое изменение фильтров или сортировки возвращает копию с первой страницей.
type BrowseState struct {
	Filters  FilterState
	Sort     SortKey
	Page     int
	PageSize int
}

func NewBrowseState(pageSize int) BrowseState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return BrowseState{Sort: SortNewest, Page: 1, PageSize: pageSize}
}

func (s BrowseState) WithFilters(f FilterState) BrowseState {
	s.Filters = f
	s.Page = 1
	return s
}

func (s BrowseState) WithSort(key SortKey) BrowseState {
	s.Sort = key
	s.Page = 1
	return s
}

func (s BrowseState) WithPage(page int) BrowseState {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// Browse - весь конвейер каталога: фильтрация -> сортировка -> пагинация.
func Browse(props []Property, s BrowseState) Page[Property] {
	filtered := FilterProperties(props, s.Filters)
	sorted := SortProperties(filtered, s.Sort)
	return Paginate(sorted, s.Page, s.PageSize)
}
