package domain

// DefaultPageSize - размер страницы каталога
const DefaultPageSize = 12

// Page - одна страница результата.
type Page[T any] struct {
	Items       []T
	TotalItems  int
	TotalPages  int
	CurrentPage int
	PageSize    int
}

// Paginate возвращает элементы [(page-1)*size, page*size), обрезанные по границам.
// TotalPages не бывает меньше 1, даже для пустого набора.
// Страница за пределами диапазона - пустой срез, а не ошибка.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	result := Page[T]{
		Items:       []T{},
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}

	// проверка до умножения: (page-1)*pageSize переполняется на огромных page
	if page > totalPages {
		return result
	}
	start := (page - 1) * pageSize
	if start >= total {
		return result
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	result.Items = make([]T, end-start)
	copy(result.Items, items[start:end])
	return result
}
