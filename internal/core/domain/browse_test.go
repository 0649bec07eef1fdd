package domain_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

func ids(props []domain.Property) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p.ID)
	}
	return out
}

func TestSortProperties(t *testing.T) {
	props := []domain.Property{
		approved("old-cheap", func(p *domain.Property) { p.Price = 10; p.ListingDate = baseDate }),
		approved("new-mid", func(p *domain.Property) { p.Price = 20; p.ListingDate = baseDate.Add(48 * time.Hour) }),
		approved("mid-mid", func(p *domain.Property) { p.Price = 20; p.ListingDate = baseDate.Add(24 * time.Hour) }),
		approved("mid-high", func(p *domain.Property) { p.Price = 30; p.ListingDate = baseDate.Add(24 * time.Hour) }),
	}

	t.Run("newest", func(t *testing.T) {
		got := domain.SortProperties(props, domain.SortNewest)
		assert.Equal(t, []string{"new-mid", "mid-mid", "mid-high", "old-cheap"}, ids(got))
	})

	t.Run("price low keeps input order for ties", func(t *testing.T) {
		got := domain.SortProperties(props, domain.SortPriceLow)
		assert.Equal(t, []string{"old-cheap", "new-mid", "mid-mid", "mid-high"}, ids(got))
	})

	t.Run("price high keeps input order for ties", func(t *testing.T) {
		got := domain.SortProperties(props, domain.SortPriceHigh)
		assert.Equal(t, []string{"mid-high", "new-mid", "mid-mid", "old-cheap"}, ids(got))
	})

	t.Run("unknown key falls back to newest", func(t *testing.T) {
		got := domain.SortProperties(props, domain.SortKey("popular"))
		assert.Equal(t, ids(domain.SortProperties(props, domain.SortNewest)), ids(got))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = domain.SortProperties(props, domain.SortPriceHigh)
		assert.Equal(t, []string{"old-cheap", "new-mid", "mid-mid", "mid-high"}, ids(props))
	})
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	tests := []struct {
		name      string
		items     []int
		page      int
		size      int
		wantItems []int
		wantPages int
		wantPage  int
	}{
		{name: "first page", items: items, page: 1, size: 12, wantItems: items[0:12], wantPages: 3, wantPage: 1},
		{name: "last partial page", items: items, page: 3, size: 12, wantItems: items[24:25], wantPages: 3, wantPage: 3},
		{name: "page beyond range", items: items, page: 4, size: 12, wantItems: []int{}, wantPages: 3, wantPage: 4},
		{name: "page below one", items: items, page: 0, size: 12, wantItems: items[0:12], wantPages: 3, wantPage: 1},
		{name: "empty input has one page", items: nil, page: 1, size: 12, wantItems: []int{}, wantPages: 1, wantPage: 1},
		{name: "default size", items: items, page: 2, size: 0, wantItems: items[12:24], wantPages: 3, wantPage: 2},
		{name: "exact multiple", items: items[:24], page: 2, size: 12, wantItems: items[12:24], wantPages: 2, wantPage: 2},
		{name: "huge page does not overflow", items: items, page: 1 << 62, size: 12, wantItems: []int{}, wantPages: 3, wantPage: 1 << 62},
		{name: "max int page", items: items, page: math.MaxInt, size: 12, wantItems: []int{}, wantPages: 3, wantPage: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Paginate(tt.items, tt.page, tt.size)
			assert.Equal(t, tt.wantItems, got.Items)
			assert.Equal(t, tt.wantPages, got.TotalPages)
			assert.Equal(t, tt.wantPage, got.CurrentPage)
			assert.Equal(t, len(tt.items), got.TotalItems)
		})
	}
}

func TestBrowse_ResetsPageOnFilterOrSortChange(t *testing.T) {
	s := domain.NewBrowseState(0).WithPage(3)
	require.Equal(t, 3, s.Page)
	assert.Equal(t, domain.DefaultPageSize, s.PageSize)

	assert.Equal(t, 1, s.WithFilters(domain.FilterState{Cities: []string{"Kotwali"}}).Page)
	assert.Equal(t, 1, s.WithSort(domain.SortPriceLow).Page)
	assert.Equal(t, 3, s.Page, "original state must stay untouched")
}

func TestBrowse_Pipeline(t *testing.T) {
	var props []domain.Property
	for i := 0; i < 30; i++ {
		i := i
		props = append(props, approved(fmt.Sprintf("p%02d", i), func(p *domain.Property) {
			p.Price = float64(1000 * (i + 1))
			if i%3 == 0 {
				p.Status = domain.StatusPending
			}
		}))
	}

	state := domain.NewBrowseState(12).
		WithSort(domain.SortPriceHigh).
		WithFilters(domain.FilterState{PriceRange: &domain.PriceRange{Min: 1, Max: 25000}})

	page := domain.Browse(props, state)
	// approved with price <= 25000: i in 1..24 excluding multiples of 3 -> 16
	assert.Equal(t, 16, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 12)
	assert.Equal(t, "p23", page.Items[0].ID)

	second := domain.Browse(props, state.WithPage(2))
	assert.Len(t, second.Items, 4)
	assert.Equal(t, "p01", second.Items[3].ID)
}
