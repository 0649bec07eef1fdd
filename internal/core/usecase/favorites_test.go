package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/adapters/memory"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/usecase"
)

func TestAddToFavorites(t *testing.T) {
	f := newFixture()
	uc := usecase.NewAddToFavoritesUseCase(f.favorites, f.properties)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, memory.SeedBuyerID, "2"))
	require.NoError(t, uc.Execute(ctx, memory.SeedBuyerID, "2"))

	for _, id := range []string{"11", "13", "14", "missing"} {
		assert.ErrorIs(t, uc.Execute(ctx, memory.SeedBuyerID, id), domain.ErrPropertyNotFound, id)
	}

	saved, err := f.favorites.ListPropertyIDs(ctx, memory.SeedBuyerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, saved)
}

func TestRemoveFromFavorites(t *testing.T) {
	f := newFixture()
	uc := usecase.NewRemoveFromFavoritesUseCase(f.favorites)
	ctx := context.Background()

	require.NoError(t, uc.Execute(ctx, memory.SeedSellerID, "4"))
	require.NoError(t, uc.Execute(ctx, memory.SeedSellerID, "missing"))

	saved, err := usecase.NewGetUserFavoriteIDsUseCase(f.favorites).Execute(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "3"}, saved)
}

func TestGetUserFavorites(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	page, err := usecase.NewGetUserFavoritesUseCase(f.favorites, f.properties, 2).Execute(ctx, memory.SeedSellerID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "4"}, ids(page.Items))
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)

	page, err = usecase.NewGetUserFavoritesUseCase(f.favorites, f.properties, 2).Execute(ctx, memory.SeedSellerID, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(page.Items))

	// снятое с публикации и удаленное объявления не показываются
	p, err := f.properties.Get(ctx, "4")
	require.NoError(t, err)
	require.NoError(t, p.Archive())
	require.NoError(t, f.properties.UpdateStatus(ctx, *p, domain.StatusApproved))
	require.NoError(t, f.properties.Delete(ctx, "6"))

	page, err = usecase.NewGetUserFavoritesUseCase(f.favorites, f.properties, 0).Execute(ctx, memory.SeedSellerID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(page.Items))
	assert.Equal(t, 1, page.TotalItems)

	page, err = usecase.NewGetUserFavoritesUseCase(f.favorites, f.properties, 0).Execute(ctx, memory.SeedBuyerID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalItems)
}
