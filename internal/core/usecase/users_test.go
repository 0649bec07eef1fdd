package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/adapters/memory"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/usecase"
)

// brokenFavorites падает на любой очистке избранного.
type brokenFavorites struct {
	*memory.FavoritesRepository
}

func (brokenFavorites) DeleteByProperty(context.Context, string) error {
	return errors.New("connection reset")
}

func (brokenFavorites) DeleteByUser(context.Context, string) error {
	return errors.New("connection reset")
}

func TestDeleteProperty(t *testing.T) {
	f := newFixture()
	uc := usecase.NewDeletePropertyUseCase(f.properties, f.inquiries, f.favorites)
	ctx := context.Background()

	err := uc.Execute(ctx, memory.SeedSellerID, domain.RoleUser, "3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.Execute(ctx, memory.SeedSeller2ID, domain.RoleUser, "3"))
	p, err := f.properties.Get(ctx, "3")
	require.NoError(t, err)
	assert.Nil(t, p)

	inquiries, err := f.inquiries.ListByProperties(ctx, []string{"3"})
	require.NoError(t, err)
	assert.Empty(t, inquiries)
	saved, err := f.favorites.ListPropertyIDs(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "4"}, saved)

	assert.ErrorIs(t, uc.Execute(ctx, memory.SeedSeller2ID, domain.RoleUser, "3"), domain.ErrPropertyNotFound)

	// администратор удаляет чужие объявления в любом статусе
	for _, id := range []string{"11", "13", "14"} {
		require.NoError(t, uc.Execute(ctx, memory.SeedAdminID, domain.RoleAdmin, id), id)
	}
	all, err := f.properties.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}

func TestDeleteProperty_CleanupFailureIsNotFatal(t *testing.T) {
	f := newFixture()
	uc := usecase.NewDeletePropertyUseCase(f.properties, f.inquiries, brokenFavorites{f.favorites})

	require.NoError(t, uc.Execute(context.Background(), memory.SeedSeller2ID, domain.RoleUser, "4"))
	p, err := f.properties.Get(context.Background(), "4")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSetUserRole(t *testing.T) {
	f := newFixture()
	uc := usecase.NewSetUserRoleUseCase(f.users)
	ctx := context.Background()

	u, err := uc.Execute(ctx, memory.SeedAdminID, memory.SeedBuyerID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, u.Role)

	stored, err := f.users.GetByID(ctx, memory.SeedBuyerID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, stored.Role)

	u, err = uc.Execute(ctx, memory.SeedAdminID, memory.SeedBuyerID, domain.RoleAdmin)
	require.NoError(t, err, "same role is a no-op")
	assert.Equal(t, domain.RoleAdmin, u.Role)

	_, err = uc.Execute(ctx, memory.SeedAdminID, memory.SeedBuyerID, "superuser")
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "role")

	_, err = uc.Execute(ctx, memory.SeedAdminID, memory.SeedAdminID, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Execute(ctx, memory.SeedAdminID, "missing", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture()
	uc := usecase.NewDeleteUserUseCase(f.users, f.favorites)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Execute(ctx, memory.SeedAdminID, memory.SeedAdminID), domain.ErrForbidden)

	require.NoError(t, uc.Execute(ctx, memory.SeedAdminID, memory.SeedSellerID))
	assert.ErrorIs(t, uc.Execute(ctx, memory.SeedAdminID, memory.SeedSellerID), domain.ErrUserNotFound)

	saved, err := f.favorites.ListPropertyIDs(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// объявления пользователя остаются
	props, err := f.properties.ListBySeller(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.NotEmpty(t, props)

	// ошибка очистки избранного не отменяет удаление
	uc = usecase.NewDeleteUserUseCase(f.users, brokenFavorites{f.favorites})
	require.NoError(t, uc.Execute(ctx, memory.SeedAdminID, memory.SeedBuyerID))
	users, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture()
	uc := usecase.NewUpdateProfileUseCase(f.users)
	ctx := context.Background()

	u, err := uc.Execute(ctx, memory.SeedSeller2ID, domain.ProfileUpdate{
		Name:   " Priya V. ",
		Phone:  "+91 98370 20000",
		Avatar: "https://cdn.example.com/priya.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya V.", u.Name)
	assert.Equal(t, "priya@example.com", u.Email)
	assert.Equal(t, domain.RoleUser, u.Role)

	got, err := usecase.NewGetProfileUseCase(f.users).Execute(ctx, memory.SeedSeller2ID)
	require.NoError(t, err)
	assert.Equal(t, *u, *got)

	_, err = uc.Execute(ctx, memory.SeedSeller2ID, domain.ProfileUpdate{Name: "Priya", Bio: strings.Repeat("я", domain.MaxBioLength+1)})
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "bio")

	_, err = uc.Execute(ctx, "missing", domain.ProfileUpdate{Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = usecase.NewGetProfileUseCase(f.users).Execute(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
