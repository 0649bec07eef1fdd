package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

func TestProfileUpdate_Validate(t *testing.T) {
	tests := []struct {
		name   string
		update domain.ProfileUpdate
		fields []string
	}{
		{name: "valid", update: domain.ProfileUpdate{Name: "Rahul"}},
		{name: "blank name", update: domain.ProfileUpdate{Name: "   "}, fields: []string{"name"}},
		{name: "bio at limit", update: domain.ProfileUpdate{Name: "Rahul", Bio: strings.Repeat("ж", domain.MaxBioLength)}},
		{name: "bio over limit", update: domain.ProfileUpdate{Name: "", Bio: strings.Repeat("a", domain.MaxBioLength+1)}, fields: []string{"name", "bio"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs domain.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, verrs, f)
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUser_ApplyProfile(t *testing.T) {
	u := domain.User{ID: "u1", Name: "Old", Email: "old@example.com", Role: domain.RoleAdmin, Bio: "old bio"}

	u.ApplyProfile(domain.ProfileUpdate{Name: " New ", Phone: " +91 1 ", Avatar: "a.jpg"})

	assert.Equal(t, "New", u.Name)
	assert.Equal(t, "+91 1", u.Phone)
	assert.Equal(t, "a.jpg", u.Avatar)
	assert.Empty(t, u.Bio, "empty bio clears the old one")
	assert.Equal(t, "old@example.com", u.Email)
	assert.Equal(t, domain.RoleAdmin, u.Role)
}
