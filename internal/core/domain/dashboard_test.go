package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

func TestBuildSellerDashboard(t *testing.T) {
	props := []domain.Property{
		approved("1", func(p *domain.Property) { p.ViewCount = 10 }),
		approved("2", func(p *domain.Property) { p.ViewCount = 5; p.Status = domain.StatusPending }),
		approved("3", func(p *domain.Property) { p.ViewCount = 1; p.Status = domain.StatusRejected }),
	}

	var inquiries []domain.Inquiry
	for i := 0; i < 7; i++ {
		inquiries = append(inquiries, domain.Inquiry{
			ID:        fmt.Sprintf("i%d", i),
			CreatedAt: baseDate.Add(time.Duration(i) * time.Hour),
		})
	}

	d := domain.BuildSellerDashboard(props, inquiries)
	assert.Equal(t, 3, d.TotalProperties)
	assert.Equal(t, 1, d.ActiveListings)
	assert.Equal(t, 1, d.PendingApproval)
	assert.Equal(t, 16, d.TotalViews)
	assert.Equal(t, 7, d.TotalInquiries)
	require.Len(t, d.RecentInquiries, domain.RecentInquiriesLimit)
	assert.Equal(t, "i6", d.RecentInquiries[0].ID)
	assert.Equal(t, "i2", d.RecentInquiries[4].ID)
}

func TestBuildAdminDashboard(t *testing.T) {
	props := []domain.Property{
		approved("1"),
		approved("2"),
		approved("3", func(p *domain.Property) { p.Location = "Kotwali" }),
		approved("4", func(p *domain.Property) { p.Status = domain.StatusPending; p.ListingDate = baseDate.Add(time.Hour) }),
		approved("5", func(p *domain.Property) { p.Status = domain.StatusPending }),
		approved("6", func(p *domain.Property) { p.Status = domain.StatusRejected }),
	}
	users := []domain.User{{ID: "u1", Role: domain.RoleUser}, {ID: "u2", Role: domain.RoleUser}, {ID: "a", Role: domain.RoleAdmin}}

	d := domain.BuildAdminDashboard(props, users, 4)
	assert.Equal(t, 2, d.PendingProperties)
	assert.Equal(t, 3, d.ApprovedProperties)
	assert.Equal(t, 1, d.RejectedProperties)
	assert.Equal(t, 3, d.TotalUsers)
	assert.Equal(t, 4, d.TotalInquiries)
	assert.Equal(t, []domain.CityCount{{City: "Civil Lines", Count: 2}, {City: "Kotwali", Count: 1}}, d.PropertiesByCity)
	assert.Equal(t, 2, d.UsersByRole[domain.RoleUser])
	assert.Equal(t, 1, d.UsersByRole[domain.RoleAdmin])
	assert.InDelta(t, 1.0, d.AvgApprovedPerUser, 1e-9)
	require.Len(t, d.PendingApprovalQueue, 2)
	assert.Equal(t, "5", d.PendingApprovalQueue[0].ID)
}

func TestBuildAdminDashboard_Empty(t *testing.T) {
	d := domain.BuildAdminDashboard(nil, nil, 0)
	assert.Zero(t, d.AvgApprovedPerUser)
	assert.NotNil(t, d.PropertiesByCity)
	assert.NotNil(t, d.PendingApprovalQueue)
}
