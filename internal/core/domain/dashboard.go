package domain

import (
	"sort"
)

const RecentInquiriesLimit = 5

// SellerDashboard - сводка для кабинета продавца.
type SellerDashboard struct {
	TotalProperties int       `json:"totalProperties"`
	ActiveListings  int       `json:"activeListings"`
	PendingApproval int       `json:"pendingApproval"`
	TotalViews      int       `json:"totalViews"`
	TotalInquiries  int       `json:"totalInquiries"`
	RecentInquiries []Inquiry `json:"recentInquiries"`
}

// BuildSellerDashboard считает статистику по объявлениям продавца и заявкам на них.
func BuildSellerDashboard(props []Property, inquiries []Inquiry) SellerDashboard {
	d := SellerDashboard{
		TotalProperties: len(props),
		TotalInquiries:  len(inquiries),
	}
	for _, p := range props {
		switch p.Status {
		case StatusApproved:
			d.ActiveListings++
		case StatusPending:
			d.PendingApproval++
		}
		d.TotalViews += p.ViewCount
	}

	d.RecentInquiries = RecentInquiries(inquiries, RecentInquiriesLimit)
	return d
}

// RecentInquiries - первые limit заявок, самые новые сверху.
func RecentInquiries(inquiries []Inquiry, limit int) []Inquiry {
	sorted := make([]Inquiry, len(inquiries))
	copy(sorted, inquiries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// AdminDashboard - сводка для панели модератора.
type AdminDashboard struct {
	PendingProperties    int              `json:"pendingProperties"`
	ApprovedProperties   int              `json:"approvedProperties"`
	RejectedProperties   int              `json:"rejectedProperties"`
	TotalUsers           int              `json:"totalUsers"`
	TotalInquiries       int              `json:"totalInquiries"`
	PropertiesByCity     []CityCount      `json:"propertiesByCity"`
	UsersByRole          map[UserRole]int `json:"usersByRole"`
	AvgApprovedPerUser   float64          `json:"avgApprovedPerUser"`
	PendingApprovalQueue []Property       `json:"pendingApprovalQueue"`
}

// BuildAdminDashboard считает статистику по всей площадке.
// PropertiesByCity учитывает только одобренные объявления и отсортирован по убыванию.
func BuildAdminDashboard(props []Property, users []User, inquiryCount int) AdminDashboard {
	d := AdminDashboard{
		TotalUsers:           len(users),
		TotalInquiries:       inquiryCount,
		UsersByRole:          map[UserRole]int{RoleUser: 0, RoleAdmin: 0},
		PropertiesByCity:     []CityCount{},
		PendingApprovalQueue: []Property{},
	}

	byCity := map[string]int{}
	for _, p := range props {
		switch p.Status {
		case StatusPending:
			d.PendingProperties++
			d.PendingApprovalQueue = append(d.PendingApprovalQueue, p)
		case StatusApproved:
			d.ApprovedProperties++
			byCity[p.Location]++
		case StatusRejected:
			d.RejectedProperties++
		}
	}

	for city, n := range byCity {
		d.PropertiesByCity = append(d.PropertiesByCity, CityCount{City: city, Count: n})
	}
	sort.Slice(d.PropertiesByCity, func(i, j int) bool {
		a, b := d.PropertiesByCity[i], d.PropertiesByCity[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.City < b.City
	})

	for _, u := range users {
		d.UsersByRole[u.Role]++
	}
	if len(users) > 0 {
		d.AvgApprovedPerUser = float64(d.ApprovedProperties) / float64(len(users))
	}

	// самые старые заявки на модерацию - первыми
	sort.SliceStable(d.PendingApprovalQueue, func(i, j int) bool {
		return d.PendingApprovalQueue[i].ListingDate.Before(d.PendingApprovalQueue[j].ListingDate)
	})
	return d
}
