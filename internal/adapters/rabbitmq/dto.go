package rabbitmq

import (
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/port"
)

// PropertySubmittedDTO - тело события property.submitted
type PropertySubmittedDTO struct {
	PropertyID   string    `json:"property_id"`
	SellerID     string    `json:"seller_id"`
	Title        string    `json:"title"`
	PropertyType string    `json:"property_type"`
	ListingType  string    `json:"listing_type"`
	Price        float64   `json:"price"`
	City         string    `json:"city"`
	Status       string    `json:"status"`
	ImageCount   int       `json:"image_count"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// PropertyStatusChangedDTO - тело события property.status_changed
type PropertyStatusChangedDTO struct {
	PropertyID      string    `json:"property_id"`
	SellerID        string    `json:"seller_id"`
	FromStatus      string    `json:"from_status"`
	ToStatus        string    `json:"to_status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	ChangedBy       string    `json:"changed_by"`
	ChangedAt       time.Time `json:"changed_at"`
}

// PropertyViewedDTO - тело события property.viewed
type PropertyViewedDTO struct {
	PropertyID string    `json:"property_id"`
	ViewedAt   time.Time `json:"viewed_at"`
}

func toSubmittedDTO(p domain.Property) PropertySubmittedDTO {
	return PropertySubmittedDTO{
		PropertyID:   p.ID,
		SellerID:     p.SellerID,
		Title:        p.Title,
		PropertyType: string(p.PropertyType),
		ListingType:  string(p.ListingType),
		Price:        p.Price,
		City:         p.City,
		Status:       string(p.Status),
		ImageCount:   len(p.Images),
		SubmittedAt:  p.ListingDate,
	}
}

func toStatusChangedDTO(e port.PropertyStatusChangedEvent) PropertyStatusChangedDTO {
	return PropertyStatusChangedDTO{
		PropertyID:      e.PropertyID,
		SellerID:        e.SellerID,
		FromStatus:      string(e.From),
		ToStatus:        string(e.To),
		RejectionReason: e.RejectionReason,
		ChangedBy:       e.ChangedBy,
		ChangedAt:       e.ChangedAt,
	}
}
