package domain

import (
	"time"
)

// PropertyType - тип объекта недвижимости
type PropertyType string

const (
	PropertyTypeApartment   PropertyType = "apartment"
	PropertyTypeHouse       PropertyType = "house"
	PropertyTypeVilla       PropertyType = "villa"
	PropertyTypePlot        PropertyType = "plot"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeOffice      PropertyType = "office"
	PropertyTypeCoWorking   PropertyType = "co-working"
	PropertyTypeMeetingRoom PropertyType = "meeting-room"
)

// IsValid проверяет, что значение входит в перечисление.
func (t PropertyType) IsValid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla, PropertyTypePlot,
		PropertyTypeCommercial, PropertyTypeOffice, PropertyTypeCoWorking, PropertyTypeMeetingRoom:
		return true
	}
	return false
}

// ListingType - тип сделки: продажа или аренда
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// PropertyStatus - статус объявления в процессе модерации
type PropertyStatus string

const (
	StatusPending  PropertyStatus = "pending"
	StatusApproved PropertyStatus = "approved"
	StatusRejected PropertyStatus = "rejected"
	StatusArchived PropertyStatus = "archived"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusArchived:
		return true
	}
	return false
}

// Amenity - удобство (парковка, лифт и т.д.)
type Amenity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Property - основная доменная сущность: объявление о недвижимости.
type Property struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"propertyType"`
	ListingType  ListingType  `json:"listingType"`

	// Для продажи - полная стоимость, для аренды - за период
	Price float64 `json:"price"`

	Location string `json:"location"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"` // кв. футы

	Amenities []Amenity `json:"amenities"`
	Images    []string  `json:"images"`

	ListingDate time.Time `json:"listingDate"`
	ViewCount   int       `json:"viewCount"`
	SellerID    string    `json:"sellerId"`

	Status          PropertyStatus `json:"status"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
}

// CoverImage возвращает обложку объявления (первое изображение) или пустую строку.
func (p *Property) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasAmenity проверяет наличие удобства по его ID.
func (p *Property) HasAmenity(id string) bool {
	for _, a := range p.Amenities {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию, чтобы вызывающий код не мог изменить
// срезы, которые хранит репозиторий.
func (p Property) Clone() Property {
	out := p
	if p.Amenities != nil {
		out.Amenities = append([]Amenity(nil), p.Amenities...)
	}
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	return out
}
