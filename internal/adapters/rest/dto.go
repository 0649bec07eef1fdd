package rest

import (
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// ErrorResponse - тело любого ответа с ошибкой
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// PropertyCardResponse - DTO для карточки объявления в списке.
type PropertyCardResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	PropertyType string    `json:"propertyType"`
	ListingType  string    `json:"listingType"`
	Price        float64   `json:"price"`
	Location     string    `json:"location"`
	City         string    `json:"city"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Area         float64   `json:"area"`
	CoverImage   string    `json:"coverImage"`
	ListingDate  time.Time `json:"listingDate"`
	ViewCount    int       `json:"viewCount"`
	Status       string    `json:"status"`

	RejectionReason string `json:"rejectionReason,omitempty"`
}

// PaginatedPropertiesResponse - страница каталога
type PaginatedPropertiesResponse struct {
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"perPage"`
	TotalPages int                    `json:"totalPages"`
	Data       []PropertyCardResponse `json:"data"`
}

// PropertyListResponse - списки без пагинации (кабинет продавца, модерация)
type PropertyListResponse struct {
	Total int                    `json:"total"`
	Data  []PropertyCardResponse `json:"data"`
}

// PropertyDetailsResponse - страница объявления
type PropertyDetailsResponse struct {
	Property domain.Property        `json:"property"`
	Seller   *SellerResponse        `json:"seller"`
	Similar  []PropertyCardResponse `json:"similar"`
}

// SellerResponse - публичный профиль продавца, без роли и даты регистрации
type SellerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

type InquiryListResponse struct {
	Total int              `json:"total"`
	Data  []domain.Inquiry `json:"data"`
}

type UserListResponse struct {
	Total int           `json:"total"`
	Data  []domain.User `json:"data"`
}

type CreateInquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status"`
}

type RejectPropertyRequest struct {
	Reason string `json:"reason"`
}

type StartSubmissionRequest struct {
	Lenient bool `json:"lenient"`
}

type SetUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateProfileRequest - форма настроек профиля. Email сюда не входит.
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}

type FavoriteIDsResponse struct {
	Data []string `json:"data"`
}

func toPropertyCard(p domain.Property) PropertyCardResponse {
	return PropertyCardResponse{
		ID:              p.ID,
		Title:           p.Title,
		PropertyType:    string(p.PropertyType),
		ListingType:     string(p.ListingType),
		Price:           p.Price,
		Location:        p.Location,
		City:            p.City,
		Bedrooms:        p.Bedrooms,
		Bathrooms:       p.Bathrooms,
		Area:            p.Area,
		CoverImage:      p.CoverImage(),
		ListingDate:     p.ListingDate,
		ViewCount:       p.ViewCount,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
	}
}

func toPaginatedResponse(page *domain.Page[domain.Property]) PaginatedPropertiesResponse {
	return PaginatedPropertiesResponse{
		Total:      page.TotalItems,
		Page:       page.CurrentPage,
		PerPage:    page.PageSize,
		TotalPages: page.TotalPages,
		Data:       toPropertyCards(page.Items),
	}
}

func toPropertyCards(props []domain.Property) []PropertyCardResponse {
	out := make([]PropertyCardResponse, len(props))
	for i, p := range props {
		out[i] = toPropertyCard(p)
	}
	return out
}

func toSellerResponse(u *domain.User) *SellerResponse {
	if u == nil {
		return nil
	}
	return &SellerResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Avatar: u.Avatar,
		Bio:    u.Bio,
	}
}

func nonNilInquiries(items []domain.Inquiry) []domain.Inquiry {
	if items == nil {
		return []domain.Inquiry{}
	}
	return items
}
