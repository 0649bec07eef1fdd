package memory

import (
	"time"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// Демо-данные для локального запуска (SEED_MOCK_DATA=true).
const (
	SeedAdminID   = "6f1c2a8e-4b7d-4e0a-9c53-1a2b3c4d5e01"
	SeedSellerID  = "8a7e4c1f-2d3b-4f6a-8e9d-0b1c2d3e4f02"
	SeedSeller2ID = "c3d9e2b4-7a1f-4c8e-b6d5-2e3f4a5b6c03"
	SeedBuyerID   = "e5b8f1a2-9c4d-4e7b-a3f6-4d5e6f7a8b04"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func amenities(ids ...string) []domain.Amenity {
	out := make([]domain.Amenity, 0, len(ids))
	for _, id := range ids {
		if a, ok := domain.LookupAmenity(id); ok {
			out = append(out, a)
		}
	}
	return out
}

func SeedUsers() []domain.User {
	return []domain.User{
		{ID: SeedAdminID, Name: "Admin User", Email: "admin@upfoxx.in", Phone: "+91 98370 00001", Role: domain.RoleAdmin, RegistrationDate: day(2023, time.January, 5)},
		{ID: SeedSellerID, Name: "Rahul Sharma", Email: "rahul@example.com", Phone: "+91 98370 11111", Role: domain.RoleUser, RegistrationDate: day(2023, time.June, 12), Bio: "Property owner in Civil Lines"},
		{ID: SeedSeller2ID, Name: "Priya Verma", Email: "priya@example.com", Phone: "+91 98370 22222", Role: domain.RoleUser, RegistrationDate: day(2023, time.September, 3)},
		{ID: SeedBuyerID, Name: "Amit Gupta", Email: "amit@example.com", Phone: "+91 98370 33333", Role: domain.RoleUser, RegistrationDate: day(2024, time.February, 20)},
	}
}

type seedProperty struct {
	id        string
	title     string
	ptype     domain.PropertyType
	ltype     domain.ListingType
	price     float64
	city      string
	beds      int
	baths     int
	area      float64
	amenities []string
	listed    time.Time
	views     int
	seller    string
	status    domain.PropertyStatus
	reason    string
}

var seedProperties = []seedProperty{
	{"1", "Modern 3BHK Apartment", domain.PropertyTypeApartment, domain.ListingTypeSale, 6500000, "Civil Lines", 3, 2, 1450, []string{"ac", "parking", "elevator", "security"}, day(2024, time.March, 1), 245, SeedSellerID, domain.StatusApproved, ""},
	{"2", "Spacious Family House", domain.PropertyTypeHouse, domain.ListingTypeSale, 9500000, "Rajendra Nagar", 4, 3, 2400, []string{"parking", "garden", "power-backup"}, day(2024, time.March, 8), 180, SeedSellerID, domain.StatusApproved, ""},
	{"3", "Furnished 2BHK for Rent", domain.PropertyTypeApartment, domain.ListingTypeRent, 15000, "Civil Lines", 2, 2, 1100, []string{"ac", "wifi", "kitchen"}, day(2024, time.March, 15), 320, SeedSeller2ID, domain.StatusApproved, ""},
	{"4", "Luxury Villa with Pool", domain.PropertyTypeVilla, domain.ListingTypeSale, 25000000, "Pilibhit Bypass", 5, 5, 5200, []string{"pool", "gym", "garden", "security", "cctv"}, day(2024, time.April, 2), 410, SeedSeller2ID, domain.StatusApproved, ""},
	{"5", "Residential Plot near Bypass", domain.PropertyTypePlot, domain.ListingTypeSale, 3200000, "Pilibhit Bypass", 0, 0, 2000, nil, day(2024, time.April, 10), 95, SeedSellerID, domain.StatusApproved, ""},
	{"6", "Retail Shop on Main Road", domain.PropertyTypeCommercial, domain.ListingTypeRent, 45000, "Kotwali", 0, 1, 650, []string{"power-backup", "cctv"}, day(2024, time.April, 18), 150, SeedSeller2ID, domain.StatusApproved, ""},
	{"7", "Managed Office Space", domain.PropertyTypeOffice, domain.ListingTypeRent, 60000, "Civil Lines", 0, 2, 1800, []string{"ac", "wifi", "reception", "pantry", "meeting-room"}, day(2024, time.May, 1), 210, SeedSellerID, domain.StatusApproved, ""},
	{"8", "Co-Working Desk", domain.PropertyTypeCoWorking, domain.ListingTypeRent, 5000, "Civil Lines", 0, 1, 120, []string{"ac", "wifi", "tea-coffee"}, day(2024, time.May, 6), 130, SeedSeller2ID, domain.StatusApproved, ""},
	{"9", "Meeting Room by the Hour", domain.PropertyTypeMeetingRoom, domain.ListingTypeRent, 800, "Civil Lines", 0, 1, 300, []string{"ac", "projector", "wifi"}, day(2024, time.May, 12), 60, SeedSellerID, domain.StatusApproved, ""},
	{"10", "Affordable 1BHK", domain.PropertyTypeApartment, domain.ListingTypeRent, 7000, "Izatnagar", 1, 1, 550, []string{"parking"}, day(2024, time.May, 20), 75, SeedSeller2ID, domain.StatusApproved, ""},
	{"11", "Independent House with Garden", domain.PropertyTypeHouse, domain.ListingTypeRent, 22000, "Subhash Nagar", 3, 2, 1800, []string{"garden", "parking"}, day(2024, time.June, 2), 0, SeedSellerID, domain.StatusPending, ""},
	{"12", "Penthouse with Terrace", domain.PropertyTypeApartment, domain.ListingTypeSale, 12000000, "Satellite Township", 4, 4, 3000, []string{"ac", "elevator", "balcony"}, day(2024, time.June, 5), 0, SeedSeller2ID, domain.StatusPending, ""},
	{"13", "Warehouse Unit", domain.PropertyTypeCommercial, domain.ListingTypeSale, 4500000, "CB Ganj", 0, 1, 4000, []string{"security"}, day(2024, time.June, 8), 12, SeedSellerID, domain.StatusRejected, "Images do not show the property"},
	{"14", "Old Listing in Rampur Garden", domain.PropertyTypeHouse, domain.ListingTypeSale, 5500000, "Rampur Garden", 3, 2, 1600, []string{"parking"}, day(2024, time.January, 15), 340, SeedSellerID, domain.StatusArchived, ""},
}

func SeedProperties() []domain.Property {
	out := make([]domain.Property, 0, len(seedProperties))
	for _, s := range seedProperties {
		out = append(out, domain.Property{
			ID:              s.id,
			Title:           s.title,
			Description:     s.title + " in " + s.city + ", Bareilly.",
			PropertyType:    s.ptype,
			ListingType:     s.ltype,
			Price:           s.price,
			Location:        s.city,
			City:            s.city,
			State:           "Uttar Pradesh",
			Zipcode:         "243001",
			Bedrooms:        s.beds,
			Bathrooms:       s.baths,
			Area:            s.area,
			Amenities:       amenities(s.amenities...),
			Images:          []string{"/images/properties/" + s.id + "-1.jpg", "/images/properties/" + s.id + "-2.jpg"},
			ListingDate:     s.listed,
			ViewCount:       s.views,
			SellerID:        s.seller,
			Status:          s.status,
			RejectionReason: s.reason,
		})
	}
	return out
}

func SeedInquiries() []domain.Inquiry {
	return []domain.Inquiry{
		{ID: "inq-1", PropertyID: "1", BuyerID: SeedBuyerID, BuyerName: "Amit Gupta", BuyerEmail: "amit@example.com", BuyerPhone: "+91 98370 33333", Message: "Is the price negotiable?", Status: domain.InquiryNew, CreatedAt: day(2024, time.June, 10)},
		{ID: "inq-2", PropertyID: "3", BuyerID: SeedBuyerID, BuyerName: "Amit Gupta", BuyerEmail: "amit@example.com", BuyerPhone: "+91 98370 33333", Message: "Can I visit this weekend?", Status: domain.InquiryContacted, CreatedAt: day(2024, time.June, 11)},
		{ID: "inq-3", PropertyID: "7", BuyerName: "Neha Singh", BuyerEmail: "neha@example.com", BuyerPhone: "+91 98370 44444", Message: "Need space for 12 people.", Status: domain.InquiryNew, CreatedAt: day(2024, time.June, 12)},
		{ID: "inq-4", PropertyID: "2", BuyerName: "Vikas Yadav", BuyerEmail: "vikas@example.com", BuyerPhone: "+91 98370 55555", Message: "Is parking covered?", Status: domain.InquiryClosed, CreatedAt: day(2024, time.June, 1)},
		{ID: "inq-5", PropertyID: "4", BuyerID: SeedBuyerID, BuyerName: "Amit Gupta", BuyerEmail: "amit@example.com", BuyerPhone: "+91 98370 33333", Message: "Please share the floor plan.", Status: domain.InquiryNew, CreatedAt: day(2024, time.June, 14)},
	}
}

// SeedFavorites - сохраненные объявления первого продавца, последние сохраненные в конце.
func SeedFavorites() []domain.Favorite {
	return []domain.Favorite{
		{UserID: SeedSellerID, PropertyID: "3", CreatedAt: day(2024, time.June, 3)},
		{UserID: SeedSellerID, PropertyID: "4", CreatedAt: day(2024, time.June, 4)},
		{UserID: SeedSellerID, PropertyID: "6", CreatedAt: day(2024, time.June, 6)},
	}
}
