package domain

import "math"

// Cities - районы Барели, в которых публикуются объявления.
var Cities = []string{
	"Civil Lines",
	"Rajendra Nagar",
	"Kotwali",
	"Pilibhit Bypass",
	"CB Ganj",
	"Izatnagar",
	"Subhash Nagar",
	"Rampur Garden",
	"Deen Dayal Puram",
	"Satellite Township",
}

// DictionaryItem - универсальная структура для элемента справочника
type DictionaryItem struct {
	SystemName  string `json:"systemName"`
	DisplayName string `json:"displayName"`
}

var PropertyTypeLabels = []DictionaryItem{
	{SystemName: string(PropertyTypeApartment), DisplayName: "Apartment"},
	{SystemName: string(PropertyTypeHouse), DisplayName: "House"},
	{SystemName: string(PropertyTypeVilla), DisplayName: "Villa"},
	{SystemName: string(PropertyTypePlot), DisplayName: "Plot"},
	{SystemName: string(PropertyTypeCommercial), DisplayName: "Commercial"},
	{SystemName: string(PropertyTypeOffice), DisplayName: "Office Space"},
	{SystemName: string(PropertyTypeCoWorking), DisplayName: "Co-Working Space"},
	{SystemName: string(PropertyTypeMeetingRoom), DisplayName: "Meeting Room"},
}

var ListingTypeLabels = []DictionaryItem{
	{SystemName: string(ListingTypeSale), DisplayName: "For Sale"},
	{SystemName: string(ListingTypeRent), DisplayName: "For Rent"},
}

// AmenityCatalog - полный справочник удобств. ID уникальны.
var AmenityCatalog = []Amenity{
	{ID: "ac", Name: "AC"},
	{ID: "parking", Name: "Parking"},
	{ID: "balcony", Name: "Balcony"},
	{ID: "pool", Name: "Swimming Pool"},
	{ID: "gym", Name: "Gym"},
	{ID: "security", Name: "24/7 Security"},
	{ID: "garden", Name: "Garden"},
	{ID: "elevator", Name: "Elevator"},
	{ID: "wifi", Name: "WiFi"},
	{ID: "kitchen", Name: "Modular Kitchen"},
	{ID: "power-backup", Name: "Power Backup"},
	{ID: "cctv", Name: "CCTV"},
	{ID: "projector", Name: "Projector"},
	{ID: "tea-coffee", Name: "Tea/Coffee"},
	{ID: "reception", Name: "Reception"},
	{ID: "meeting-room", Name: "Meeting Room"},
	{ID: "pantry", Name: "Pantry"},
}

// LookupAmenity ищет удобство в справочнике.
func LookupAmenity(id string) (Amenity, bool) {
	for _, a := range AmenityCatalog {
		if a.ID == id {
			return a, true
		}
	}
	return Amenity{}, false
}

// PriceRangeOption - готовый диапазон цен для панели фильтров
type PriceRangeOption struct {
	Range PriceRange `json:"range"`
	Label string     `json:"label"`
}

// PriceRangeOptions - диапазоны в рупиях. У последнего нет верхней границы.
var PriceRangeOptions = []PriceRangeOption{
	{Range: PriceRange{Min: 0, Max: 10000}, Label: "Under ₹10K"},
	{Range: PriceRange{Min: 10000, Max: 50000}, Label: "₹10K - ₹50K"},
	{Range: PriceRange{Min: 50000, Max: 100000}, Label: "₹50K - ₹1L"},
	{Range: PriceRange{Min: 100000, Max: 500000}, Label: "₹1L - ₹5L"},
	{Range: PriceRange{Min: 500000, Max: 1000000}, Label: "₹5L - ₹10L"},
	{Range: PriceRange{Min: 1000000, Max: 5000000}, Label: "₹10L - ₹50L"},
	{Range: PriceRange{Min: 5000000, Max: 10000000}, Label: "₹50L - ₹1Cr"},
	{Range: PriceRange{Min: 10000000, Max: math.Inf(1)}, Label: "₹1Cr+"},
}
