package domain

import (
	"fmt"
	"strings"
	"time"
)

// SubmissionStep - шаг формы добавления объявления
type SubmissionStep string

const (
	StepBasic    SubmissionStep = "basic"
	StepDetails  SubmissionStep = "details"
	StepLocation SubmissionStep = "location"
	StepImages   SubmissionStep = "images"
	StepReview   SubmissionStep = "review"
)

// SubmissionSteps - фиксированный порядок шагов.
var SubmissionSteps = []SubmissionStep{StepBasic, StepDetails, StepLocation, StepImages, StepReview}

var submissionStepLabels = map[SubmissionStep]string{
	StepBasic:    "Basic Info",
	StepDetails:  "Details",
	StepLocation: "Location",
	StepImages:   "Images",
	StepReview:   "Review",
}

func (s SubmissionStep) Label() string {
	return submissionStepLabels[s]
}

const (
	MinBedrooms  = 1
	MinBathrooms = 1
	MinArea      = 100
	MinPrice     = 0
	MaxImages    = 10
)

// SubmissionDraft - незавершенная форма нового объявления.
type SubmissionDraft struct {
	// basic
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PropertyType PropertyType `json:"propertyType"`
	ListingType  ListingType  `json:"listingType"`

	// details
	Bedrooms          int      `json:"bedrooms"`
	Bathrooms         int      `json:"bathrooms"`
	Area              float64  `json:"area"`
	Price             float64  `json:"price"`
	SelectedAmenities []string `json:"selectedAmenities"`

	// location
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`

	// images: ссылки на загруженные, но еще не сохраненные файлы
	Images []string `json:"images"`
}

// NewSubmissionDraft возвращает черновик со значениями формы по умолчанию.
func NewSubmissionDraft() SubmissionDraft {
	return SubmissionDraft{
		Bedrooms:          1,
		Bathrooms:         1,
		Area:              1000,
		Price:             200000,
		SelectedAmenities: []string{},
		Images:            []string{},
	}
}

func (d SubmissionDraft) clone() SubmissionDraft {
	out := d
	out.SelectedAmenities = append([]string{}, d.SelectedAmenities...)
	out.Images = append([]string{}, d.Images...)
	return out
}

func required(errs ValidationErrors, field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = msg
	}
}

// ValidateStep проверяет только поля указанного шага.
func (d SubmissionDraft) ValidateStep(step SubmissionStep) ValidationErrors {
	errs := ValidationErrors{}

	switch step {
	case StepBasic:
		required(errs, "title", d.Title, "Title is required")
		required(errs, "description", d.Description, "Description is required")
		if d.PropertyType == "" {
			errs["propertyType"] = "Property type is required"
		} else if !d.PropertyType.IsValid() {
			errs["propertyType"] = fmt.Sprintf("Unknown property type %q", d.PropertyType)
		}
		if d.ListingType == "" {
			errs["listingType"] = "Listing type is required"
		} else if !d.ListingType.IsValid() {
			errs["listingType"] = fmt.Sprintf("Unknown listing type %q", d.ListingType)
		}

	case StepDetails:
		if d.Bedrooms < MinBedrooms {
			errs["bedrooms"] = fmt.Sprintf("Bedrooms must be at least %d", MinBedrooms)
		}
		if d.Bathrooms < MinBathrooms {
			errs["bathrooms"] = fmt.Sprintf("Bathrooms must be at least %d", MinBathrooms)
		}
		if d.Area < MinArea {
			errs["area"] = fmt.Sprintf("Area must be at least %d sq ft", MinArea)
		}
		if d.Price < MinPrice {
			errs["price"] = "Price cannot be negative"
		}
		for _, id := range d.SelectedAmenities {
			if _, ok := LookupAmenity(id); !ok {
				errs["selectedAmenities"] = fmt.Sprintf("Unknown amenity %q", id)
				break
			}
		}

	case StepLocation:
		required(errs, "address", d.Address, "Address is required")
		required(errs, "city", d.City, "City is required")
		required(errs, "state", d.State, "State is required")
		required(errs, "zipcode", d.Zipcode, "Zipcode is required")

	case StepImages:
		if len(d.Images) > MaxImages {
			errs["images"] = fmt.Sprintf("At most %d images are allowed", MaxImages)
		}
	}

	return errs
}

// Validate - полная проверка перед отправкой, по всем шагам.
func (d SubmissionDraft) Validate() error {
	all := ValidationErrors{}
	for _, step := range SubmissionSteps {
		for field, msg := range d.ValidateStep(step) {
			all[field] = msg
		}
	}
	return all.OrNil()
}

// ToProperty собирает объявление из проверенного черновика.
// Новое объявление всегда уходит на модерацию.
func (d SubmissionDraft) ToProperty(id, sellerID string, now time.Time) Property {
	amenities := make([]Amenity, 0, len(d.SelectedAmenities))
	seen := make(map[string]struct{}, len(d.SelectedAmenities))
	for _, amenityID := range d.SelectedAmenities {
		if _, dup := seen[amenityID]; dup {
			continue
		}
		if a, ok := LookupAmenity(amenityID); ok {
			seen[amenityID] = struct{}{}
			amenities = append(amenities, a)
		}
	}

	return Property{
		ID:           id,
		Title:        strings.TrimSpace(d.Title),
		Description:  strings.TrimSpace(d.Description),
		PropertyType: d.PropertyType,
		ListingType:  d.ListingType,
		Price:        d.Price,
		Location:     strings.TrimSpace(d.City),
		City:         strings.TrimSpace(d.City),
		State:        strings.TrimSpace(d.State),
		Zipcode:      strings.TrimSpace(d.Zipcode),
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		Area:         d.Area,
		Amenities:    amenities,
		Images:       append([]string{}, d.Images...),
		ListingDate:  now,
		ViewCount:    0,
		SellerID:     sellerID,
		Status:       StatusPending,
	}
}
