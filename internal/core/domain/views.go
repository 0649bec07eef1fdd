package domain

import "slices"

const SimilarPropertiesLimit = 3

// PropertyDetails - карточка объявления для публичной страницы.
// Seller может быть nil: отсутствие продавца не считается ошибкой.
type PropertyDetails struct {
	Property Property   `json:"property"`
	Seller   *User      `json:"seller"`
	Similar  []Property `json:"similar"`
}

// SimilarProperties - одобренные объявления того же типа, самые новые первыми.
func SimilarProperties(all []Property, target Property, limit int) []Property {
	candidates := make([]Property, 0)
	for _, p := range all {
		if p.ID == target.ID || p.Status != StatusApproved || p.PropertyType != target.PropertyType {
			continue
		}
		candidates = append(candidates, p)
	}
	candidates = SortProperties(candidates, SortNewest)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// FilterOptions - справочники для панели фильтров каталога.
type FilterOptions struct {
	Cities        []string           `json:"cities"`
	PropertyTypes []DictionaryItem   `json:"propertyTypes"`
	ListingTypes  []DictionaryItem   `json:"listingTypes"`
	Amenities     []Amenity          `json:"amenities"`
	SortKeys      []DictionaryItem   `json:"sortKeys"`
	PriceRanges   []PriceRangeOption `json:"priceRanges"`
	PageSize      int                `json:"pageSize"`
}

func NewFilterOptions(pageSize int) FilterOptions {
	return FilterOptions{
		Cities:        slices.Clone(Cities),
		PropertyTypes: slices.Clone(PropertyTypeLabels),
		ListingTypes:  slices.Clone(ListingTypeLabels),
		Amenities:     slices.Clone(AmenityCatalog),
		SortKeys:      slices.Clone(SortKeyLabels),
		PriceRanges:   slices.Clone(PriceRangeOptions),
		PageSize:      pageSize,
	}
}

// SubmissionSnapshot - состояние формы подачи для отображения клиенту.
type SubmissionSnapshot struct {
	ID         string           `json:"id"`
	SellerID   string           `json:"sellerId"`
	Step       SubmissionStep   `json:"step"`
	StepIndex  int              `json:"stepIndex"`
	Steps      []SubmissionStep `json:"steps"`
	Strict     bool             `json:"strict"`
	Draft      SubmissionDraft  `json:"draft"`
	Submitted  bool             `json:"submitted"`
	PropertyID string           `json:"propertyId,omitempty"`
}

func (w *SubmissionWorkflow) Snapshot() SubmissionSnapshot {
	s := SubmissionSnapshot{
		ID:        w.id,
		SellerID:  w.sellerID,
		Step:      w.Step(),
		StepIndex: w.step,
		Steps:     slices.Clone(SubmissionSteps),
		Strict:    w.strict,
		Draft:     w.Draft(),
		Submitted: w.submitted != nil,
	}
	if w.submitted != nil {
		s.PropertyID = w.submitted.ID
	}
	return s
}
