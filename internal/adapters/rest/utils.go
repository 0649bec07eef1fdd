package rest

import (
	"encoding/json"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// parseStringSlice принимает и повторяющиеся параметры, и значения через запятую:
// ?cities=A&cities=B и ?cities=A,B дают одно и то же.
func parseStringSlice(query url.Values, key string) []string {
	var out []string
	for _, raw := range query[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIntSlice(query url.Values, key string, errs domain.ValidationErrors) []int {
	var out []int
	for _, s := range parseStringSlice(query, key) {
		v, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
		if err != nil || v < 0 {
			errs[key] = "Must be a list of non-negative integers"
			return nil
		}
		out = append(out, v)
	}
	return out
}

func parseFloat(query url.Values, key string, errs domain.ValidationErrors) *float64 {
	s := strings.TrimSpace(query.Get(key))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) {
		errs[key] = "Must be a non-negative number"
		return nil
	}
	return &v
}

// parseBrowseState собирает состояние каталога из query-параметров.
// Неизвестные значения перечислений - ошибка валидации, а не молчаливый пропуск.
func parseBrowseState(query url.Values, pageSize int) (domain.BrowseState, error) {
	errs := domain.ValidationErrors{}
	filters := domain.FilterState{
		Cities:    parseStringSlice(query, "cities"),
		Amenities: parseStringSlice(query, "amenities"),
		Bedrooms:  parseIntSlice(query, "bedrooms", errs),
		Bathrooms: parseIntSlice(query, "bathrooms", errs),
	}

	for _, s := range parseStringSlice(query, "propertyTypes") {
		t := domain.PropertyType(s)
		if !t.IsValid() {
			errs["propertyTypes"] = "Unknown property type " + strconv.Quote(s)
			break
		}
		filters.PropertyTypes = append(filters.PropertyTypes, t)
	}
	for _, s := range parseStringSlice(query, "listingTypes") {
		t := domain.ListingType(s)
		if !t.IsValid() {
			errs["listingTypes"] = "Unknown listing type " + strconv.Quote(s)
			break
		}
		filters.ListingTypes = append(filters.ListingTypes, t)
	}

	switch m := domain.RoomsMatch(query.Get("roomsMatch")); m {
	case "", domain.RoomsMatchExact:
		filters.RoomsMatch = domain.RoomsMatchExact
	case domain.RoomsMatchAtLeast:
		filters.RoomsMatch = m
	default:
		errs["roomsMatch"] = "Must be exact or at-least"
	}

	minPrice := parseFloat(query, "priceMin", errs)
	maxPrice := parseFloat(query, "priceMax", errs)
	if minPrice != nil || maxPrice != nil {
		r := domain.PriceRange{Min: 0, Max: math.Inf(1)}
		if minPrice != nil {
			r.Min = *minPrice
		}
		if maxPrice != nil {
			r.Max = *maxPrice
		}
		if r.Min > r.Max {
			errs["priceMax"] = "Must not be less than priceMin"
		}
		filters.PriceRange = &r
	}

	state := domain.NewBrowseState(pageSize).WithFilters(filters)

	if s := query.Get("sort"); s != "" {
		key := domain.SortKey(s)
		if !key.IsValid() {
			errs["sort"] = "Unknown sort key " + strconv.Quote(s)
		}
		state = state.WithSort(key)
	}

	if s := query.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			errs["page"] = "Must be a positive integer"
		}
		state = state.WithPage(page)
	}

	return state, errs.OrNil()
}
