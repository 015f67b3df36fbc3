package browse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"housing-cli/api"
)

// Sentinel values for the optional facets. A facet left at its sentinel
// means "no constraint" and is omitted from the composed search body.
const (
	AnySentinel  = "Any"
	ZeroSentinel = "0"
)

// Facets mirrors the search form controls: every optional facet holds
// either its sentinel or a concrete selection, exactly as the selects on
// the page do. People count and the stay dates are obligatory.
type Facets struct {
	NumOfPeople string

	CheckIn  time.Time
	CheckOut time.Time

	CountryID int
	StateID   int
	CityID    int

	RoomType       string // "Any", "Private Room", "Shared Room", "House"
	MaxCost        string // "0" or a euro amount
	Heating        string // "Any", "true", "false"
	NumOfBeds      string
	NumOfBathrooms string
	NumOfBedrooms  string
	RoomArea       string // "0" or a "min-max" range such as "40-50"
}

// NewFacets returns the form's defaults: one person, today's dates, every
// optional facet at its sentinel.
func NewFacets(now time.Time) Facets {
	return Facets{
		NumOfPeople:    "1",
		CheckIn:        now,
		CheckOut:       now,
		RoomType:       AnySentinel,
		MaxCost:        ZeroSentinel,
		Heating:        AnySentinel,
		NumOfBeds:      ZeroSentinel,
		NumOfBathrooms: ZeroSentinel,
		NumOfBedrooms:  ZeroSentinel,
		RoomArea:       ZeroSentinel,
	}
}

// Compose builds the sparse search body. Facets at their sentinel are left
// out entirely; the room-area range decomposes into its two bounds. Compose
// never mutates the facets and two identical facet sets always compose to
// the same body.
func (f Facets) Compose() (api.SearchFilters, error) {
	people, err := strconv.Atoi(f.NumOfPeople)
	if err != nil || people < 1 {
		return api.SearchFilters{}, fmt.Errorf("invalid number of people %q", f.NumOfPeople)
	}

	filters := api.SearchFilters{
		NumOfPeople: people,
		InDate:      DateString(f.CheckIn),
		OutDate:     DateString(f.CheckOut),
	}

	if f.CountryID != 0 {
		filters.CountryID = f.CountryID
	}
	if f.StateID != 0 {
		filters.StateID = f.StateID
	}
	if f.CityID != 0 {
		filters.CityID = f.CityID
	}
	if f.RoomType != AnySentinel && f.RoomType != "" {
		filters.RoomType = f.RoomType
	}
	if f.MaxCost != ZeroSentinel && f.MaxCost != "" {
		cost, err := strconv.Atoi(f.MaxCost)
		if err != nil {
			return api.SearchFilters{}, fmt.Errorf("invalid max cost %q", f.MaxCost)
		}
		filters.MaxCost = cost
	}
	if f.Heating != AnySentinel && f.Heating != "" {
		heating := f.Heating == "true"
		filters.Heating = &heating
	}
	if filters.NumOfBeds, err = optionalCount("beds", f.NumOfBeds); err != nil {
		return api.SearchFilters{}, err
	}
	if filters.NumOfBathrooms, err = optionalCount("bathrooms", f.NumOfBathrooms); err != nil {
		return api.SearchFilters{}, err
	}
	if filters.NumOfBedrooms, err = optionalCount("bedrooms", f.NumOfBedrooms); err != nil {
		return api.SearchFilters{}, err
	}
	if f.RoomArea != ZeroSentinel && f.RoomArea != "" {
		min, max, err := parseAreaRange(f.RoomArea)
		if err != nil {
			return api.SearchFilters{}, err
		}
		filters.MinArea = min
		filters.MaxArea = max
	}

	return filters, nil
}

func optionalCount(name, value string) (int, error) {
	if value == ZeroSentinel || value == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil || count < 0 {
		return 0, fmt.Errorf("invalid number of %s %q", name, value)
	}
	return count, nil
}

func parseAreaRange(value string) (int, int, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid room area %q (expected min-max)", value)
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid room area %q (expected min-max)", value)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid room area %q (expected min-max)", value)
	}
	if max < min {
		return 0, 0, fmt.Errorf("invalid room area %q (max below min)", value)
	}
	return min, max, nil
}

// DateString normalizes any time value to the calendar-date form the
// backend exchanges everywhere.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
