package browse

import (
	"reflect"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func testFacets(t *testing.T) Facets {
	t.Helper()
	day := time.Date(2023, 9, 15, 19, 21, 20, 0, time.UTC)
	facets := NewFacets(day)
	facets.CheckOut = day.AddDate(0, 0, 3)
	return facets
}

func TestComposeDefaultsAreSparse(t *testing.T) {
	filters, err := testFacets(t).Compose()
	if err != nil {
		t.Fatal(err)
	}

	if filters.NumOfPeople != 1 {
		t.Errorf("numOfPeople = %d, want 1", filters.NumOfPeople)
	}
	if filters.InDate != "2023-09-15" || filters.OutDate != "2023-09-18" {
		t.Errorf("dates = %s / %s", filters.InDate, filters.OutDate)
	}

	encoded, err := json.Marshal(filters)
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]any
	if err := json.Unmarshal(encoded, &body); err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"numOfPeople": true, "InDate": true, "OutDate": true}
	for key := range body {
		if !want[key] {
			t.Errorf("sentinel facet leaked into body: %q", key)
		}
	}
	for key := range want {
		if _, ok := body[key]; !ok {
			t.Errorf("mandatory field %q missing from body", key)
		}
	}
}

func TestComposeAreaRange(t *testing.T) {
	facets := testFacets(t)
	facets.RoomArea = "40-50"

	filters, err := facets.Compose()
	if err != nil {
		t.Fatal(err)
	}
	if filters.MinArea != 40 || filters.MaxArea != 50 {
		t.Errorf("area bounds = %d-%d, want 40-50", filters.MinArea, filters.MaxArea)
	}

	encoded, _ := json.Marshal(filters)
	var body map[string]any
	if err := json.Unmarshal(encoded, &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["roomArea"]; ok {
		t.Error("roomArea must not appear on the wire, only minArea/maxArea")
	}
	if _, ok := body["minArea"]; !ok {
		t.Error("minArea missing from body")
	}
	if _, ok := body["maxArea"]; !ok {
		t.Error("maxArea missing from body")
	}
}

func TestComposeSelectedFacets(t *testing.T) {
	facets := testFacets(t)
	facets.NumOfPeople = "4"
	facets.CountryID = 82
	facets.StateID = 2075
	facets.CityID = 52139
	facets.RoomType = "Private Room"
	facets.MaxCost = "300"
	facets.Heating = "false"
	facets.NumOfBeds = "2"

	filters, err := facets.Compose()
	if err != nil {
		t.Fatal(err)
	}
	if filters.CountryID != 82 || filters.StateID != 2075 || filters.CityID != 52139 {
		t.Errorf("location = %d/%d/%d", filters.CountryID, filters.StateID, filters.CityID)
	}
	if filters.RoomType != "Private Room" || filters.MaxCost != 300 || filters.NumOfBeds != 2 {
		t.Errorf("facets = %+v", filters)
	}
	if filters.Heating == nil || *filters.Heating != false {
		t.Error("heating=false must be sent explicitly, not omitted")
	}
	if !filters.HasLocation() {
		t.Error("HasLocation should hold with all three ids set")
	}
}

func TestComposeIsPureAndIdempotent(t *testing.T) {
	facets := testFacets(t)
	facets.RoomArea = "60-70"
	facets.RoomType = "House"
	before := facets

	first, err := facets.Compose()
	if err != nil {
		t.Fatal(err)
	}
	second, err := facets.Compose()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("composing twice diverged: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(facets, before) {
		t.Error("Compose mutated its facets")
	}
}

func TestComposeRejectsMalformedFacets(t *testing.T) {
	facets := testFacets(t)
	facets.NumOfPeople = "zero"
	if _, err := facets.Compose(); err == nil {
		t.Error("expected error for non-numeric people count")
	}

	facets = testFacets(t)
	facets.RoomArea = "50-40"
	if _, err := facets.Compose(); err == nil {
		t.Error("expected error for inverted area range")
	}

	facets = testFacets(t)
	facets.RoomArea = "wide"
	if _, err := facets.Compose(); err == nil {
		t.Error("expected error for malformed area range")
	}
}
