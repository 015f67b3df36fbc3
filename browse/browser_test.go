package browse

import (
	"context"
	"testing"
	"time"

	"housing-cli/api"
)

func manyRooms(n int) []api.Room {
	rooms := make([]api.Room, n)
	for i := range rooms {
		rooms[i] = room(i+1, float64(10+i))
	}
	return rooms
}

func searchFacets() Facets {
	return NewFacets(time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC))
}

func TestActivateOncePerActivation(t *testing.T) {
	service := &fakeService{catalog: manyRooms(3)}
	browser := NewBrowser(service, nil, nil, 10)

	ctx := context.Background()
	if err := browser.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if err := browser.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if service.catalogCalls != 1 {
		t.Errorf("initial fetch ran %d times in one activation, want 1", service.catalogCalls)
	}

	// Returning to the page fetches afresh.
	browser.Deactivate()
	if err := browser.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if service.catalogCalls != 2 {
		t.Errorf("re-activation fetched %d times total, want 2", service.catalogCalls)
	}
}

func TestGuestGetsCatalogTenantGetsRecommendations(t *testing.T) {
	service := &fakeService{
		catalog:         manyRooms(2),
		recommendations: manyRooms(1),
	}
	ctx := context.Background()

	guest := NewBrowser(service, nil, nil, 10)
	if err := guest.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if service.recsCalls != 0 {
		t.Error("guest activation must not hit the recommender")
	}

	viewer := NewBrowser(service, nil, tenant(42), 10)
	if err := viewer.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	if service.recsCalls != 1 {
		t.Errorf("tenant activation hit the recommender %d times, want 1", service.recsCalls)
	}
}

func TestApplyFiltersReplacesResultsAndResetsWindow(t *testing.T) {
	service := &fakeService{
		catalog:       manyRooms(95),
		searchResults: manyRooms(12),
	}
	browser := NewBrowser(service, nil, nil, 10)
	ctx := context.Background()

	if err := browser.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	browser.GoTo(5)

	if err := browser.ApplyFilters(ctx, searchFacets()); err != nil {
		t.Fatal(err)
	}
	if len(browser.Results()) != 12 {
		t.Errorf("results = %d rooms, want the 12 replacements", len(browser.Results()))
	}
	window := browser.Window()
	if window.Current != 1 || window.Last != 2 {
		t.Errorf("window after search = %+v, want current=1 last=2", window)
	}
	if browser.Searching() {
		t.Error("browser still searching after the response landed")
	}
}

func TestSearchFailureKeepsPreviousResults(t *testing.T) {
	service := &fakeService{catalog: manyRooms(30), searchErr: errRemote}
	browser := NewBrowser(service, nil, nil, 10)
	ctx := context.Background()

	if err := browser.Activate(ctx); err != nil {
		t.Fatal(err)
	}
	browser.GoTo(2)

	if err := browser.ApplyFilters(ctx, searchFacets()); err == nil {
		t.Fatal("expected search error")
	}
	if len(browser.Results()) != 30 {
		t.Errorf("results cleared to %d rooms on failure, want previous 30 kept", len(browser.Results()))
	}
	if browser.Window().Current != 2 {
		t.Errorf("window moved to %d on failed search, want 2", browser.Window().Current)
	}
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	service := &fakeService{catalog: manyRooms(5)}
	browser := NewBrowser(service, nil, nil, 10)

	first := browser.beginSearch()
	second := browser.beginSearch()

	if browser.finishSearch(second, manyRooms(7), nil) != true {
		t.Fatal("latest response must be applied")
	}
	// The older response arrives afterwards and must not overwrite.
	if browser.finishSearch(first, manyRooms(50), nil) {
		t.Fatal("stale response was applied")
	}
	if len(browser.Results()) != 7 {
		t.Errorf("results = %d rooms, want the 7 from the fresher search", len(browser.Results()))
	}
}

func TestSearchHistoryOnlyWithFullLocation(t *testing.T) {
	service := &fakeService{searchResults: manyRooms(1)}
	browser := NewBrowser(service, nil, tenant(42), 10)
	ctx := context.Background()

	facets := searchFacets()
	facets.CountryID = 82
	if err := browser.ApplyFilters(ctx, facets); err != nil {
		t.Fatal(err)
	}
	if len(service.historyCalls) != 0 {
		t.Error("search history fired without all three location facets")
	}

	facets.StateID = 2075
	facets.CityID = 52139
	if err := browser.ApplyFilters(ctx, facets); err != nil {
		t.Fatal(err)
	}
	if len(service.historyCalls) != 1 {
		t.Fatalf("search history fired %d times, want 1", len(service.historyCalls))
	}
	history := service.historyCalls[0]
	if history.CountryID != 82 || history.StateID != 2075 || history.CityID != 52139 {
		t.Errorf("history = %+v", history)
	}
	if service.historyViewer != 42 {
		t.Errorf("history viewer = %d, want 42", service.historyViewer)
	}
}

func TestGuestNeverFeedsSearchHistory(t *testing.T) {
	service := &fakeService{searchResults: manyRooms(1)}
	browser := NewBrowser(service, nil, nil, 10)

	facets := searchFacets()
	facets.CountryID = 1
	facets.StateID = 2
	facets.CityID = 3
	if err := browser.ApplyFilters(context.Background(), facets); err != nil {
		t.Fatal(err)
	}
	if len(service.historyCalls) != 0 {
		t.Error("guest search fed the recommender")
	}
}

func TestVisibleSlicesCurrentPage(t *testing.T) {
	service := &fakeService{catalog: manyRooms(95)}
	browser := NewBrowser(service, nil, nil, 10)
	if err := browser.Activate(context.Background()); err != nil {
		t.Fatal(err)
	}

	browser.GoTo(10)
	visible := browser.Visible()
	if len(visible) != 5 {
		t.Errorf("last page holds %d rooms, want 5", len(visible))
	}

	browser.GoFirst()
	if len(browser.Visible()) != 10 {
		t.Errorf("first page holds %d rooms, want 10", len(browser.Visible()))
	}
}

func TestInvalidFacetsNeverReachTheWire(t *testing.T) {
	service := &fakeService{}
	browser := NewBrowser(service, nil, nil, 10)

	facets := searchFacets()
	facets.NumOfPeople = "many"
	err := browser.ApplyFilters(context.Background(), facets)
	if !IsValidation(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if service.searchCalls != 0 {
		t.Error("malformed facets were sent to the server")
	}
}
