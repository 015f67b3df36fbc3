package browse

import (
	"context"
	"errors"

	"housing-cli/api"
)

// fakeService scripts the backend for the engine tests.
type fakeService struct {
	catalog         []api.Room
	recommendations []api.Room
	searchResults   []api.Room

	catalogErr error
	recsErr    error
	searchErr  error

	catalogCalls int
	recsCalls    int
	searchCalls  int

	searchBodies  []api.SearchFilters
	historyCalls  []api.SearchHistoryRequest
	historyViewer int

	visitCalls []api.VisitRequest
	visitErr   error

	bookings  []api.Booking
	addErr    error
	deleteErr error
	deleted   []int
	nextID    int

	activeCalls []int
	activeErr   error

	reviews   []api.Review
	reviewErr error
}

func (f *fakeService) GetAllRooms(ctx context.Context) ([]api.Room, error) {
	f.catalogCalls++
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return append([]api.Room(nil), f.catalog...), nil
}

func (f *fakeService) GetRecommendations(ctx context.Context, viewerID int) ([]api.Room, error) {
	f.recsCalls++
	if f.recsErr != nil {
		return nil, f.recsErr
	}
	return append([]api.Room(nil), f.recommendations...), nil
}

func (f *fakeService) GetAvailableRoomsByFilters(ctx context.Context, filters api.SearchFilters) ([]api.Room, error) {
	f.searchCalls++
	f.searchBodies = append(f.searchBodies, filters)
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return append([]api.Room(nil), f.searchResults...), nil
}

func (f *fakeService) AddSearchHistory(ctx context.Context, viewerID int, history api.SearchHistoryRequest) error {
	f.historyViewer = viewerID
	f.historyCalls = append(f.historyCalls, history)
	return nil
}

func (f *fakeService) AddVisit(ctx context.Context, visit api.VisitRequest) (string, error) {
	f.visitCalls = append(f.visitCalls, visit)
	if f.visitErr != nil {
		return "", f.visitErr
	}
	return "visit recorded", nil
}

func (f *fakeService) AddBooking(ctx context.Context, booking api.BookingRequest) (api.Booking, error) {
	if f.addErr != nil {
		return api.Booking{}, f.addErr
	}
	f.nextID++
	created := api.Booking{
		ID:      f.nextID,
		InDate:  booking.InDate,
		OutDate: booking.OutDate,
		RoomID:  booking.RoomID,
		UserID:  booking.UserID,
	}
	f.bookings = append(f.bookings, created)
	return created, nil
}

func (f *fakeService) DeleteBooking(ctx context.Context, bookingID int) (string, error) {
	f.deleted = append(f.deleted, bookingID)
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return "booking deleted", nil
}

func (f *fakeService) GetUserBookings(ctx context.Context, viewerID int) ([]api.Booking, error) {
	return append([]api.Booking(nil), f.bookings...), nil
}

func (f *fakeService) AddReview(ctx context.Context, review api.Review) (api.Review, error) {
	if f.reviewErr != nil {
		return api.Review{}, f.reviewErr
	}
	review.ID = 1
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeService) SetActive(ctx context.Context, userID int, active bool) (api.User, error) {
	f.activeCalls = append(f.activeCalls, userID)
	if f.activeErr != nil {
		return api.User{}, f.activeErr
	}
	return api.User{ID: userID, Active: active, IsLandlord: true}, nil
}

var errRemote = errors.New("remote unavailable")

func room(id int, cost float64) api.Room {
	return api.Room{ID: id, Cost: cost}
}

func tenant(id int) *api.User {
	return &api.User{ID: id, Username: "tenant", Name: "Maria", Lastname: "Pap", IsTenant: true}
}
