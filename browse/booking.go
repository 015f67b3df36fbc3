package browse

import (
	"context"
	"log/slog"
	"time"

	"housing-cli/api"
)

type BookingService interface {
	AddBooking(ctx context.Context, booking api.BookingRequest) (api.Booking, error)
	DeleteBooking(ctx context.Context, bookingID int) (string, error)
	GetUserBookings(ctx context.Context, viewerID int) ([]api.Booking, error)
}

// BookingCache mirrors the viewer's booking list locally, e.g. in the
// bookings database. Optional.
type BookingCache interface {
	PutBooking(booking api.Booking) error
	RemoveBooking(bookingID int) error
}

// BookingManager creates and cancels bookings for one viewer and keeps the
// viewer's local booking list. Cancellation is optimistic: the booking
// leaves the local list before the backend answers, and a failed remote
// delete is not reconciled back in.
type BookingManager struct {
	service BookingService
	cache   BookingCache
	log     *slog.Logger

	caps     Capabilities
	viewerID int
	bookings []api.Booking
}

func NewBookingManager(service BookingService, cache BookingCache, logger *slog.Logger, viewer *api.User) *BookingManager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &BookingManager{
		service: service,
		cache:   cache,
		log:     logger,
		caps:    CapabilitiesOf(RoleOf(viewer)),
	}
	if viewer != nil {
		m.viewerID = viewer.ID
	}
	return m
}

func (m *BookingManager) Bookings() []api.Booking { return m.bookings }

type bookingInput struct {
	RoomID   int    `validate:"required,gt=0"`
	ViewerID int    `validate:"required,gt=0"`
	InDate   string `validate:"required,datetime=2006-01-02"`
	OutDate  string `validate:"required,datetime=2006-01-02"`
}

// Create books the room for the viewer's stay. Guests cannot book: the
// failure is local and the request never reaches the wire.
func (m *BookingManager) Create(ctx context.Context, roomID int, checkIn, checkOut time.Time) (api.Booking, error) {
	if !m.caps.CanBook {
		return api.Booking{}, validationErr("only tenants can book a room")
	}

	input := bookingInput{
		RoomID:   roomID,
		ViewerID: m.viewerID,
		InDate:   DateString(checkIn),
		OutDate:  DateString(checkOut),
	}
	if err := checkStruct(input); err != nil {
		return api.Booking{}, err
	}
	if input.OutDate < input.InDate {
		return api.Booking{}, validationErr("check-out date is before check-in date")
	}

	booking, err := m.service.AddBooking(ctx, api.BookingRequest{
		InDate:  input.InDate,
		OutDate: input.OutDate,
		RoomID:  roomID,
		UserID:  m.viewerID,
	})
	if err != nil {
		return api.Booking{}, err
	}

	m.bookings = append(m.bookings, booking)
	if m.cache != nil {
		if err := m.cache.PutBooking(booking); err != nil {
			m.log.Warn("caching booking failed", "booking", booking.ID, "err", err)
		}
	}
	return booking, nil
}

// Cancel removes the booking from the local list immediately and then
// issues the remote delete. The remote outcome does not touch the local
// list again: if the delete fails the two diverge, which is the accepted
// trade-off. The server's message is returned when there is one.
func (m *BookingManager) Cancel(ctx context.Context, bookingID int) string {
	m.removeLocal(bookingID)

	message, err := m.service.DeleteBooking(ctx, bookingID)
	if err != nil {
		m.log.Warn("remote booking delete failed", "booking", bookingID, "err", err)
		return ""
	}
	return message
}

func (m *BookingManager) removeLocal(bookingID int) {
	kept := m.bookings[:0]
	for _, booking := range m.bookings {
		if booking.ID != bookingID {
			kept = append(kept, booking)
		}
	}
	m.bookings = kept

	if m.cache != nil {
		if err := m.cache.RemoveBooking(bookingID); err != nil {
			m.log.Warn("evicting cached booking failed", "booking", bookingID, "err", err)
		}
	}
}

// Refresh replaces the local list with the backend's view of the viewer's
// bookings. On failure the previous list stays.
func (m *BookingManager) Refresh(ctx context.Context) error {
	if m.viewerID == 0 {
		return validationErr("no viewer logged in")
	}
	bookings, err := m.service.GetUserBookings(ctx, m.viewerID)
	if err != nil {
		m.log.Warn("fetching bookings failed, keeping previous list", "err", err)
		return err
	}
	m.bookings = bookings
	if m.cache != nil {
		for _, booking := range bookings {
			if err := m.cache.PutBooking(booking); err != nil {
				m.log.Warn("caching booking failed", "booking", booking.ID, "err", err)
				break
			}
		}
	}
	return nil
}
