package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"housing-cli/api"
)

// BookingStore is the local mirror of the viewer's bookings plus the log
// of recorded detail-page visits. It backs the optimistic cancel path: a
// cancelled booking disappears from here before the backend answers.
type BookingStore struct {
	db *sql.DB
}

func OpenBookingStore() (*BookingStore, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := BookingsPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BookingStore{db: db}, nil
}

func (s *BookingStore) Close() error {
	return s.db.Close()
}

func ensureSchema(db *sql.DB) error {
	createBookings := `
CREATE TABLE IF NOT EXISTS bookings (
  id INTEGER PRIMARY KEY,
  room_id INTEGER,
  user_id INTEGER,
  in_date TEXT,
  out_date TEXT,
  cached_at TEXT
);`
	if _, err := db.Exec(createBookings); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_in_date ON bookings(in_date);"); err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}

	createVisits := `
CREATE TABLE IF NOT EXISTS visits (
  user_id INTEGER,
  room_id INTEGER,
  visited_at TEXT
);`
	if _, err := db.Exec(createVisits); err != nil {
		return fmt.Errorf("create visits table: %w", err)
	}
	return nil
}

// PutBooking inserts or refreshes one cached booking.
func (s *BookingStore) PutBooking(booking api.Booking) error {
	query := `
INSERT INTO bookings (id, room_id, user_id, in_date, out_date, cached_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  room_id = excluded.room_id,
  user_id = excluded.user_id,
  in_date = excluded.in_date,
  out_date = excluded.out_date,
  cached_at = excluded.cached_at;`

	_, err := s.db.Exec(
		query,
		booking.ID,
		booking.RoomID,
		booking.UserID,
		booking.InDate,
		booking.OutDate,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *BookingStore) RemoveBooking(bookingID int) error {
	_, err := s.db.Exec("DELETE FROM bookings WHERE id = ?", bookingID)
	return err
}

func (s *BookingStore) ListBookings(userID int) ([]api.Booking, error) {
	rows, err := s.db.Query(`
SELECT id, room_id, user_id, in_date, out_date
FROM bookings
WHERE user_id = ?
ORDER BY in_date, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []api.Booking{}
	for rows.Next() {
		var booking api.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.UserID,
			&booking.InDate,
			&booking.OutDate,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

// Visit is one locally logged detail-page visit.
type Visit struct {
	UserID    int    `json:"user_id"`
	RoomID    int    `json:"room_id"`
	VisitedAt string `json:"visited_at"`
}

// VisitRecorded appends to the local visits log. Satisfies the browse
// package's visit sink; errors are swallowed because the log is advisory.
func (s *BookingStore) VisitRecorded(viewerID, roomID int) {
	_, _ = s.db.Exec(
		"INSERT INTO visits (user_id, room_id, visited_at) VALUES (?, ?, ?)",
		viewerID,
		roomID,
		time.Now().UTC().Format(time.RFC3339),
	)
}

func (s *BookingStore) ListVisits(userID int) ([]Visit, error) {
	rows, err := s.db.Query(`
SELECT user_id, room_id, visited_at
FROM visits
WHERE user_id = ?
ORDER BY visited_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var visit Visit
		if err := rows.Scan(&visit.UserID, &visit.RoomID, &visit.VisitedAt); err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}
