package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"housing-cli/api"
	"housing-cli/browse"
	"housing-cli/storage"
)

func parseDateInput(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}
	parsed, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// sessionUser returns the logged-in user, or nil when browsing as a guest.
func sessionUser() *api.User {
	session, err := storage.LoadSession()
	if err != nil || session == nil {
		return nil
	}
	user := session.User
	return &user
}

func requireSessionUser() (*api.User, error) {
	user := sessionUser()
	if user == nil {
		return nil, fmt.Errorf("not logged in (run 'housing auth login')")
	}
	return user, nil
}

func pageSize() int {
	if cfg.PageSize > 0 {
		return cfg.PageSize
	}
	return browse.DefaultPerPage
}

func defaultPeople() string {
	if cfg.DefaultPeople != "" {
		return cfg.DefaultPeople
	}
	return "1"
}

func formatRating(room api.Room) string {
	if room.ReviewScoresRating > 0 {
		return fmt.Sprintf("%.1f/5 (%d reviews)", room.ReviewScoresRating, room.NumberOfReviews)
	}
	return fmt.Sprintf("no rating (%d reviews)", room.NumberOfReviews)
}

func printRoomList(rooms []api.Room, window browse.Window) {
	fmt.Printf("Page %d of %d\n", window.Current, window.Last)
	if len(rooms) == 0 {
		fmt.Println("No rooms to show.")
		return
	}
	for _, room := range rooms {
		fmt.Printf("  #%-5d %7.2f eur/night  %-14s %d beds  %s\n",
			room.ID, room.Cost, room.RoomType, room.NumOfBeds, formatRating(room))
	}
}
