package storage

import (
	"testing"
	"time"

	"housing-cli/api"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	loaded, err := LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != nil {
		t.Fatal("session loaded before one was saved")
	}

	user := api.User{ID: 42, Username: "maria", IsTenant: true}
	if err := SaveSession(NewSession(user, time.Now())); err != nil {
		t.Fatal(err)
	}

	loaded, err = LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if loaded == nil || loaded.User.ID != 42 || loaded.Username != "maria" {
		t.Fatalf("session = %+v", loaded)
	}

	if err := ClearSession(); err != nil {
		t.Fatal(err)
	}
	loaded, err = LoadSession()
	if err != nil {
		t.Fatal(err)
	}
	if loaded != nil {
		t.Error("session survived ClearSession")
	}
	// Clearing twice is fine.
	if err := ClearSession(); err != nil {
		t.Fatal(err)
	}
}
