package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"housing-cli/api"
)

// Session is the explicit replacement for the browser's ambient logged-in
// state: one file owned by the auth commands, read by everything that
// needs the viewer's identity.
type Session struct {
	Username  string   `json:"username"`
	User      api.User `json:"user"`
	CreatedAt string   `json:"created_at"`
}

func NewSession(user api.User, now time.Time) *Session {
	return &Session{
		Username:  user.Username,
		User:      user,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// LoadSession returns nil without error when no session exists.
func LoadSession() (*Session, error) {
	path, err := SessionPath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("session path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var session Session
	if err := json.NewDecoder(file).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func SaveSession(session *Session) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := SessionPath()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(session)
}

func ClearSession() error {
	path, err := SessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
