package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) GetUserByUsername(ctx context.Context, username string) (User, error) {
	path := "/auth/getUserByUsername/" + url.PathEscape(username)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return User{}, err
	}

	var resp struct {
		User User `json:"user"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return User{}, err
	}
	if resp.User.ID == 0 {
		return User{}, fmt.Errorf("user %q not found", username)
	}
	return resp.User, nil
}

func (c *Client) GetUser(ctx context.Context, userID int) (User, error) {
	path := "/auth/getUser/" + strconv.Itoa(userID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return User{}, err
	}

	var resp struct {
		User User `json:"user"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

func (c *Client) GetAllUsers(ctx context.Context) ([]User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/getAllUsers", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Users []User `json:"users"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// SetActive flips a landlord's verification flag and returns the updated
// user as reported by the server.
func (c *Client) SetActive(ctx context.Context, userID int, active bool) (User, error) {
	path := "/auth/activate/" + strconv.Itoa(userID)
	body := struct {
		Active bool `json:"active"`
	}{Active: active}

	req, err := c.newRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := c.doJSON(req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}
