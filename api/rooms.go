package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

func (c *Client) GetAllRooms(ctx context.Context) ([]Room, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/rooms/getAllRooms", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Rooms []Room `json:"rooms"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (c *Client) GetAvailableRoomsByFilters(ctx context.Context, filters SearchFilters) ([]Room, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/rooms/getAvailableRoomsByFilters", filters)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Rooms []Room `json:"rooms"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID int) (Room, error) {
	path := "/rooms/viewroom/" + strconv.Itoa(roomID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return Room{}, err
	}

	var resp struct {
		Room Room `json:"room"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return Room{}, err
	}
	if resp.Room.ID == 0 {
		return Room{}, fmt.Errorf("room %d not found", roomID)
	}
	return resp.Room, nil
}

func (c *Client) AddReview(ctx context.Context, review Review) (Review, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/rooms/addReview", review)
	if err != nil {
		return Review{}, err
	}

	var resp struct {
		Review Review `json:"review"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return Review{}, err
	}
	return resp.Review, nil
}
