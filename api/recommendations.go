package api

import (
	"context"
	"net/http"
	"strconv"
)

type VisitRequest struct {
	UserID int `json:"userId"`
	RoomID int `json:"roomId"`
}

type SearchHistoryRequest struct {
	CountryID int `json:"countryId"`
	StateID   int `json:"stateId"`
	CityID    int `json:"cityId"`
}

func (c *Client) GetRecommendations(ctx context.Context, viewerID int) ([]Room, error) {
	path := "/recommendations/getRecommendations/" + strconv.Itoa(viewerID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
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

// AddVisit feeds one detail-page visit to the recommender and returns the
// server's acknowledgement message.
func (c *Client) AddVisit(ctx context.Context, visit VisitRequest) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/recommendations/addVisit", visit)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) AddSearchHistory(ctx context.Context, viewerID int, history SearchHistoryRequest) error {
	path := "/recommendations/addSearchHistory/" + strconv.Itoa(viewerID)
	req, err := c.newRequest(ctx, http.MethodPost, path, history)
	if err != nil {
		return err
	}
	return c.doJSON(req, nil)
}
