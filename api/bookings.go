package api

import (
	"context"
	"net/http"
	"strconv"
)

type BookingRequest struct {
	InDate  string `json:"InDate"`
	OutDate string `json:"OutDate"`
	RoomID  int    `json:"roomId"`
	UserID  int    `json:"userId"`
}

func (c *Client) AddBooking(ctx context.Context, booking BookingRequest) (Booking, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/bookings/addBooking", booking)
	if err != nil {
		return Booking{}, err
	}

	var resp struct {
		Booking Booking `json:"booking"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return Booking{}, err
	}
	return resp.Booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, bookingID int) (string, error) {
	path := "/bookings/deleteBookingById/" + strconv.Itoa(bookingID)
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil)
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

func (c *Client) GetUserBookings(ctx context.Context, viewerID int) ([]Booking, error) {
	path := "/bookings/getUserBookings/" + strconv.Itoa(viewerID)
	return c.getBookings(ctx, path)
}

func (c *Client) GetRoomBookings(ctx context.Context, roomID int) ([]Booking, error) {
	path := "/bookings/getRoomBookings/" + strconv.Itoa(roomID)
	return c.getBookings(ctx, path)
}

func (c *Client) getBookings(ctx context.Context, path string) ([]Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	return resp.Bookings, nil
}
