package client

import (
	"context"
	"net/http"
	"net/url"
)

// CatererRequests lists booking requests addressed to the caller's
// catering business, newest first.
func (c *Client) CatererRequests(ctx context.Context) ([]BookingRequest, error) {
	var out []BookingRequest
	if err := c.do(ctx, http.MethodGet, "/api/bookings/caterer-requests", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RespondBooking accepts or rejects a pending request. status must be
// ACCEPTED or REJECTED.
func (c *Client) RespondBooking(ctx context.Context, bookingID, status string) error {
	q := url.Values{"status": {status}}
	return c.do(ctx, http.MethodPatch, "/api/bookings/respond/"+bookingID, q, nil, nil)
}

func (c *Client) EventBookingStatus(ctx context.Context, eventID string) (*EventBookingStatus, error) {
	var out EventBookingStatus
	if err := c.do(ctx, http.MethodGet, "/api/bookings/event/"+eventID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
