package gateway

import (
	"context"

	"cyfairmaids/models"
)

// CreateBooking submits a booking for an authenticated customer. The bearer
// token is passed explicitly for this one call.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest, token string) (*models.BookingResult, error) {
	var result models.BookingResult
	if err := c.postJSON(ctx, "/bookings", token, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateGuestBooking submits a booking through the unauthenticated guest flow.
func (c *Client) CreateGuestBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	var result models.BookingResult
	if err := c.postJSON(ctx, "/bookings/guest", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type reminderRequest struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

// SendAbandonedSessionReminder asks the gateway to email a customer who left a
// wizard session unfinished after providing contact details.
func (c *Client) SendAbandonedSessionReminder(ctx context.Context, sessionID, email, firstName string) error {
	req := reminderRequest{SessionID: sessionID, Email: email, FirstName: firstName}
	return c.postJSON(ctx, "/notifications/booking-reminder", "", req, nil)
}
