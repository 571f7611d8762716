package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// CreateBooking submits a reservation. The idempotency key is generated when
// the caller leaves it empty; reuse the same request to retry safely.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (BookingConfirmation, error) {
	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	var env struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    BookingConfirmation `json:"data"`
	}
	r := request{
		method:  http.MethodPost,
		path:    "/bookings",
		body:    req,
		headers: map[string]string{"Idempotency-Key": key},
	}
	if err := c.do(ctx, r, &env); err != nil {
		return BookingConfirmation{}, fmt.Errorf("create booking: %w", err)
	}
	if env.Data.BookingID == "" {
		msg := env.Message
		if msg == "" {
			msg = "no booking id returned"
		}
		return BookingConfirmation{}, fmt.Errorf("create booking: %w: %s", ErrBadResponse, msg)
	}
	return env.Data, nil
}
