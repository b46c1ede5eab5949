package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/servinow/servinow-go/client"
	"github.com/servinow/servinow-go/models"
)

// CreateBooking posts a new booking request. Each call carries a fresh
// Idempotency-Key so a retried submission cannot double-book.
func (a *API) CreateBooking(ctx context.Context, req models.BookingCreate) (models.Booking, error) {
	if err := req.Validate(); err != nil {
		return models.Booking{}, err
	}

	var booking models.Booking
	err := a.client.Post(ctx, "CreateBooking", "/bookings", req, &booking,
		client.WithHeader("Idempotency-Key", uuid.NewString()))
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// ListBookings returns the caller's bookings; the backend scopes the
// result to the authenticated role (customer or provider).
func (a *API) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := a.client.Get(ctx, "ListBookings", "/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking fetches one booking by id.
func (a *API) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	var booking models.Booking
	if err := a.client.Get(ctx, "GetBooking", "/bookings/"+bookingID, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}
