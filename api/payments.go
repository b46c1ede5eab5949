package api

import (
	"context"

	"github.com/servinow/servinow-go/client"
	"github.com/servinow/servinow-go/models"
)

// CreateCheckout starts a hosted checkout session for a pending booking.
// The caller opens the returned URL in a browser; the processor
// redirects back once the customer pays or cancels.
func (a *API) CreateCheckout(ctx context.Context, bookingID string) (models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := a.client.Post(ctx, "CreateCheckout", "/payments/create-checkout", nil, &session,
		client.WithQuery("booking_id", bookingID))
	if err != nil {
		return models.CheckoutSession{}, err
	}
	return session, nil
}

// CheckoutStatus polls the processor-side state of a checkout session.
// The backend also moves the booking to confirmed once payment is
// captured, so polling this after the redirect keeps the two in sync.
func (a *API) CheckoutStatus(ctx context.Context, sessionID string) (models.CheckoutStatus, error) {
	var status models.CheckoutStatus
	if err := a.client.Get(ctx, "CheckoutStatus", "/payments/status/"+sessionID, &status); err != nil {
		return models.CheckoutStatus{}, err
	}
	return status, nil
}
