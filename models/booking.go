package models

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/servinow/servinow-go/enums"
	"github.com/servinow/servinow-go/utils"
)

// Address is a service location. Latitude/longitude are filled in by the
// backend's geocoder; the client leaves them zero.
type Address struct {
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// BookingCreate is the request body for POST /bookings.
type BookingCreate struct {
	ServiceType       enums.ServiceType `json:"service_type" validate:"required"`
	PackageID         string            `json:"package_id" validate:"required"`
	AddonIDs          []string          `json:"addon_ids"`
	ServiceAddress    Address           `json:"service_address" validate:"required"`
	ScheduledDatetime time.Time         `json:"scheduled_datetime" validate:"required"`
	Notes             string            `json:"notes,omitempty"`
}

func (b *BookingCreate) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(b)
}

// Booking is the backend's booking record. Status transitions and pricing
// are backend-owned; the client only displays them.
type Booking struct {
	ID                string              `json:"id"`
	CustomerID        string              `json:"customer_id"`
	ProviderID        string              `json:"provider_id,omitempty"`
	ServiceType       enums.ServiceType   `json:"service_type"`
	PackageID         string              `json:"package_id"`
	AddonIDs          []string            `json:"addon_ids"`
	ServiceAddress    Address             `json:"service_address"`
	ScheduledDatetime time.Time           `json:"scheduled_datetime"`
	Status            enums.BookingStatus `json:"status"`
	PriceEstimate     PriceEstimate       `json:"price_estimate"`
	PaymentStatus     enums.PaymentStatus `json:"payment_status"`
	StripeSessionID   string              `json:"stripe_session_id,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// ScheduledLocal returns the appointment time in the given IANA timezone
// for display.
func (b Booking) ScheduledLocal(timezone string) time.Time {
	return utils.FromUTCToTimezone(b.ScheduledDatetime, timezone)
}
