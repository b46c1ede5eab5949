package models

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/servinow/servinow-go/enums"
)

// ProviderProfileCreate is the request body for POST /providers/profile.
type ProviderProfileCreate struct {
	BusinessName string              `json:"business_name" validate:"required"`
	Description  string              `json:"description"`
	ServiceTypes []enums.ServiceType `json:"service_types" validate:"required,min=1"`
	ServiceAreas []Address           `json:"service_areas" validate:"required,min=1"`
	Availability map[string]any      `json:"availability"`
}

func (p *ProviderProfileCreate) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(p)
}

// ProviderProfile is the backend's provider record. Rating, review count
// and verification are backend-owned.
type ProviderProfile struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	BusinessName string              `json:"business_name"`
	Description  string              `json:"description"`
	ServiceTypes []enums.ServiceType `json:"service_types"`
	ServiceAreas []Address           `json:"service_areas"`
	Availability map[string]any      `json:"availability"`
	Rating       float64             `json:"rating"`
	TotalReviews int                 `json:"total_reviews"`
	IsVerified   bool                `json:"is_verified"`
	CreatedAt    time.Time           `json:"created_at"`
}
