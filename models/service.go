package models

import "github.com/servinow/servinow-go/enums"

// ServicePackage is a bookable bundle (e.g. "Standard House Cleaning").
// Prices are in EUR.
type ServicePackage struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       float64           `json:"base_price"`
	DurationMinutes int               `json:"duration_minutes"`
	ServiceType     enums.ServiceType `json:"service_type"`
	Features        []string          `json:"features,omitempty"`
	BestFor         string            `json:"best_for,omitempty"`
	MaxSize         string            `json:"max_size,omitempty"`
}

// ServiceAddon is an optional extra attached to a package at booking time.
type ServiceAddon struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           float64           `json:"price"`
	ServiceType     enums.ServiceType `json:"service_type"`
	DurationMinutes int               `json:"duration_minutes,omitempty"`
}

// PriceEstimate is the backend-computed quote for a package plus addons.
// The breakdown maps line-item names to their amounts.
type PriceEstimate struct {
	BasePrice   float64            `json:"base_price"`
	AddonsPrice float64            `json:"addons_price"`
	TravelFee   float64            `json:"travel_fee"`
	TotalPrice  float64            `json:"total_price"`
	Currency    string             `json:"currency"`
	Breakdown   map[string]float64 `json:"breakdown"`
}
