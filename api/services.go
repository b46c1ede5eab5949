package api

import (
	"context"

	"github.com/servinow/servinow-go/client"
	"github.com/servinow/servinow-go/enums"
	"github.com/servinow/servinow-go/models"
)

// ListPackages returns the bookable packages, optionally filtered to one
// service type (pass "" for all).
func (a *API) ListPackages(ctx context.Context, serviceType enums.ServiceType) ([]models.ServicePackage, error) {
	var opts []client.RequestOption
	if serviceType != "" {
		opts = append(opts, client.WithQuery("service_type", string(serviceType)))
	}

	var packages []models.ServicePackage
	if err := a.client.Get(ctx, "ListPackages", "/services/packages", &packages, opts...); err != nil {
		return nil, err
	}
	return packages, nil
}

// ListAddons returns the optional extras, optionally filtered to one
// service type (pass "" for all).
func (a *API) ListAddons(ctx context.Context, serviceType enums.ServiceType) ([]models.ServiceAddon, error) {
	var opts []client.RequestOption
	if serviceType != "" {
		opts = append(opts, client.WithQuery("service_type", string(serviceType)))
	}

	var addons []models.ServiceAddon
	if err := a.client.Get(ctx, "ListAddons", "/services/addons", &addons, opts...); err != nil {
		return nil, err
	}
	return addons, nil
}

// PriceEstimate asks the backend to quote a package plus addons at an
// address. Pricing is entirely backend-owned; providerID is optional and
// only affects the travel fee.
func (a *API) PriceEstimate(ctx context.Context, packageID string, address models.Address, addonIDs []string, providerID string) (models.PriceEstimate, error) {
	opts := []client.RequestOption{client.WithQuery("package_id", packageID)}
	if providerID != "" {
		opts = append(opts, client.WithQuery("provider_id", providerID))
	}
	for _, id := range addonIDs {
		opts = append(opts, client.WithQueryAdd("addon_ids", id))
	}

	var estimate models.PriceEstimate
	if err := a.client.Post(ctx, "PriceEstimate", "/services/price-estimate", address, &estimate, opts...); err != nil {
		return models.PriceEstimate{}, err
	}
	return estimate, nil
}
