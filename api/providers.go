package api

import (
	"context"

	"github.com/servinow/servinow-go/models"
)

// CreateProviderProfile registers the signed-in provider's business
// profile. The backend rejects the call for non-provider roles and for
// accounts that already have one.
func (a *API) CreateProviderProfile(ctx context.Context, req models.ProviderProfileCreate) (models.ProviderProfile, error) {
	if err := req.Validate(); err != nil {
		return models.ProviderProfile{}, err
	}

	var profile models.ProviderProfile
	if err := a.client.Post(ctx, "CreateProviderProfile", "/providers/profile", req, &profile); err != nil {
		return models.ProviderProfile{}, err
	}
	return profile, nil
}
