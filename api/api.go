// Package api provides typed wrappers for every backend endpoint the
// client consumes beyond authentication. Authorization headers are
// attached by the client's token hook; nothing here handles credentials.
package api

import "github.com/servinow/servinow-go/client"

type API struct {
	client *client.Client
}

func New(c *client.Client) *API {
	return &API{client: c}
}
