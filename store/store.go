// Package store provides the durable key-value backends the session
// manager persists credentials to. A backend is picked once at startup
// for the platform the binary targets; nothing probes per call.
package store

import (
	"context"
	"errors"
)

// Keys under which the session is persisted. The layout matches what the
// mobile clients have always written: the raw credential in one entry,
// the JSON-serialized profile in the other. There is no schema version;
// readers tolerate missing fields.
const (
	KeyAuthToken = "auth_token"
	KeyUserData  = "user_data"
)

// ErrNotFound is returned by Get when the key has never been set or has
// been deleted.
var ErrNotFound = errors.New("store: key not found")

// KeyValueStore is the durability backstop for small client secrets.
// Values are opaque strings; callers own serialization.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
