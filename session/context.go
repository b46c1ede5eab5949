package session

import (
	"golang.org/x/net/context"

	"github.com/servinow/servinow-go/models"
)

type ctxKey struct{}

// NewContext returns a context carrying the session, for handing the
// current identity down to view-layer code without threading the
// manager itself.
func NewContext(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts a session stored with NewContext.
func FromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(models.Session)
	return s, ok
}
