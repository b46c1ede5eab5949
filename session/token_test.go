package session

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servinow/servinow-go/models"
)

func jwtWithPayload(payload string) string {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}
	return encode(`{"alg":"HS256","typ":"JWT"}`) + "." + encode(payload) + "." + encode("sig")
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
	token := jwtWithPayload(`{"sub":"user-1","exp":` + "1767366245" + `}`)

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	_, ok := TokenExpiry("tok-1")
	assert.False(t, ok)
}

func TestTokenExpiryNoExpClaim(t *testing.T) {
	_, ok := TokenExpiry(jwtWithPayload(`{"sub":"user-1"}`))
	assert.False(t, ok)
}

func TestTokenExpiryBadPayloadEncoding(t *testing.T) {
	_, ok := TokenExpiry("a.!!!.c")
	assert.False(t, ok)
}

func TestSessionContextRoundTrip(t *testing.T) {
	sess := models.Session{Token: "tok-1", User: models.User{Email: "a@b.com"}}
	ctx := NewContext(context.Background(), sess)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, sess, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
