package session

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// TokenExpiry decodes the exp claim from a JWT-shaped credential without
// verifying it. Informational only: the credential is otherwise treated
// as opaque and the backend stays authoritative on validity. Returns
// false for tokens that are not JWTs or carry no exp claim.
func TokenExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	exp := gjson.GetBytes(payload, "exp")
	if !exp.Exists() {
		return time.Time{}, false
	}
	return time.Unix(exp.Int(), 0), true
}

// ExpiresAt reports the current credential's expiry, when it can be
// determined.
func (m *Manager) ExpiresAt() (time.Time, bool) {
	return TokenExpiry(m.Token())
}
