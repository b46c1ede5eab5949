package models

// Session pairs the bearer credential with the profile it belongs to.
// The two are always set or cleared together; a half-populated session
// never escapes the session manager.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuthResponse is the body returned by /auth/login and /auth/register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
