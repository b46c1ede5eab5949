package models

import (
	"time"

	"github.com/servinow/servinow-go/enums"
)

// User is the account record returned by the backend. The backend is
// authoritative for every field; the client reads it and never writes
// it back. Phone is optional, older records may lack it.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      enums.Role `json:"role"`
	IsActive  bool       `json:"is_active"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
