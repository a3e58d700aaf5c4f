package domain

import "strings"

// Role is the closed set of access levels known to the console.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole is the single normalization boundary for role strings coming
// from tokens, the remote user table, or stored sessions. Unrecognized or
// empty values collapse to RoleUser (least privilege).
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an account in the remote user table.
type User struct {
	ID               string `json:"user_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	RegistrationDate string `json:"registration_date,omitempty"`
}
