package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models a registered account. PasswordHash never leaves the server:
// it is excluded from JSON and blanked by the store on read paths that feed
// API responses.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}