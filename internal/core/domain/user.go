package domain

import (
	"errors"
	"time"
)

// Role is the authorization level carried by a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleViewer Role = "viewer"
)

var ErrMissingFields = errors.New("missing required fields")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// NormalizeRole maps a requested role onto the closed enum. Anything that is
// not exactly one of the three known roles (empty string included) falls back
// to RoleUser, so a stored record can never carry an unknown role.
func NormalizeRole(requested string) Role {
	switch Role(requested) {
	case RoleAdmin, RoleUser, RoleViewer:
		return Role(requested)
	default:
		return RoleUser
	}
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
