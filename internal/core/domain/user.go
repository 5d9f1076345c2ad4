package domain

import (
	"errors"
	"time"
)

const (
	RoleManager = "manager"
	RoleStaff   = "staff"
	RoleCashier = "cashier"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleStaff || role == RoleCashier
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
