package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `db:"id"`            // Primary key
	Email        string    `db:"email"`         // Unique email, used for login
	Username     string    `db:"username"`      // Unique username
	FirstName    string    `db:"first_name"`    // Given name
	LastName     string    `db:"last_name"`     // Family name
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	AvatarURL    *string   `db:"avatar_url"`    // Stored avatar URL, nil when unset
	Role         string    `db:"role"`          // user | admin
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *UserDB) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the public profile projection.
// swagger:model UserResponse
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Avatar       *string   `json:"avatar"`
	IsSubscribed bool      `json:"is_subscribed"` // relative to the viewer, always false for anonymous
}

// UserListResponse is a bounded page of user profiles.
// swagger:model UserListResponse
type UserListResponse struct {
	Count   int64          `json:"count"`
	Results []UserResponse `json:"results"`
}
