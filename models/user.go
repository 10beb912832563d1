package models

import "time"

// Role values carried in the "role" token claim and stored on every user
// account. An account is either a regular user or an administrator.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user. It doubles as the
	// token subject ("sub" claim) once the user is authenticated.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never stored and never serialized back out
	// because handlers clear it before writing a response.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted at the storage layer.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role is the authorization role of the account: RoleUser or RoleAdmin.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user account. Nil fields are
// left untouched.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
