package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized and never selected by list queries.
	PasswordHash string `json:"-"`

	// DisplayName is an optional human-readable name shown in UI.
	DisplayName string `json:"displayName,omitempty"`

	// IsAdmin grants access to privileged listing operations.
	IsAdmin bool `json:"isAdmin"`

	// CreatedFrom references the user that created this account, if any.
	CreatedFrom *int64 `json:"createdFrom,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
