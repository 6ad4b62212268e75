package models

import "time"

// Token is an opaque session credential persisted per user. The refresh
// policy keeps at most one row per user: a repeated login bumps UpdatedAt
// instead of issuing a new value.
type Token struct {
	// TokenID is the internal unique identifier of the token row.
	TokenID int64 `json:"id"`

	// Value is the opaque credential string presented by clients in the
	// `token` request header.
	Value string `json:"token"`

	// UserID is the owner of the session.
	UserID int64 `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Token model.
func (t Token) TableName() string {
	return "tokens"
}
