// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and session token generation.
package utils

import (
	"context"

	"github.com/mlevkov/teamdesk/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages that
// may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequesterCtxKey is the key used to store the authenticated requester in
// the context. Used together with GetRequesterFromContext for type-safe
// retrieval of the resolved user from context.Context.
var RequesterCtxKey = contextKey("requester")

// GetRequesterFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetRequesterFromContext(ctx context.Context) (models.User, bool) {
	requester, ok := ctx.Value(RequesterCtxKey).(models.User)
	return requester, ok
}
