// Package adapter implements the client-side REST adapter used by the
// teamdeskctl CLI to talk to a teamdesk server.
package adapter

import (
	"context"

	"github.com/mlevkov/teamdesk/models"
)

// ServerAdapter is the client-side view of the teamdesk REST API.
type ServerAdapter interface {
	// Register creates a new account on the server.
	Register(ctx context.Context, username, password, passwordConfirmation string) (models.User, error)

	// Login authenticates and stores the returned session credentials on
	// the adapter for subsequent calls.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)

	// SetSession primes the adapter with previously obtained credentials.
	SetSession(username, token string)

	// ListUsers fetches every account. Requires an admin session.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ListProjects fetches the projects visible to the session user.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// CreateProject creates a project owned by the session user.
	CreateProject(ctx context.Context, name string) (models.Project, error)
}
