package service

import (
	"context"

	"github.com/mlevkov/teamdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account after validating the username,
	// password length, and password confirmation.
	Register(ctx context.Context, username, password, passwordConfirmation string) (models.User, error)

	// Login verifies credentials and issues (or refreshes) the caller's
	// session token.
	Login(ctx context.Context, username, password string) (models.User, models.Token, error)
}

// SessionService resolves a claimed (username, token) pair to an account.
type SessionService interface {
	// Validate runs the session guard chain: token present, user resolvable,
	// token row matching. On success it bumps the token's timestamp and
	// returns the resolved user.
	Validate(ctx context.Context, username, token string) (models.User, error)
}

// UserService exposes privileged user listing.
type UserService interface {
	// List returns every account, ordered by username. Restricted to
	// administrators.
	List(ctx context.Context, requester models.User) ([]models.User, error)
}

// ProjectService exposes project listing and creation.
type ProjectService interface {
	// List returns projects visible to the requester: all of them for
	// administrators, owned ones for everybody else.
	List(ctx context.Context, requester models.User) ([]models.Project, error)

	// Create inserts a project owned by the requester.
	Create(ctx context.Context, requester models.User, name string) (models.Project, error)
}
