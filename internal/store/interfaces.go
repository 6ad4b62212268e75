package store

import (
	"context"

	"github.com/mlevkov/teamdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists account records. Username uniqueness is enforced
// by the storage layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]models.User, error)
}

// TokenRepository persists opaque session tokens, at most one row per user.
type TokenRepository interface {
	FindTokenByUser(ctx context.Context, userID int64) (models.Token, error)
	FindTokenByUserAndValue(ctx context.Context, userID int64, token string) (models.Token, error)

	// IssueOrRefresh atomically creates a token row for userID with the
	// candidate value, or bumps updated_at of the existing row, keeping its
	// original value. Returns the persisted row either way.
	IssueOrRefresh(ctx context.Context, userID int64, candidate string) (models.Token, error)

	Touch(ctx context.Context, tokenID int64) error
}

// ProjectRepository persists projects owned by users.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
}

// UserFilter narrows user listing. The zero value selects every user.
type UserFilter struct {
	// AdminOnly limits the result to administrator accounts.
	AdminOnly bool
}

// ProjectFilter narrows project listing. The zero value selects every
// project.
type ProjectFilter struct {
	// OwnerID, when non-nil, limits the result to projects owned by the
	// given user.
	OwnerID *int64
}
