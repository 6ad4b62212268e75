package service

import (
	"context"
	"fmt"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// List returns every account ordered by username. The admin gate applies:
// non-admin requesters receive ErrForbidden.
func (u *userService) List(ctx context.Context, requester models.User) ([]models.User, error) {
	log := logger.FromContext(ctx)

	if !requester.IsAdmin {
		log.Error().Int64("id", requester.UserID).Msg("user listing denied for non-admin")
		return nil, ErrForbidden
	}

	users, err := u.userRepository.ListUsers(ctx, store.UserFilter{})
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
