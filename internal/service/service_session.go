package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/models"
)

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories.
func NewSessionService(userRepository store.UserRepository, tokenRepository store.TokenRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		logger:          logger,
	}
}

// Validate resolves a claimed (username, token) pair to a user account.
//
// The checks run strictly in order, since each depends on the previous one
// succeeding:
//  1. ErrMissingToken if no token was supplied.
//  2. ErrUserNotFound if the username does not resolve.
//  3. ErrInvalidToken if no token row matches (userID, token).
//
// On success the token's updated_at is bumped and the resolved user is
// returned. A touch that finds the row gone (revoked mid-request) is treated
// as an invalid token.
func (s *sessionService) Validate(ctx context.Context, username, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		log.Error().Str("username", username).Msg("request without session token")
		return models.User{}, ErrMissingToken
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", username).Msg("session for unknown username")
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	foundToken, err := s.tokenRepository.FindTokenByUserAndValue(ctx, foundUser.UserID, token)
	if err != nil {
		if errors.Is(err, store.ErrNoTokenWasFound) {
			log.Error().Int64("id", foundUser.UserID).Msg("presented token does not match stored session")
			return models.User{}, ErrInvalidToken
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("token search failed")
		return models.User{}, fmt.Errorf("token search failed: %w", err)
	}

	if err := s.tokenRepository.Touch(ctx, foundToken.TokenID); err != nil {
		if errors.Is(err, store.ErrTokenNotTouched) {
			return models.User{}, ErrInvalidToken
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("token touch failed")
		return models.User{}, fmt.Errorf("token touch failed: %w", err)
	}

	return foundUser, nil
}
