package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlevkov/teamdesk/internal/config"
	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/internal/utils"
	"github.com/mlevkov/teamdesk/models"
)

// authService is the concrete implementation of AuthService. It handles user
// registration and credential verification using a UserRepository for
// persistence, bcrypt for password hashing, and a TokenRepository for the
// session token lifecycle.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// tokenLength is the number of random bytes behind each session token.
	tokenLength int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		bcryptCost:      cost,
		tokenLength:     cfg.TokenLength,
		logger:          logger,
	}
}

// Register creates a new user account.
//
// Validation runs in a fixed order: required fields (immediate return with a
// single message), username availability, then password confirmation and
// minimum length (those two accumulate). The pre-check keeps the duplicate
// message at its expected position; the UNIQUE index on username remains the
// actual guarantee, so a racing insert surfaces as the same error.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - *ValidationError carrying the failed checks' messages.
//   - A wrapped storage error if the repository call fails.
func (a *authService) Register(ctx context.Context, username, password, passwordConfirmation string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" || passwordConfirmation == "" {
		log.Error().Str("username", username).Msg("registration with empty required fields")
		return models.User{}, NewValidationError(MsgRequiredFieldEmpty)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, username); err == nil {
		log.Error().Str("username", username).Msg("registration with taken username")
		return models.User{}, NewValidationError(MsgUsernameTaken)
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	var msgs []string
	if password != passwordConfirmation {
		msgs = append(msgs, MsgPasswordMismatch)
	}
	if len(password) < 8 {
		msgs = append(msgs, MsgPasswordTooShort)
	}
	if len(msgs) > 0 {
		log.Error().Str("username", username).Strs("reasons", msgs).Msg("registration failed validation")
		return models.User{}, NewValidationError(msgs...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			// lost the race against a concurrent registration
			return models.User{}, NewValidationError(MsgUsernameTaken)
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues or refreshes the session
// token.
//
// Returns the authenticated user and the session token, or:
//   - *ValidationError if username or password is empty.
//   - ErrUserNotFound if the username does not resolve.
//   - ErrWrongPassword if the bcrypt comparison fails.
//   - A wrapped storage error on unexpected repository failure.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("login with empty required fields")
		return models.User{}, models.Token{}, NewValidationError(MsgRequiredFieldEmpty)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("username", username).Msg("login for unknown username")
			return models.User{}, models.Token{}, ErrUserNotFound
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.issueOrRefreshToken(ctx, foundUser.UserID)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// issueOrRefreshToken generates a fresh candidate value and delegates to the
// repository's atomic upsert. When the user already holds a session, the
// candidate is discarded by the database and the existing value comes back
// with a bumped timestamp.
func (a *authService) issueOrRefreshToken(ctx context.Context, userID int64) (models.Token, error) {
	log := logger.FromContext(ctx)

	candidate, err := utils.GenerateSessionToken(a.tokenLength)
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := a.tokenRepository.IssueOrRefresh(ctx, userID, candidate)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("token issue ended with error")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
