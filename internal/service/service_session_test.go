package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/internal/mock"
	"github.com/mlevkov/teamdesk/internal/store"
	"github.com/mlevkov/teamdesk/models"
)

func newTestSessionService(t *testing.T) (SessionService, *mock.MockUserRepository, *mock.MockTokenRepository) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)

	session := NewSessionService(users, tokens, logger.Nop())

	return session, users, tokens
}

func TestValidate_Success(t *testing.T) {
	session, users, tokens := newTestSessionService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	tokens.EXPECT().
		FindTokenByUserAndValue(ctx, int64(1), "abcdef0123456789").
		Return(models.Token{TokenID: 7, Value: "abcdef0123456789", UserID: 1}, nil)

	tokens.EXPECT().
		Touch(ctx, int64(7)).
		Return(nil)

	caller, err := session.Validate(ctx, "alice", "abcdef0123456789")
	require.NoError(t, err)
	assert.Equal(t, int64(1), caller.UserID)
	assert.Equal(t, "alice", caller.Username)
}

func TestValidate_MissingToken(t *testing.T) {
	session, _, _ := newTestSessionService(t)
	ctx := context.Background()

	_, err := session.Validate(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidate_UnknownUsername(t *testing.T) {
	session, users, _ := newTestSessionService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := session.Validate(ctx, "ghost", "abcdef0123456789")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidate_TamperedToken(t *testing.T) {
	session, users, tokens := newTestSessionService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	tokens.EXPECT().
		FindTokenByUserAndValue(ctx, int64(1), "tampered").
		Return(models.Token{}, store.ErrNoTokenWasFound)

	_, err := session.Validate(ctx, "alice", "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_TokenRevokedMidRequest(t *testing.T) {
	session, users, tokens := newTestSessionService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{UserID: 1, Username: "alice"}, nil)

	tokens.EXPECT().
		FindTokenByUserAndValue(ctx, int64(1), "abcdef0123456789").
		Return(models.Token{TokenID: 7, Value: "abcdef0123456789", UserID: 1}, nil)

	tokens.EXPECT().
		Touch(ctx, int64(7)).
		Return(store.ErrTokenNotTouched)

	_, err := session.Validate(ctx, "alice", "abcdef0123456789")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_StorageFailure(t *testing.T) {
	session, users, _ := newTestSessionService(t)
	ctx := context.Background()

	users.EXPECT().
		FindUserByUsername(ctx, "alice").
		Return(models.User{}, errors.New("connection reset"))

	_, err := session.Validate(ctx, "alice", "abcdef0123456789")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}
