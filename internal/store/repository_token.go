package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlevkov/teamdesk/internal/logger"
	"github.com/mlevkov/teamdesk/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. The "tokens" table carries a UNIQUE index on user_id,
// which the issue-or-refresh upsert relies on.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// FindTokenByUser retrieves the session row owned by userID.
//
// Returns [ErrNoTokenWasFound] if the user holds no session.
func (r *tokenRepository) FindTokenByUser(ctx context.Context, userID int64) (models.Token, error) {
	return r.scanTokenRow(ctx, "*tokenRepository.FindTokenByUser", findTokenByUser, userID)
}

// FindTokenByUserAndValue retrieves the session row matching both the owner
// and the presented token value. Session validation depends on this exact
// pairing: a token value alone is never enough.
//
// Returns [ErrNoTokenWasFound] if no row matches.
func (r *tokenRepository) FindTokenByUserAndValue(ctx context.Context, userID int64, token string) (models.Token, error) {
	return r.scanTokenRow(ctx, "*tokenRepository.FindTokenByUserAndValue", findTokenByUserAndValue, userID, token)
}

// IssueOrRefresh performs a single atomic upsert: a new row is inserted with
// the candidate value, or, when the user already holds a session, the
// existing row keeps its value and only has updated_at bumped. Two
// concurrent logins for the same user therefore converge on one row.
func (r *tokenRepository) IssueOrRefresh(ctx context.Context, userID int64, candidate string) (models.Token, error) {
	return r.scanTokenRow(ctx, "*tokenRepository.IssueOrRefresh", issueOrRefreshToken, candidate, userID)
}

// Touch bumps updated_at of the given token row to the current time.
//
// Returns [ErrTokenNotTouched] if the row no longer exists.
func (r *tokenRepository) Touch(ctx context.Context, tokenID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchToken, tokenID)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.Touch").Msg("error touching token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrTokenNotTouched
	}

	return nil
}

// scanTokenRow runs a single-row token query and scans the result.
func (r *tokenRepository) scanTokenRow(ctx context.Context, caller, query string, args ...any) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.Token{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&token.TokenID, &token.Value, &token.UserID, &token.CreatedAt, &token.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Token{}, ErrNoTokenWasFound
		}
		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.Token{}, err
	}

	return token, nil
}
