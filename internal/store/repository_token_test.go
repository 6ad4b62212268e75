package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mlevkov/teamdesk/internal/logger"
)

func newTestTokenRepo(t *testing.T) (*tokenRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &tokenRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func tokenColumns() []string {
	return []string{"token_id", "token", "user_id", "created_at", "updated_at"}
}

func TestFindTokenByUser_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(tokenColumns()).
		AddRow(7, "abcdef0123456789", 1, now, now)

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	token, err := repo.FindTokenByUser(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.TokenID != 7 {
		t.Errorf("expected TokenID=7, got %d", token.TokenID)
	}
	if token.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", token.UserID)
	}
}

func TestFindTokenByUser_NotFound(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(tokenColumns()))

	_, err := repo.FindTokenByUser(ctx, 1)
	if !errors.Is(err, ErrNoTokenWasFound) {
		t.Fatalf("expected ErrNoTokenWasFound, got %v", err)
	}
}

func TestFindTokenByUserAndValue_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(tokenColumns()).
		AddRow(7, "abcdef0123456789", 1, now, now)

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(1), "abcdef0123456789").
		WillReturnRows(rows)

	token, err := repo.FindTokenByUserAndValue(ctx, 1, "abcdef0123456789")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Value != "abcdef0123456789" {
		t.Errorf("unexpected token value %q", token.Value)
	}
}

func TestFindTokenByUserAndValue_WrongValue(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token_id").
		WithArgs(int64(1), "tampered").
		WillReturnRows(sqlmock.NewRows(tokenColumns()))

	_, err := repo.FindTokenByUserAndValue(ctx, 1, "tampered")
	if !errors.Is(err, ErrNoTokenWasFound) {
		t.Fatalf("expected ErrNoTokenWasFound, got %v", err)
	}
}

func TestIssueOrRefresh_NewSession(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.
		NewRows(tokenColumns()).
		AddRow(7, "freshtoken000000", 1, now, now)

	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs("freshtoken000000", int64(1)).
		WillReturnRows(rows)

	token, err := repo.IssueOrRefresh(ctx, 1, "freshtoken000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Value != "freshtoken000000" {
		t.Errorf("expected candidate value to be stored, got %q", token.Value)
	}
}

func TestIssueOrRefresh_ExistingSessionKeepsValue(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	created := time.Now().Add(-time.Hour)
	refreshed := time.Now()

	// the upsert keeps the stored value when a session row already exists,
	// so the returned value differs from the candidate
	rows := sqlmock.
		NewRows(tokenColumns()).
		AddRow(7, "originaltoken000", 1, created, refreshed)

	mock.ExpectQuery("INSERT INTO tokens").
		WithArgs("candidatetoken00", int64(1)).
		WillReturnRows(rows)

	token, err := repo.IssueOrRefresh(ctx, 1, "candidatetoken00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.Value != "originaltoken000" {
		t.Errorf("expected existing value to survive refresh, got %q", token.Value)
	}
	if !token.UpdatedAt.After(token.CreatedAt) {
		t.Error("expected updated_at to be bumped past created_at")
	}
}

func TestIssueOrRefresh_DBError(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO tokens").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.IssueOrRefresh(ctx, 1, "candidatetoken00")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTouch_Success(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE tokens").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Touch(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTouch_RowGone(t *testing.T) {
	repo, mock, db := newTestTokenRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE tokens").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Touch(ctx, 7)
	if !errors.Is(err, ErrTokenNotTouched) {
		t.Fatalf("expected ErrTokenNotTouched, got %v", err)
	}
}
