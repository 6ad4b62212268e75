package service

import (
	"errors"
	"strings"
)

// Sentinel errors matched by handlers with [errors.Is] to pick the transport
// status code.
var (
	ErrMissingToken  = errors.New("missing token in request")
	ErrInvalidToken  = errors.New("invalid token")
	ErrUserNotFound  = errors.New("the given username does not exist")
	ErrWrongPassword = errors.New("wrong password")
	ErrForbidden     = errors.New("insufficient privileges")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Messages carried by [ValidationError] values. They surface verbatim inside
// the response envelope.
const (
	MsgRequiredFieldEmpty = "required field can not be empty"
	MsgUsernameTaken      = "the given username already exists"
	MsgPasswordMismatch   = "the given passwords do not match"
	MsgPasswordTooShort   = "the password needs to be at least 8 characters long"
	MsgProjectNameEmpty   = "project name can not be empty"
)

// ValidationError aggregates one or more human-readable validation messages.
// Structural failures (missing fields) return immediately with a single
// message; content checks may accumulate several.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
