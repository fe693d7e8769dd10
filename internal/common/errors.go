// Package common defines shared constants and error kinds used across
// server and client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level error kinds. Every failure returned by the account
	// service matches exactly one of these.
	ErrorInvalidInput = errors.New("invalid input")
	ErrorUnauthorized = errors.New("unauthenticated")
	ErrorForbidden    = errors.New("permission denied")
	ErrorConflict     = errors.New("conflict")
	ErrorInternal     = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Error is a failure of a known kind with a message that is safe to show to
// callers. It unwraps to its kind, so errors.Is(err, ErrorNotFound) works.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError returns an *Error of the given kind.
func NewError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

// PublicMessage returns the caller-visible message of err. Errors that do not
// carry one (including anything of kind ErrorInternal) yield fallback.
func PublicMessage(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) && !errors.Is(e.Kind, ErrorInternal) && e.Message != "" {
		return e.Message
	}
	return fallback
}
