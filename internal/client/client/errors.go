package client

import (
	"errors"

	"google.golang.org/grpc/codes"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("permission denied")
)

// RemoteError is a server-side rejection with a user-facing message, such as
// a validation failure or a duplicate email.
type RemoteError struct {
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
