package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const internalMessage = "internal error"

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, common.ErrorInternal):
		return codes.Internal
	case errors.Is(err, common.ErrorInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrorNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrorUnauthorized):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrorForbidden):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrorConflict), errors.Is(err, common.ErrorAlreadyExists):
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// toStatus converts a service error to a gRPC status. Internal details are
// logged, never sent.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	code := codeOf(err)

	switch code {
	case codes.Internal:
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, internalMessage)
	case codes.Canceled, codes.DeadlineExceeded:
		return status.Error(code, code.String())
	}

	return status.Error(code, common.PublicMessage(err, err.Error()))
}
