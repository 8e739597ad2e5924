package service

import (
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitbill/internal/auth"
	"github.com/mmynk/splitbill/internal/models"
)

var errInternal = errors.New("internal error")

// connectError maps a domain error onto a connect code. Unexpected errors
// are logged with their detail and reported to the caller as a generic
// internal error.
func connectError(op, billID string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInvalidState):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, models.ErrUnauthorized):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, models.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	slog.Error(op+" failed", "bill_id", billID, "error", err)
	return connect.NewError(connect.CodeInternal, errInternal)
}
