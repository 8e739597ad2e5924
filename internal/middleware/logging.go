package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// billScoped is implemented by request messages that address one bill.
type billScoped interface {
	GetBillID() string
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, bill and participant IDs, duration, and any
// error codes/messages. Expected failures (not found, wrong state, denied)
// are logged at Warn; anything without a connect code is an Error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{"procedure", req.Spec().Procedure}
			if msg, ok := req.Any().(billScoped); ok && msg.GetBillID() != "" {
				attrs = append(attrs, "bill_id", msg.GetBillID())
			}
			if participantID := GetParticipantID(ctx); participantID != "" {
				attrs = append(attrs, "participant_id", participantID)
			}

			resp, err := next(ctx, req)

			attrs = append(attrs, "duration_ms", time.Since(start).Milliseconds())
			if err == nil {
				slog.Info("RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			switch {
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				slog.Warn("RPC error", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC error", append(attrs, "error", err)...)
			}
			return resp, err
		}
	}
}
