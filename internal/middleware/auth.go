package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitbill/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// claimsKey is the context key for the validated capability token claims.
const claimsKey contextKey = "claims"

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims extracts the token claims from the context.
// Returns nil if the request carried no valid token.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// GetParticipantID extracts the caller's participant ID from the context.
// Returns empty string if not found.
func GetParticipantID(ctx context.Context) string {
	if claims := GetClaims(ctx); claims != nil {
		return claims.ParticipantID
	}
	return ""
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// OptionalAuth returns a middleware that validates capability tokens if
// present, but allows requests without one. Reads are open to everyone;
// handlers of mutations decide what the claims permit.
func OptionalAuth(tokens *auth.TokenManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				if claims, err := tokens.Validate(token); err == nil {
					ctx = WithClaims(ctx, claims)
				}
			}

			// Call the next handler (with or without claims)
			return next(ctx, req)
		}
	}
}
