// Package auth issues and checks bill capability tokens.
//
// A token names one participant on one bill. The payer's token carries
// ScopePayer and unlocks the payer-only operations; every other participant
// gets ScopeParticipant. There are no user accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mmynk/splitbill/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

// Scope is the capability granted by a token.
type Scope string

const (
	ScopePayer       Scope = "payer"
	ScopeParticipant Scope = "participant"
)

// TokenManager handles capability token generation and validation.
type TokenManager struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

// Claims are the JWT claims of a capability token.
type Claims struct {
	BillID        string `json:"bill_id"`
	ParticipantID string `json:"participant_id"`
	Scope         Scope  `json:"scope"`
	jwt.RegisteredClaims
}

// IsPayer reports whether the claims grant payer scope on billID.
func (c *Claims) IsPayer(billID string) bool {
	return c != nil && c.Scope == ScopePayer && c.BillID == billID
}

// Identifies reports whether the claims are for participantID on billID.
func (c *Claims) Identifies(billID, participantID string) bool {
	return c != nil && c.BillID == billID && c.ParticipantID == participantID
}

// NewTokenManager creates a token manager with the given secret and token duration.
// secretKey should be a strong random string (e.g., 32 bytes).
func NewTokenManager(secretKey string, tokenDuration time.Duration) *TokenManager {
	return &TokenManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

// Generate creates a token for participant p. Payers get ScopePayer.
func (m *TokenManager) Generate(p *models.Participant) (string, error) {
	scope := ScopeParticipant
	if p.IsPayer {
		scope = ScopePayer
	}

	now := m.now()
	claims := &Claims{
		BillID:        p.BillID,
		ParticipantID: p.ID,
		Scope:         scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a token, returning the claims if valid.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.BillID == "" || claims.ParticipantID == "" {
		return nil, fmt.Errorf("%w: missing bill or participant", ErrInvalidToken)
	}
	if claims.Scope != ScopePayer && claims.Scope != ScopeParticipant {
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidToken, claims.Scope)
	}

	return claims, nil
}
