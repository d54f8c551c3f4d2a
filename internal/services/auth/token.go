package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nucleobets/backend/internal/dependencies/clock"
	"github.com/nucleobets/backend/internal/model"
)

// TokenIssuer signs and verifies bearer tokens.
// Tokens are HS256 JWTs carrying the user id as subject and an
// absolute expiry; they are never persisted.
type TokenIssuer struct {
	secret     []byte
	defaultTTL time.Duration
	clock      clock.Clock
}

// NewTokenIssuer creates a token issuer with the given signing secret
func NewTokenIssuer(secret string, defaultTTL time.Duration, clk clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		clock:      clk,
	}
}

// Issue creates a signed token for the given user.
// ttl <= 0 falls back to the issuer's default.
func (t *TokenIssuer) Issue(userID model.UserID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = t.defaultTTL
	}
	now := t.clock.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   string(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify validates a token and returns its subject user id.
// Every failure mode (bad signature, malformed payload, expiry) collapses
// to model.ErrInvalidToken so callers cannot distinguish the cause.
func (t *TokenIssuer) Verify(tokenString string) (model.UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, model.ErrInvalidToken
			}
			return t.secret, nil
		},
		jwt.WithTimeFunc(t.clock.Now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return "", model.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", model.ErrInvalidToken
	}
	return model.UserID(claims.Subject), nil
}
