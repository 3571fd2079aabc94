// Package identity verifies the caller identity tokens supplied by the
// hosting environment.
//
// Tokens are minted by an external identity provider and arrive as HMAC-
// signed JWTs; this service only verifies signatures and extracts the tenant
// ID from the subject claim. It never issues tokens — login, registration,
// and session lifecycle all live outside this system.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quillstudy/quill-api/internal/config"
)

// Common errors
var (
	// ErrInvalidToken is returned when a token fails signature or claim
	// validation.
	ErrInvalidToken = errors.New("invalid identity token")

	// ErrExpiredToken is returned when a token's expiry has passed.
	ErrExpiredToken = errors.New("identity token expired")
)

// Verifier validates identity tokens and resolves them to tenant IDs.
type Verifier interface {
	// Verify checks the token's signature and time claims and returns the
	// tenant ID it identifies. Returns ErrExpiredToken or ErrInvalidToken
	// on failure.
	Verify(ctx context.Context, token string) (string, error)
}

// hmacVerifier verifies HMAC-SHA256 signed tokens against a shared secret.
type hmacVerifier struct {
	signingKey []byte
	timeFunc   func() time.Time
	clockSkew  time.Duration
}

// Ensure hmacVerifier implements Verifier interface.
var _ Verifier = (*hmacVerifier)(nil)

// NewVerifier creates a token verifier from the auth configuration.
func NewVerifier(cfg config.AuthConfig) (Verifier, error) {
	if len(cfg.TokenSecret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}

	return &hmacVerifier{
		signingKey: []byte(cfg.TokenSecret),
		timeFunc:   time.Now,
		clockSkew:  2 * time.Minute, // tolerate minor drift between us and the identity provider
	}, nil
}

// Verify implements Verifier.Verify.
func (v *hmacVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	now := v.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	return claims.Subject, nil
}
