package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// mintToken builds a token the way the external identity provider does.
func mintToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestVerifier(t *testing.T) Verifier {
	t.Helper()
	v, err := NewVerifier(config.AuthConfig{TokenSecret: testSecret})
	require.NoError(t, err)
	return v
}

func TestNewVerifierRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewVerifier(config.AuthConfig{TokenSecret: "short"})
	assert.Error(t, err)
}

func TestVerifyValidToken(t *testing.T) {
	t.Parallel()
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, "tenant-alice", time.Now().Add(time.Hour))
	tenant, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "tenant-alice", tenant)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, "tenant-alice", time.Now().Add(-time.Hour))
	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Parallel()
	v := newTestVerifier(t)
	ctx := context.Background()

	testCases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{
			"wrong signing key",
			mintToken(t, "ffffffffffffffffffffffffffffffff", "tenant-alice", time.Now().Add(time.Hour)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(ctx, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	t.Parallel()
	v := newTestVerifier(t)

	token := mintToken(t, testSecret, "", time.Now().Add(time.Hour))
	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	t.Parallel()
	v := newTestVerifier(t)

	claims := jwt.RegisteredClaims{
		Subject:   "tenant-alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
