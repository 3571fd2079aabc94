package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/service/identity"
)

// stubVerifier maps exact token strings to tenants.
type stubVerifier struct {
	tokens map[string]string
	err    error
}

func (v *stubVerifier) Verify(_ context.Context, token string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	tenant, ok := v.tokens[token]
	if !ok {
		return "", identity.ErrInvalidToken
	}
	return tenant, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	verifier := &stubVerifier{tokens: map[string]string{"good-token": "tenant-1"}}

	var gotTenant string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant, ok := shared.TenantID(r.Context())
		require.True(t, ok)
		gotTenant = tenant
		w.WriteHeader(http.StatusOK)
	})

	handler := NewAuthMiddleware(verifier).Authenticate(next)

	t.Run("valid token sets tenant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "tenant-1", gotTenant)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong scheme is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "Basic good-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer forged-token")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token gets its own message", func(t *testing.T) {
		expired := NewAuthMiddleware(&stubVerifier{err: identity.ErrExpiredToken}).Authenticate(next)

		req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rr := httptest.NewRecorder()
		expired.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Token expired")
	})
}
