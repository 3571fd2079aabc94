package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/redact"
	"github.com/quillstudy/quill-api/internal/service/identity"
)

// AuthMiddleware resolves caller identity tokens to tenant IDs.
type AuthMiddleware struct {
	verifier identity.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier identity.Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate validates the bearer token from the Authorization header and
// adds the resolved tenant ID to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		tenant, err := m.verifier.Verify(r.Context(), parts[1])
		if err != nil {
			if errors.Is(err, identity.ErrExpiredToken) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
				return
			}
			slog.Debug("token verification failed", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := shared.WithTenantID(r.Context(), tenant)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
