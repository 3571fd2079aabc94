package api

import (
	"log/slog"
	"net/http"

	"github.com/quillstudy/quill-api/internal/api/shared"
)

// tenantFromRequest extracts the authenticated tenant ID placed in the
// request context by the auth middleware. If it is missing the request is
// rejected with 401 and ok is false; handlers must return immediately.
func tenantFromRequest(w http.ResponseWriter, r *http.Request, log *slog.Logger) (string, bool) {
	tenant, ok := shared.TenantID(r.Context())
	if !ok || tenant == "" {
		log.Warn("tenant ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Tenant not found or invalid")
		return "", false
	}
	return tenant, true
}

// decodeAndValidate reads the JSON request body into v and runs struct
// validation. On failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}
