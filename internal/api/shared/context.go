package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

// Context keys for various values.
const (
	// TenantIDContextKey is the context key for the caller's tenant ID,
	// set by the identity middleware from the verified token.
	TenantIDContextKey ContextKey = "tenantID"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the number of bytes used to generate the trace ID.
	TraceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a fresh trace ID to the context, for correlating logs and
// error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// TenantID retrieves the tenant ID from the context.
// Returns the tenant ID and whether it was present.
func TenantID(ctx context.Context) (string, bool) {
	tenant, ok := ctx.Value(TenantIDContextKey).(string)
	return tenant, ok && tenant != ""
}

// WithTenantID returns a copy of ctx carrying the tenant ID.
func WithTenantID(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, TenantIDContextKey, tenant)
}

// generateTraceID creates a random 32-character hex trace ID.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; here a missing
		// trace ID only degrades log correlation.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
