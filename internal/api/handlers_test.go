package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/api/shared"
	"github.com/quillstudy/quill-api/internal/platform/memory"
	"github.com/quillstudy/quill-api/internal/service/study"
)

// newTestService creates a study service over the in-memory store with a
// fixed clock, so schedule math in handler tests is deterministic.
func newTestService(t *testing.T) *study.Service {
	t.Helper()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return study.NewService(
		memory.NewStore(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		study.WithClock(func() time.Time { return base }),
	)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthedRequest builds a request carrying the tenant ID the auth
// middleware would have set, an optional JSON body, and optional chi URL
// params.
func newAuthedRequest(
	t *testing.T,
	method, path, tenant string,
	body interface{},
	params map[string]string,
) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if tenant != "" {
		ctx = shared.WithTenantID(ctx, tenant)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rr.Body).Decode(v))
}
