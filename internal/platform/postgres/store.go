// Package postgres provides a PostgreSQL-backed implementation of the
// tenant-partitioned collection store.
//
// All records live in a single records table keyed by (tenant, collection,
// id) with a JSONB payload. The schema is managed by the goose migrations in
// the migrations directory.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/quillstudy/quill-api/internal/platform/logger"
	"github.com/quillstudy/quill-api/internal/store"
)

// Store implements the store.KV interface using a PostgreSQL database as the
// storage backend.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates a new PostgreSQL implementation of the KV interface.
// It accepts a database connection that should be initialized and managed by
// the caller. If logger is nil, a default logger will be used.
func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Store{
		db:     db,
		logger: log.With(slog.String("component", "postgres_store")),
	}
}

// Ensure Store implements store.KV interface.
var _ store.KV = (*Store)(nil)

// Get implements store.KV.Get.
// Returns store.ErrNotFound if no record exists under (tenant, collection, id).
func (s *Store) Get(ctx context.Context, tenant, collection, id string) ([]byte, error) {
	query := `
		SELECT data FROM records
		WHERE tenant = $1 AND collection = $2 AND id = $3
	`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, tenant, collection, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}

		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("failed to get record",
			slog.String("error", err.Error()),
			slog.String("collection", collection))
		return nil, store.NewStoreError(collection, "get", "query failed", err)
	}

	return data, nil
}

// Put implements store.KV.Put. Last write wins on the same ID.
func (s *Store) Put(ctx context.Context, tenant, collection, id string, data []byte) error {
	query := `
		INSERT INTO records (tenant, collection, id, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant, collection, id)
		DO UPDATE SET data = EXCLUDED.data
	`

	if _, err := s.db.ExecContext(ctx, query, tenant, collection, id, data); err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("failed to put record",
			slog.String("error", err.Error()),
			slog.String("collection", collection))
		return store.NewStoreError(collection, "put", "upsert failed", err)
	}

	return nil
}

// Delete implements store.KV.Delete. Deleting an absent record is a no-op.
func (s *Store) Delete(ctx context.Context, tenant, collection, id string) error {
	query := `
		DELETE FROM records
		WHERE tenant = $1 AND collection = $2 AND id = $3
	`

	if _, err := s.db.ExecContext(ctx, query, tenant, collection, id); err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("failed to delete record",
			slog.String("error", err.Error()),
			slog.String("collection", collection))
		return store.NewStoreError(collection, "delete", "delete failed", err)
	}

	return nil
}

// List implements store.KV.List. An unknown tenant or collection yields an
// empty result. Records are returned in insertion order via the seq column;
// callers that need a specific order still sort for themselves.
func (s *Store) List(ctx context.Context, tenant, collection string) ([][]byte, error) {
	query := `
		SELECT data FROM records
		WHERE tenant = $1 AND collection = $2
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query, tenant, collection)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Error("failed to list records",
			slog.String("error", err.Error()),
			slog.String("collection", collection))
		return nil, store.NewStoreError(collection, "list", "query failed", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var out [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, store.NewStoreError(collection, "list", "scan failed", err)
		}
		out = append(out, data)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(collection, "list", "iteration failed", err)
	}

	return out, nil
}
