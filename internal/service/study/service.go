// Package study implements the study assistant's operation surface: profile
// management, chat transcripts, notes, flashcard decks with review
// scheduling, quiz history, goals, progress stats, and the study streak.
//
// Every operation is scoped to a tenant (the caller's identity token, as
// verified by the transport layer) and executes as an atomic unit with
// respect to that tenant: a keyed mutex serializes operations per tenant
// while distinct tenants proceed fully in parallel.
package study

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/quillstudy/quill-api/internal/domain/srs"
	"github.com/quillstudy/quill-api/internal/store"
)

// missPolicy controls how a mutation on an absent entity is reported.
//
// The two policies coexist on purpose: chat sessions, decks, and single-note
// reads fail hard on absence, while note update/delete and card schedule
// replacement absorb the miss as a successful no-op. Existing clients rely
// on the asymmetry, so it is named here rather than normalized away.
type missPolicy int

const (
	// strictMiss surfaces store.ErrNotFound when the target entity is absent.
	strictMiss missPolicy = iota

	// lenientMiss treats an absent target as a successful no-op.
	lenientMiss
)

// Singleton record keys within their collections.
const (
	profileKey = "profile"
	streakKey  = "streak"
)

// Service implements the full study operation surface over a tenant-
// partitioned KV store.
type Service struct {
	kv        store.KV
	scheduler *srs.Scheduler
	logger    *slog.Logger
	now       func() time.Time

	locks sync.Map // tenant -> *sync.Mutex
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the service's time source. All timestamps, entity IDs,
// review schedules, and streak arithmetic flow from this clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithScheduler overrides the review scheduler.
func WithScheduler(scheduler *srs.Scheduler) Option {
	return func(s *Service) {
		s.scheduler = scheduler
	}
}

// NewService creates a study service backed by the given KV store.
// If logger is nil, the default logger is used.
func NewService(kv store.KV, logger *slog.Logger, opts ...Option) *Service {
	if kv == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("kv cannot be nil for study service")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		kv:        kv,
		scheduler: srs.NewScheduler(),
		logger:    logger.With(slog.String("component", "study_service")),
		now:       func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// lockTenant acquires the tenant's mutex and returns the release function.
// Cross-tenant operations never contend; there is no global lock.
func (s *Service) lockTenant(tenant string) func() {
	mu, _ := s.locks.LoadOrStore(tenant, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// absorbMiss applies the given miss policy to a lookup error.
func absorbMiss(err error, policy missPolicy) error {
	if policy == lenientMiss && store.IsNotFoundError(err) {
		return nil
	}
	return err
}

// getRecord loads and decodes one record.
func getRecord[T any](ctx context.Context, kv store.KV, tenant, collection, id string) (*T, error) {
	data, err := kv.Get(ctx, tenant, collection, id)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, store.NewStoreError(collection, "get", "decode failed", err)
	}
	return &v, nil
}

// putRecord encodes and upserts one record.
func putRecord[T any](ctx context.Context, kv store.KV, tenant, collection, id string, v *T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return store.NewStoreError(collection, "put", "encode failed", err)
	}
	return kv.Put(ctx, tenant, collection, id, data)
}

// listRecords loads and decodes a whole collection.
func listRecords[T any](ctx context.Context, kv store.KV, tenant, collection string) ([]T, error) {
	records, err := kv.List(ctx, tenant, collection)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, data := range records {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, store.NewStoreError(collection, "list", "decode failed", err)
		}
		out = append(out, v)
	}
	return out, nil
}
