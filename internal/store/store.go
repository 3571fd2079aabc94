package store

import "context"

// Collection names used by the study service. Centralized here so the two KV
// implementations and the migrations stay in agreement about what exists.
const (
	CollectionProfiles = "profiles"
	CollectionChats    = "chat_sessions"
	CollectionNotes    = "notes"
	CollectionDecks    = "decks"
	CollectionQuizzes  = "quiz_results"
	CollectionGoals    = "goals"
	CollectionProgress = "progress_stats"
	CollectionStreaks  = "study_streaks"
)

// KV is the tenant-partitioned collection store. Implementations must create
// tenant partitions and collections lazily on first write: reading from a
// tenant or collection that has never been written to behaves exactly like
// reading from an empty one.
//
// Records are opaque JSON payloads. The KV layer carries no atomicity
// guarantees beyond single-record operations; the study service serializes
// multi-step operations per tenant.
type KV interface {
	// Get returns the record stored under (tenant, collection, id).
	// Returns ErrNotFound if no such record exists.
	Get(ctx context.Context, tenant, collection, id string) ([]byte, error)

	// Put upserts the record under (tenant, collection, id).
	// Last write wins on the same ID.
	Put(ctx context.Context, tenant, collection, id string, data []byte) error

	// Delete removes the record under (tenant, collection, id).
	// Deleting an absent record is not an error.
	Delete(ctx context.Context, tenant, collection, id string) error

	// List returns all records in the tenant's collection, in unspecified
	// order. An unknown tenant or collection yields an empty result, never
	// an error.
	List(ctx context.Context, tenant, collection string) ([][]byte, error)
}
