// Package memory provides an in-memory implementation of the tenant-
// partitioned collection store. It is the default backend and the one used
// throughout the test suite.
package memory

import (
	"context"
	"sync"

	"github.com/quillstudy/quill-api/internal/store"
)

// partition holds one tenant's collections. Each partition has its own lock
// so operations against distinct tenants never contend.
type partition struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// Store is an in-memory tenant-partitioned KV. Tenant partitions and
// collections are created lazily on first write. The zero value is not
// usable; construct with NewStore.
type Store struct {
	partitions sync.Map // tenant -> *partition
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Ensure Store implements store.KV.
var _ store.KV = (*Store)(nil)

// part returns the tenant's partition, creating it if needed.
func (s *Store) part(tenant string) *partition {
	if p, ok := s.partitions.Load(tenant); ok {
		return p.(*partition)
	}
	p, _ := s.partitions.LoadOrStore(tenant, &partition{
		collections: make(map[string]map[string][]byte),
	})
	return p.(*partition)
}

// Get implements store.KV.Get.
func (s *Store) Get(ctx context.Context, tenant, collection, id string) ([]byte, error) {
	p, ok := s.partitions.Load(tenant)
	if !ok {
		return nil, store.ErrNotFound
	}
	part := p.(*partition)

	part.mu.RLock()
	defer part.mu.RUnlock()

	data, ok := part.collections[collection][id]
	if !ok {
		return nil, store.ErrNotFound
	}

	// Copy so callers can't mutate stored state.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put implements store.KV.Put.
func (s *Store) Put(ctx context.Context, tenant, collection, id string, data []byte) error {
	part := s.part(tenant)

	stored := make([]byte, len(data))
	copy(stored, data)

	part.mu.Lock()
	defer part.mu.Unlock()

	coll, ok := part.collections[collection]
	if !ok {
		coll = make(map[string][]byte)
		part.collections[collection] = coll
	}
	coll[id] = stored
	return nil
}

// Delete implements store.KV.Delete. Deleting an absent record is a no-op.
func (s *Store) Delete(ctx context.Context, tenant, collection, id string) error {
	p, ok := s.partitions.Load(tenant)
	if !ok {
		return nil
	}
	part := p.(*partition)

	part.mu.Lock()
	defer part.mu.Unlock()

	delete(part.collections[collection], id)
	return nil
}

// List implements store.KV.List. Unknown tenants and collections yield an
// empty result.
func (s *Store) List(ctx context.Context, tenant, collection string) ([][]byte, error) {
	p, ok := s.partitions.Load(tenant)
	if !ok {
		return nil, nil
	}
	part := p.(*partition)

	part.mu.RLock()
	defer part.mu.RUnlock()

	coll := part.collections[collection]
	out := make([][]byte, 0, len(coll))
	for _, data := range coll {
		record := make([]byte, len(data))
		copy(record, data)
		out = append(out, record)
	}
	return out, nil
}
