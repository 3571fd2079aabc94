package study

import (
	"context"
	"errors"
	"sort"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// CreateNote creates a new note and returns it.
func (s *Service) CreateNote(ctx context.Context, tenant, title, content, topic string) (*domain.Note, error) {
	defer s.lockTenant(tenant)()

	note, err := domain.NewNote(title, content, topic, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionNotes, note.ID, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote replaces a note's title, content, and topic, bumping its update
// time. Note mutations follow the lenient miss policy: updating a note that
// does not exist is a successful no-op, not an error.
func (s *Service) UpdateNote(ctx context.Context, tenant, noteID, title, content, topic string) error {
	defer s.lockTenant(tenant)()

	note, err := getRecord[domain.Note](ctx, s.kv, tenant, store.CollectionNotes, noteID)
	if err != nil {
		return absorbMiss(err, lenientMiss)
	}

	if err := note.Update(title, content, topic, s.now()); err != nil {
		return err
	}

	return putRecord(ctx, s.kv, tenant, store.CollectionNotes, noteID, note)
}

// DeleteNote removes a note. Like all note mutations this is lenient:
// deleting an absent note succeeds.
func (s *Service) DeleteNote(ctx context.Context, tenant, noteID string) error {
	defer s.lockTenant(tenant)()

	return s.kv.Delete(ctx, tenant, store.CollectionNotes, noteID)
}

// GetNotes returns all of the tenant's notes, oldest first.
func (s *Service) GetNotes(ctx context.Context, tenant string) ([]domain.Note, error) {
	defer s.lockTenant(tenant)()

	notes, err := listRecords[domain.Note](ctx, s.kv, tenant, store.CollectionNotes)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

// GetNote returns one note by ID. Single-note reads are strict:
// returns store.ErrNoteNotFound if the note does not exist.
func (s *Service) GetNote(ctx context.Context, tenant, noteID string) (*domain.Note, error) {
	defer s.lockTenant(tenant)()

	note, err := getRecord[domain.Note](ctx, s.kv, tenant, store.CollectionNotes, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}
