package study

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// CreateChatSession creates a new, empty chat session and returns it.
func (s *Service) CreateChatSession(ctx context.Context, tenant, title string) (*domain.ChatSession, error) {
	defer s.lockTenant(tenant)()

	session, err := domain.NewChatSession(title, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionChats, session.ID, session); err != nil {
		return nil, err
	}

	s.logger.Debug("chat session created", slog.String("session_id", session.ID))
	return session, nil
}

// AddMessage appends a message to the session's transcript, stamped with the
// current time. Returns store.ErrChatSessionNotFound if the session (or the
// tenant's session collection) does not exist; message appends are strict.
func (s *Service) AddMessage(
	ctx context.Context,
	tenant, sessionID string,
	role domain.MessageRole,
	content string,
) error {
	defer s.lockTenant(tenant)()

	session, err := getRecord[domain.ChatSession](ctx, s.kv, tenant, store.CollectionChats, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrChatSessionNotFound
		}
		return err
	}

	if err := session.AppendMessage(role, content, s.now()); err != nil {
		return err
	}

	return putRecord(ctx, s.kv, tenant, store.CollectionChats, sessionID, session)
}

// GetChatSessions returns all of the tenant's sessions, most recently
// created first. The ordering is a presentation concern; storage itself
// makes no ordering promise across sessions.
func (s *Service) GetChatSessions(ctx context.Context, tenant string) ([]domain.ChatSession, error) {
	defer s.lockTenant(tenant)()

	sessions, err := listRecords[domain.ChatSession](ctx, s.kv, tenant, store.CollectionChats)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// GetChatMessages returns the ordered transcript of one session.
// Returns store.ErrChatSessionNotFound if the session does not exist.
func (s *Service) GetChatMessages(ctx context.Context, tenant, sessionID string) ([]domain.Message, error) {
	defer s.lockTenant(tenant)()

	session, err := getRecord[domain.ChatSession](ctx, s.kv, tenant, store.CollectionChats, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrChatSessionNotFound
		}
		return nil, err
	}
	return session.Messages, nil
}

// DeleteChatSession removes a session. Deleting an absent session is a
// successful no-op.
func (s *Service) DeleteChatSession(ctx context.Context, tenant, sessionID string) error {
	defer s.lockTenant(tenant)()

	return s.kv.Delete(ctx, tenant, store.CollectionChats, sessionID)
}
