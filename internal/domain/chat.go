package domain

import (
	"errors"
	"time"
)

// MessageRole identifies the author of a chat message.
type MessageRole string

// Possible message roles.
const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Chat-specific validation errors
var (
	// ErrChatTitleEmpty is returned when a chat session title is empty.
	ErrChatTitleEmpty = errors.New("chat session title cannot be empty")

	// ErrInvalidMessageRole is returned when a message role is not one of
	// the supported values.
	ErrInvalidMessageRole = errors.New("invalid message role")

	// ErrMessageContentEmpty is returned when a message's content is empty.
	ErrMessageContentEmpty = errors.New("message content cannot be empty")
)

// Message is a single chat turn. Messages are append-only; the Messages slice
// of a session preserves insertion order, and Timestamp is advisory only.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// ChatSession is an ordered transcript of messages between the tenant and the
// assistant.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// NewChatSession creates a new session with an empty message list.
// Returns an error if validation fails.
func NewChatSession(title string, now time.Time) (*ChatSession, error) {
	if title == "" {
		return nil, ErrChatTitleEmpty
	}

	return &ChatSession{
		ID:        NewID(now),
		Title:     title,
		CreatedAt: now.UTC(),
		Messages:  []Message{},
	}, nil
}

// AppendMessage adds a message to the end of the transcript with its
// timestamp stamped from now. Returns an error if the message is invalid.
func (s *ChatSession) AppendMessage(role MessageRole, content string, now time.Time) error {
	if role != MessageRoleUser && role != MessageRoleAssistant {
		return ErrInvalidMessageRole
	}
	if content == "" {
		return ErrMessageContentEmpty
	}

	s.Messages = append(s.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: now.UTC(),
	})
	return nil
}
