package domain

import (
	"errors"
	"time"
)

// Note-specific validation errors
var (
	// ErrNoteTitleEmpty is returned when a note's title is empty.
	ErrNoteTitleEmpty = errors.New("note title cannot be empty")
)

// Note is a free-form study note. UpdatedAt never precedes CreatedAt.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a new Note with both timestamps stamped from now.
// Returns an error if validation fails.
func NewNote(title, content, topic string, now time.Time) (*Note, error) {
	if title == "" {
		return nil, ErrNoteTitleEmpty
	}

	return &Note{
		ID:        NewID(now),
		Title:     title,
		Content:   content,
		Topic:     topic,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// Update replaces the note's title, content, and topic, bumping UpdatedAt.
// ID and CreatedAt are preserved. Returns an error if the new title is empty.
func (n *Note) Update(title, content, topic string, now time.Time) error {
	if title == "" {
		return ErrNoteTitleEmpty
	}

	n.Title = title
	n.Content = content
	n.Topic = topic
	n.UpdatedAt = now.UTC()
	return nil
}
