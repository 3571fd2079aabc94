// Package api provides the HTTP handlers for the study assistant API.
package api

import (
	"time"

	"github.com/quillstudy/quill-api/internal/domain"
)

// Request types. Validation tags are enforced by shared.ValidateRequest
// before any request reaches the study service.

// ProfileRequest is the body for creating or updating a profile.
type ProfileRequest struct {
	DisplayName       string `json:"display_name" validate:"required"`
	PersonalityMode   string `json:"personality_mode" validate:"required,oneof=strict_teacher friendly pro_coder"`
	PreferredLanguage string `json:"preferred_language" validate:"required"`
}

// CreateChatSessionRequest is the body for creating a chat session.
type CreateChatSessionRequest struct {
	Title string `json:"title" validate:"required"`
}

// AddMessageRequest is the body for appending a message to a session.
type AddMessageRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// NoteRequest is the body for creating or updating a note.
type NoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Topic   string `json:"topic"`
}

// CreateDeckRequest is the body for creating a flashcard deck.
type CreateDeckRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject"`
}

// AddCardRequest is the body for adding a card to a deck.
type AddCardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"`
}

// ReviewCardRequest is the body for the rating-driven review path.
type ReviewCardRequest struct {
	Rating string `json:"rating" validate:"required,oneof=again hard good easy"`
}

// UpdateCardScheduleRequest is the body for the legacy review path, where
// the client supplies the already-computed schedule.
type UpdateCardScheduleRequest struct {
	Interval   int     `json:"interval" validate:"gte=0"`
	EaseFactor float64 `json:"ease_factor" validate:"gte=1.3"`
}

// RecordQuizResultRequest is the body for recording a quiz result.
type RecordQuizResultRequest struct {
	Subject        string `json:"subject" validate:"required"`
	Score          int    `json:"score" validate:"gte=0"`
	TotalQuestions int    `json:"total_questions" validate:"gte=0"`
}

// CreateGoalRequest is the body for creating a goal.
type CreateGoalRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date" validate:"required"`
}

// UpdateProgressStatRequest is the body for upserting a progress stat.
type UpdateProgressStatRequest struct {
	Subject        string  `json:"subject" validate:"required"`
	MasteryPercent float64 `json:"mastery_percent" validate:"gte=0,lte=100"`
}

// Response types. Lists flatten the internal ordered-sequence wrappers into
// plain arrays for transport.

// ChatSessionResponse is one session with its summary and full transcript.
type ChatSessionResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"created_at"`
	Messages  []domain.Message `json:"messages"`
}

// DeckResponse is one deck with its cards flattened into a plain array.
type DeckResponse struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Subject string             `json:"subject"`
	Cards   []domain.Flashcard `json:"cards"`
}

// CreatedResponse carries the server-assigned ID of a newly created entity.
type CreatedResponse struct {
	ID string `json:"id"`
}

func chatSessionToResponse(s domain.ChatSession) ChatSessionResponse {
	return ChatSessionResponse{
		ID:        s.ID,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		Messages:  s.Messages,
	}
}

func deckToResponse(d domain.FlashcardDeck) DeckResponse {
	return DeckResponse{
		ID:      d.ID,
		Name:    d.Name,
		Subject: d.Subject,
		Cards:   d.Cards,
	}
}
