package domain

import (
	"errors"
	"time"
)

// Quiz-specific validation errors
var (
	// ErrQuizSubjectEmpty is returned when a quiz result has no subject.
	ErrQuizSubjectEmpty = errors.New("quiz subject cannot be empty")

	// ErrInvalidQuizScore is returned when a score is negative or exceeds
	// the total number of questions.
	ErrInvalidQuizScore = errors.New("quiz score must be between 0 and total questions")
)

// QuizResult records one completed quiz. Results are immutable once recorded.
type QuizResult struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewQuizResult creates an immutable quiz record stamped from now.
// Returns an error if validation fails.
func NewQuizResult(subject string, score, totalQuestions int, now time.Time) (*QuizResult, error) {
	if subject == "" {
		return nil, ErrQuizSubjectEmpty
	}
	if score < 0 || totalQuestions < 0 || score > totalQuestions {
		return nil, ErrInvalidQuizScore
	}

	return &QuizResult{
		ID:             NewID(now),
		Subject:        subject,
		Score:          score,
		TotalQuestions: totalQuestions,
		Timestamp:      now.UTC(),
	}, nil
}
