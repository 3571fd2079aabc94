package domain

import (
	"errors"
	"time"
)

// Goal-specific validation errors
var (
	// ErrGoalTitleEmpty is returned when a goal's title is empty.
	ErrGoalTitleEmpty = errors.New("goal title cannot be empty")
)

// Goal is a study objective with a target date. IsCompleted is monotonic:
// once true it never reverts.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetDate  time.Time `json:"target_date"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewGoal creates a new, uncompleted goal stamped from now.
// Returns an error if validation fails.
func NewGoal(title, description string, targetDate time.Time, now time.Time) (*Goal, error) {
	if title == "" {
		return nil, ErrGoalTitleEmpty
	}

	return &Goal{
		ID:          NewID(now),
		Title:       title,
		Description: description,
		TargetDate:  targetDate.UTC(),
		IsCompleted: false,
		CreatedAt:   now.UTC(),
	}, nil
}

// Complete marks the goal as completed. Completing an already-completed goal
// is a no-op, never an error.
func (g *Goal) Complete() {
	g.IsCompleted = true
}
