package domain

import (
	"errors"
	"time"
)

// ReviewRating represents the result of a flashcard review.
type ReviewRating string

// Possible review rating values.
const (
	ReviewRatingAgain ReviewRating = "again"
	ReviewRatingHard  ReviewRating = "hard"
	ReviewRatingGood  ReviewRating = "good"
	ReviewRatingEasy  ReviewRating = "easy"
)

// IsValid reports whether the rating is one of the supported values.
func (r ReviewRating) IsValid() bool {
	switch r {
	case ReviewRatingAgain, ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy:
		return true
	}
	return false
}

// Default scheduling values for freshly created cards.
const (
	// DefaultEaseFactor is the starting ease factor for a new card.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor below which a card's ease factor never drops.
	MinEaseFactor = 1.3

	// DefaultDifficulty is the starting difficulty for a new card (1 = easiest).
	DefaultDifficulty = 1
)

// Deck-specific validation errors
var (
	// ErrDeckNameEmpty is returned when a deck's name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")

	// ErrCardFrontEmpty is returned when a flashcard's front side is empty.
	ErrCardFrontEmpty = errors.New("card front cannot be empty")

	// ErrInvalidEaseFactor is returned when an ease factor falls below the floor.
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")

	// ErrInvalidInterval is returned when a review interval is negative.
	ErrInvalidInterval = errors.New("interval must be greater than or equal to 0")

	// ErrInvalidRating is returned when a review rating is not one of the
	// supported values.
	ErrInvalidRating = errors.New("invalid review rating")
)

// Flashcard is a single front/back card with its spaced-repetition schedule.
// Interval is measured in days; EaseFactor never drops below MinEaseFactor.
type Flashcard struct {
	ID         string    `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Difficulty int       `json:"difficulty"`
	NextReview time.Time `json:"next_review"`
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
}

// FlashcardDeck is an ordered collection of flashcards on one subject.
type FlashcardDeck struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Subject string      `json:"subject"`
	Cards   []Flashcard `json:"cards"`
}

// NewFlashcardDeck creates a new deck with an empty card list.
// Returns an error if validation fails.
func NewFlashcardDeck(name, subject string, now time.Time) (*FlashcardDeck, error) {
	if name == "" {
		return nil, ErrDeckNameEmpty
	}

	return &FlashcardDeck{
		ID:      NewID(now),
		Name:    name,
		Subject: subject,
		Cards:   []Flashcard{},
	}, nil
}

// NewFlashcard creates a card with default scheduling values: due immediately,
// zero interval, default ease factor, easiest difficulty.
func NewFlashcard(front, back string, now time.Time) (*Flashcard, error) {
	if front == "" {
		return nil, ErrCardFrontEmpty
	}

	return &Flashcard{
		ID:         NewID(now),
		Front:      front,
		Back:       back,
		Difficulty: DefaultDifficulty,
		NextReview: now.UTC(),
		Interval:   0,
		EaseFactor: DefaultEaseFactor,
	}, nil
}

// AddCard appends a new card with default scheduling values to the deck and
// returns it. Returns an error if the card is invalid.
func (d *FlashcardDeck) AddCard(front, back string, now time.Time) (*Flashcard, error) {
	card, err := NewFlashcard(front, back, now)
	if err != nil {
		return nil, err
	}

	d.Cards = append(d.Cards, *card)
	return card, nil
}

// SetCardSchedule replaces the schedule of the card with the given ID,
// recomputing NextReview as now plus the interval in days. Cards other than
// the matching one are left untouched. Returns false if no card matched;
// absence is not an error on this path.
func (d *FlashcardDeck) SetCardSchedule(cardID string, interval int, easeFactor float64, now time.Time) (bool, error) {
	if interval < 0 {
		return false, ErrInvalidInterval
	}
	if easeFactor < MinEaseFactor {
		return false, ErrInvalidEaseFactor
	}

	for i := range d.Cards {
		if d.Cards[i].ID != cardID {
			continue
		}
		d.Cards[i].Interval = interval
		d.Cards[i].EaseFactor = easeFactor
		d.Cards[i].NextReview = now.UTC().Add(time.Duration(interval) * 24 * time.Hour)
		return true, nil
	}

	return false, nil
}

// Card returns a pointer to the card with the given ID, or nil if absent.
func (d *FlashcardDeck) Card(cardID string) *Flashcard {
	for i := range d.Cards {
		if d.Cards[i].ID == cardID {
			return &d.Cards[i]
		}
	}
	return nil
}
