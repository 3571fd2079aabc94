package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcardDefaults(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	card, err := NewFlashcard("What is ATP?", "Adenosine triphosphate", now)
	require.NoError(t, err)

	assert.NotEmpty(t, card.ID)
	assert.Equal(t, DefaultDifficulty, card.Difficulty)
	assert.Equal(t, 0, card.Interval)
	assert.Equal(t, DefaultEaseFactor, card.EaseFactor)
	assert.Equal(t, now, card.NextReview, "new cards are due immediately")
}

func TestNewFlashcardEmptyFront(t *testing.T) {
	t.Parallel()

	_, err := NewFlashcard("", "back", time.Now().UTC())
	assert.ErrorIs(t, err, ErrCardFrontEmpty)
}

func TestDeckAddCardPreservesOrder(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	deck, err := NewFlashcardDeck("Bio", "Biology", now)
	require.NoError(t, err)
	assert.Empty(t, deck.Cards)

	first, err := deck.AddCard("Q1", "A1", now)
	require.NoError(t, err)
	second, err := deck.AddCard("Q2", "A2", now.Add(time.Second))
	require.NoError(t, err)

	require.Len(t, deck.Cards, 2)
	assert.Equal(t, first.ID, deck.Cards[0].ID)
	assert.Equal(t, second.ID, deck.Cards[1].ID)
}

func TestSetCardSchedule(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	deck, err := NewFlashcardDeck("Bio", "Biology", now)
	require.NoError(t, err)
	card, err := deck.AddCard("Q", "A", now)
	require.NoError(t, err)
	other, err := deck.AddCard("Q2", "A2", now)
	require.NoError(t, err)

	reviewedAt := now.Add(time.Hour)
	matched, err := deck.SetCardSchedule(card.ID, 1, 2.5, reviewedAt)
	require.NoError(t, err)
	assert.True(t, matched)

	updated := deck.Card(card.ID)
	require.NotNil(t, updated)
	assert.Equal(t, 1, updated.Interval)
	assert.Equal(t, 2.5, updated.EaseFactor)
	assert.Equal(t, reviewedAt.Add(24*time.Hour), updated.NextReview)

	// A sibling card is left untouched.
	untouched := deck.Card(other.ID)
	require.NotNil(t, untouched)
	assert.Equal(t, 0, untouched.Interval)
	assert.Equal(t, now, untouched.NextReview)
}

func TestSetCardScheduleUnknownCardIsNoOp(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	deck, err := NewFlashcardDeck("Bio", "Biology", now)
	require.NoError(t, err)
	_, err = deck.AddCard("Q", "A", now)
	require.NoError(t, err)

	matched, err := deck.SetCardSchedule("no-such-card", 5, 2.0, now)
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Equal(t, 0, deck.Cards[0].Interval, "deck must be unchanged")
}

func TestSetCardScheduleValidation(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	deck, err := NewFlashcardDeck("Bio", "Biology", now)
	require.NoError(t, err)
	card, err := deck.AddCard("Q", "A", now)
	require.NoError(t, err)

	_, err = deck.SetCardSchedule(card.ID, -1, 2.5, now)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = deck.SetCardSchedule(card.ID, 1, 1.29, now)
	assert.ErrorIs(t, err, ErrInvalidEaseFactor)
}

func TestReviewRatingIsValid(t *testing.T) {
	t.Parallel()

	for _, r := range []ReviewRating{ReviewRatingAgain, ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy} {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, ReviewRating("perfect").IsValid())
	assert.False(t, ReviewRating("").IsValid())
}
