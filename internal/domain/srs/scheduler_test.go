package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillstudy/quill-api/internal/domain"
)

func TestReview(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		rating           domain.ReviewRating
		interval         int
		ease             float64
		expectedInterval int
		expectedEase     float64
	}{
		{
			name:             "again resets interval to one day",
			rating:           domain.ReviewRatingAgain,
			interval:         10,
			ease:             2.5,
			expectedInterval: 1,
			expectedEase:     2.3,
		},
		{
			name:             "again clamps ease at floor",
			rating:           domain.ReviewRatingAgain,
			interval:         3,
			ease:             1.4,
			expectedInterval: 1,
			expectedEase:     1.3,
		},
		{
			name:             "hard grows interval by 1.2",
			rating:           domain.ReviewRatingHard,
			interval:         10,
			ease:             2.5,
			expectedInterval: 12,
			expectedEase:     2.35,
		},
		{
			name:             "hard on a fresh card yields at least one day",
			rating:           domain.ReviewRatingHard,
			interval:         0,
			ease:             2.5,
			expectedInterval: 1,
			expectedEase:     2.35,
		},
		{
			name:             "good multiplies by ease and keeps it",
			rating:           domain.ReviewRatingGood,
			interval:         2,
			ease:             2.0,
			expectedInterval: 4, // floor(2 * 2.0)
			expectedEase:     2.0,
		},
		{
			name:             "good truncates fractional days",
			rating:           domain.ReviewRatingGood,
			interval:         3,
			ease:             2.5,
			expectedInterval: 7, // floor(3 * 2.5) = floor(7.5)
			expectedEase:     2.5,
		},
		{
			name:             "easy applies bonus and raises ease",
			rating:           domain.ReviewRatingEasy,
			interval:         2,
			ease:             2.0,
			expectedInterval: 5, // floor(2 * 2.0 * 1.3) = floor(5.2)
			expectedEase:     2.15,
		},
		{
			name:             "easy on a fresh card stays due",
			rating:           domain.ReviewRatingEasy,
			interval:         0,
			ease:             2.5,
			expectedInterval: 0,
			expectedEase:     2.65,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sched, err := scheduler.Review(tc.rating, tc.interval, tc.ease, now)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedInterval, sched.Interval)
			assert.InDelta(t, tc.expectedEase, sched.EaseFactor, 1e-9)
			assert.Equal(t,
				now.Add(time.Duration(tc.expectedInterval)*24*time.Hour),
				sched.NextReview)
		})
	}
}

func TestReviewEaseNeverDropsBelowFloor(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	interval, ease := 0, domain.DefaultEaseFactor
	ratings := []domain.ReviewRating{
		domain.ReviewRatingAgain, domain.ReviewRatingHard,
		domain.ReviewRatingAgain, domain.ReviewRatingAgain,
		domain.ReviewRatingHard, domain.ReviewRatingAgain,
		domain.ReviewRatingAgain, domain.ReviewRatingHard,
		domain.ReviewRatingAgain, domain.ReviewRatingAgain,
	}

	for i, rating := range ratings {
		sched, err := scheduler.Review(rating, interval, ease, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sched.EaseFactor, domain.MinEaseFactor,
			"ease dropped below floor after %d reviews", i+1)
		interval, ease = sched.Interval, sched.EaseFactor
	}

	assert.InDelta(t, domain.MinEaseFactor, ease, 1e-9)
}

func TestReviewEaseHasNoCeiling(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	ease := domain.DefaultEaseFactor
	for i := 0; i < 20; i++ {
		sched, err := scheduler.Review(domain.ReviewRatingEasy, 1, ease, now)
		require.NoError(t, err)
		ease = sched.EaseFactor
	}
	assert.InDelta(t, domain.DefaultEaseFactor+20*0.15, ease, 1e-9)
}

func TestReviewInvalidInputs(t *testing.T) {
	t.Parallel()
	scheduler := NewScheduler()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := scheduler.Review(domain.ReviewRating("meh"), 1, 2.5, now)
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = scheduler.Review(domain.ReviewRatingGood, -1, 2.5, now)
	assert.ErrorIs(t, err, ErrNegativeState)

	_, err = scheduler.Review(domain.ReviewRatingGood, 1, 1.0, now)
	assert.ErrorIs(t, err, ErrEaseBelowFloor)
}
