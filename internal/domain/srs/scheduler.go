package srs

import (
	"errors"
	"math"
	"time"

	"github.com/quillstudy/quill-api/internal/domain"
)

// Common errors
var (
	ErrInvalidRating  = errors.New("invalid review rating")
	ErrNegativeState  = errors.New("current interval must be greater than or equal to 0")
	ErrEaseBelowFloor = errors.New("current ease factor is below the minimum")
)

// Schedule is the result of applying a review rating to a card's state:
// the new interval in days, the new ease factor, and the next due time.
type Schedule struct {
	Interval   int
	EaseFactor float64
	NextReview time.Time
}

// Scheduler computes review schedules from qualitative ratings.
type Scheduler struct {
	params *Params
}

// NewScheduler creates a Scheduler with default parameters.
func NewScheduler() *Scheduler {
	return &Scheduler{params: NewDefaultParams()}
}

// NewSchedulerWithParams creates a Scheduler with custom parameters.
func NewSchedulerWithParams(params *Params) *Scheduler {
	return &Scheduler{params: params}
}

// Review computes the next schedule for a card given the review rating, the
// card's current interval (days) and ease factor, and the review time.
//
// The recurrence:
//
//	again: interval' = 1;                           ease' = max(floor, ease-0.20)
//	hard:  interval' = max(1, ⌊interval*1.2⌋);      ease' = max(floor, ease-0.15)
//	good:  interval' = ⌊interval*ease⌋;             ease' = ease
//	easy:  interval' = ⌊interval*ease*1.3⌋;         ease' = ease+0.15
//
// The next review lands interval' days after now. Neither the interval nor
// the ease factor has a ceiling.
func (s *Scheduler) Review(
	rating domain.ReviewRating,
	interval int,
	easeFactor float64,
	now time.Time,
) (Schedule, error) {
	if !rating.IsValid() {
		return Schedule{}, ErrInvalidRating
	}
	if interval < 0 {
		return Schedule{}, ErrNegativeState
	}
	if easeFactor < s.params.MinEaseFactor {
		return Schedule{}, ErrEaseBelowFloor
	}

	newEase := s.nextEaseFactor(easeFactor, rating)
	newInterval := s.nextInterval(interval, easeFactor, rating)

	return Schedule{
		Interval:   newInterval,
		EaseFactor: newEase,
		NextReview: now.UTC().Add(time.Duration(newInterval) * 24 * time.Hour),
	}, nil
}

// nextEaseFactor applies the per-rating adjustment, clamped at the floor.
func (s *Scheduler) nextEaseFactor(current float64, rating domain.ReviewRating) float64 {
	next := current + s.params.EaseFactorAdjustment[rating]
	if next < s.params.MinEaseFactor {
		next = s.params.MinEaseFactor
	}
	return next
}

// nextInterval computes the new interval in days. Growth multipliers use the
// ease factor as it was before this review's adjustment.
func (s *Scheduler) nextInterval(current int, easeFactor float64, rating domain.ReviewRating) int {
	switch rating {
	case domain.ReviewRatingAgain:
		return 1
	case domain.ReviewRatingHard:
		next := int(math.Floor(float64(current) * s.params.HardIntervalModifier))
		if next < 1 {
			next = 1
		}
		return next
	case domain.ReviewRatingEasy:
		return int(math.Floor(float64(current) * easeFactor * s.params.EasyBonus))
	default: // good
		return int(math.Floor(float64(current) * easeFactor))
	}
}
