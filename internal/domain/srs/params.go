// Package srs implements the spaced-repetition review scheduler.
//
// The scheduler is a pure function over a card's current schedule and a
// qualitative review rating. It carries no storage or clock of its own; the
// study service feeds it the current time and persists the result.
package srs

import (
	"github.com/quillstudy/quill-api/internal/domain"
)

// Params defines the configurable parameters for the review scheduler.
type Params struct {
	// MinEaseFactor is the floor for a card's ease factor. There is no
	// enforced ceiling; repeated easy reviews grow the ease without bound.
	MinEaseFactor float64

	// EaseFactorAdjustment is the per-rating delta applied to the ease factor.
	EaseFactorAdjustment map[domain.ReviewRating]float64

	// HardIntervalModifier is the growth multiplier for hard reviews.
	HardIntervalModifier float64

	// EasyBonus is the extra growth multiplier for easy reviews, applied on
	// top of the ease factor.
	EasyBonus float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,

		EaseFactorAdjustment: map[domain.ReviewRating]float64{
			domain.ReviewRatingAgain: -0.20,
			domain.ReviewRatingHard:  -0.15,
			domain.ReviewRatingGood:  0.0,
			domain.ReviewRatingEasy:  0.15,
		},

		HardIntervalModifier: 1.2,
		EasyBonus:            1.3,
	}
}
