package domain

import (
	"errors"
	"time"
)

// NanosPerDay is the fixed-width day constant used for streak day arithmetic.
// Day boundaries are UTC epoch days; there is no timezone adjustment.
const NanosPerDay = int64(24 * time.Hour)

// Progress-specific validation errors
var (
	// ErrProgressSubjectEmpty is returned when a progress stat has no subject.
	ErrProgressSubjectEmpty = errors.New("progress subject cannot be empty")

	// ErrInvalidMastery is returned when a mastery percentage is outside 0-100.
	ErrInvalidMastery = errors.New("mastery percent must be between 0 and 100")
)

// ProgressStat tracks mastery of one subject. At most one row exists per
// (tenant, subject); an upsert replaces the prior row.
type ProgressStat struct {
	Subject        string    `json:"subject"`
	MasteryPercent float64   `json:"mastery_percent"`
	LastUpdated    time.Time `json:"last_updated"`
}

// NewProgressStat creates a progress row stamped from now.
// Returns an error if validation fails.
func NewProgressStat(subject string, masteryPercent float64, now time.Time) (*ProgressStat, error) {
	if subject == "" {
		return nil, ErrProgressSubjectEmpty
	}
	if masteryPercent < 0 || masteryPercent > 100 {
		return nil, ErrInvalidMastery
	}

	return &ProgressStat{
		Subject:        subject,
		MasteryPercent: masteryPercent,
		LastUpdated:    now.UTC(),
	}, nil
}

// StudyStreak counts consecutive calendar days with recorded study activity.
// LastStudyDate is kept as unix nanoseconds so the zero value {0, 0} is the
// valid "no activity yet" state returned to tenants with no record.
type StudyStreak struct {
	CurrentStreak int   `json:"current_streak"`
	LastStudyDate int64 `json:"last_study_date"`
}

// NextStreak computes the streak record that results from recording study
// activity at now, given the previous record (zero value if none).
//
// The policy is reset-on-gap, increment-on-consecutive-day: the streak grows
// only when the previous activity fell on exactly the prior UTC epoch day.
// A second activity on the same day resets the streak to 1 rather than
// leaving it alone; this mirrors the observed behavior of the system this
// store was built for and is relied upon by callers.
func NextStreak(prev StudyStreak, now time.Time) StudyStreak {
	next := StudyStreak{
		CurrentStreak: 1,
		LastStudyDate: now.UTC().UnixNano(),
	}

	if prev.LastStudyDate == 0 {
		return next
	}

	lastDay := prev.LastStudyDate / NanosPerDay
	today := now.UTC().UnixNano() / NanosPerDay
	if lastDay == today-1 {
		next.CurrentStreak = prev.CurrentStreak + 1
	}

	return next
}
