package study

import (
	"context"
	"errors"
	"sort"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// UpdateProgressStat upserts the tenant's single progress row for a subject,
// stamping it with the current time. A write replaces the prior row.
func (s *Service) UpdateProgressStat(
	ctx context.Context,
	tenant, subject string,
	masteryPercent float64,
) (*domain.ProgressStat, error) {
	defer s.lockTenant(tenant)()

	stat, err := domain.NewProgressStat(subject, masteryPercent, s.now())
	if err != nil {
		return nil, err
	}

	// The subject is the record key, which is what makes the row a
	// per-(tenant, subject) singleton.
	if err := putRecord(ctx, s.kv, tenant, store.CollectionProgress, subject, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// GetProgressStats returns all of the tenant's progress rows, sorted by
// subject for a stable listing.
func (s *Service) GetProgressStats(ctx context.Context, tenant string) ([]domain.ProgressStat, error) {
	defer s.lockTenant(tenant)()

	stats, err := listRecords[domain.ProgressStat](ctx, s.kv, tenant, store.CollectionProgress)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Subject < stats[j].Subject
	})
	return stats, nil
}

// RecordStudyActivity records study activity at the current time and returns
// the resulting streak. The streak grows only when the previous activity fell
// on exactly the prior UTC day; a same-day repeat or any gap resets it to 1.
func (s *Service) RecordStudyActivity(ctx context.Context, tenant string) (domain.StudyStreak, error) {
	defer s.lockTenant(tenant)()

	prev, err := s.loadStreak(ctx, tenant)
	if err != nil {
		return domain.StudyStreak{}, err
	}

	next := domain.NextStreak(prev, s.now())
	if err := putRecord(ctx, s.kv, tenant, store.CollectionStreaks, streakKey, &next); err != nil {
		return domain.StudyStreak{}, err
	}
	return next, nil
}

// GetStudyStreak returns the tenant's streak record. A tenant with no
// recorded activity gets the zero-value record, not an error.
func (s *Service) GetStudyStreak(ctx context.Context, tenant string) (domain.StudyStreak, error) {
	defer s.lockTenant(tenant)()

	return s.loadStreak(ctx, tenant)
}

func (s *Service) loadStreak(ctx context.Context, tenant string) (domain.StudyStreak, error) {
	streak, err := getRecord[domain.StudyStreak](ctx, s.kv, tenant, store.CollectionStreaks, streakKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.StudyStreak{}, nil
		}
		return domain.StudyStreak{}, err
	}
	return *streak, nil
}
