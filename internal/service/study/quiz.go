package study

import (
	"context"
	"sort"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// RecordQuizResult appends an immutable quiz record stamped with the current
// time and returns it.
func (s *Service) RecordQuizResult(
	ctx context.Context,
	tenant, subject string,
	score, totalQuestions int,
) (*domain.QuizResult, error) {
	defer s.lockTenant(tenant)()

	result, err := domain.NewQuizResult(subject, score, totalQuestions, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionQuizzes, result.ID, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetQuizResults returns all of the tenant's quiz records, most recent first.
// Ties keep their insertion order.
func (s *Service) GetQuizResults(ctx context.Context, tenant string) ([]domain.QuizResult, error) {
	defer s.lockTenant(tenant)()

	results, err := listRecords[domain.QuizResult](ctx, s.kv, tenant, store.CollectionQuizzes)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.After(results[j].Timestamp)
	})
	return results, nil
}
