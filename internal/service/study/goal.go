package study

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/quillstudy/quill-api/internal/domain"
	"github.com/quillstudy/quill-api/internal/store"
)

// CreateGoal creates a new, uncompleted goal and returns it.
func (s *Service) CreateGoal(
	ctx context.Context,
	tenant, title, description string,
	targetDate time.Time,
) (*domain.Goal, error) {
	defer s.lockTenant(tenant)()

	goal, err := domain.NewGoal(title, description, targetDate, s.now())
	if err != nil {
		return nil, err
	}

	if err := putRecord(ctx, s.kv, tenant, store.CollectionGoals, goal.ID, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// CompleteGoal marks a goal as completed. Completion is monotonic and
// idempotent: re-completing an already-completed goal succeeds without
// changing anything. Returns store.ErrGoalNotFound if the goal is absent.
func (s *Service) CompleteGoal(ctx context.Context, tenant, goalID string) (*domain.Goal, error) {
	defer s.lockTenant(tenant)()

	goal, err := getRecord[domain.Goal](ctx, s.kv, tenant, store.CollectionGoals, goalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrGoalNotFound
		}
		return nil, err
	}

	if goal.IsCompleted {
		return goal, nil
	}

	goal.Complete()
	if err := putRecord(ctx, s.kv, tenant, store.CollectionGoals, goalID, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetGoals returns all of the tenant's goals, oldest first.
func (s *Service) GetGoals(ctx context.Context, tenant string) ([]domain.Goal, error) {
	defer s.lockTenant(tenant)()

	goals, err := listRecords[domain.Goal](ctx, s.kv, tenant, store.CollectionGoals)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.Before(goals[j].CreatedAt)
	})
	return goals, nil
}
