package service

import (
	"context"
	"fmt"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/common"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// GoalService manages goal entities.
type GoalService struct {
	storage Storage
}

var _ CRUD[model.Goal] = (*GoalService)(nil)

// NewGoalService creates a goal service over the given storage.
func NewGoalService(storage Storage) *GoalService {
	return &GoalService{storage: storage}
}

// Create stores a new goal.
func (s *GoalService) Create(ctx context.Context, goal *model.Goal) error {
	if err := s.storage.CreateGoal(ctx, goal); err != nil {
		common.LogError(err, "failed to create goal", common.Fields{"goal": goal.ID})
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// Get returns the goal with the given id, or (nil, nil) when absent.
func (s *GoalService) Get(ctx context.Context, id string) (*model.Goal, error) {
	goal, err := s.storage.GetGoal(ctx, id)
	if err != nil {
		common.LogError(err, "failed to read goal", common.Fields{"goal": id})
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return goal, nil
}

// List returns all goals.
func (s *GoalService) List(ctx context.Context) ([]model.Goal, error) {
	goals, err := s.storage.ListGoals(ctx)
	if err != nil {
		common.LogError(err, "failed to list goals", nil)
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// Update overwrites the goal keyed by its id. It fails with
// common.ErrNotFound when the goal does not exist.
func (s *GoalService) Update(ctx context.Context, goal *model.Goal) error {
	if err := s.storage.UpdateGoal(ctx, goal); err != nil {
		common.LogError(err, "failed to update goal", common.Fields{"goal": goal.ID})
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// Delete removes the goal. Deleting a non-existent id is a no-op.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteGoal(ctx, id); err != nil {
		common.LogError(err, "failed to delete goal", common.Fields{"goal": id})
		return fmt.Errorf("delete goal: %w", err)
	}
	return nil
}
