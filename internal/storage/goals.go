package storage

import (
	"context"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
)

// CreateGoal inserts a new goal.
func (s *Store) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}
	return s.goals.insert(ctx, s.db, goal)
}

// GetGoal returns the goal with the given id, or (nil, nil) when absent.
func (s *Store) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}
	return s.goals.get(ctx, s.db, id)
}

// ListGoals returns all goals.
func (s *Store) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.goals.list(ctx, s.db, "")
}

// UpdateGoal overwrites the goal row keyed by its id. It fails with
// common.ErrNotFound when the goal does not exist.
func (s *Store) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}
	return s.goals.update(ctx, s.db, goal)
}

// DeleteGoal removes the goal. Deleting a non-existent id is a no-op.
func (s *Store) DeleteGoal(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}
	return s.goals.remove(ctx, s.db, id)
}
