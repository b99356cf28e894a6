package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/model"
	"github.com/flourbloom/GG-Personal-Finance-Manager-sub001/internal/service"
)

// DefaultPriorityThreshold is the highest priority value still considered a
// "priority goal". Priority is ascending: 1 is the most urgent.
const DefaultPriorityThreshold = 3

// GoalProgressService computes goal completion and priority views.
type GoalProgressService struct {
	goals             *service.GoalService
	priorityThreshold int
}

// NewGoalProgressService creates a goal progress calculator. A threshold of 0
// falls back to DefaultPriorityThreshold.
func NewGoalProgressService(goals *service.GoalService, priorityThreshold int) *GoalProgressService {
	if priorityThreshold <= 0 {
		priorityThreshold = DefaultPriorityThreshold
	}
	return &GoalProgressService{goals: goals, priorityThreshold: priorityThreshold}
}

// CompletionPercentage returns balance/target as a percentage. A zero target
// yields 0 rather than a division fault. The value is not capped: an
// overfunded goal reads above 100.
func (s *GoalProgressService) CompletionPercentage(goal *model.Goal) float64 {
	if goal == nil || goal.Target == 0 {
		return 0
	}
	return goal.Balance / goal.Target * 100
}

// IsComplete reports whether the goal's saved balance has reached its target.
func (s *GoalProgressService) IsComplete(goal *model.Goal) bool {
	if goal == nil {
		return false
	}
	return goal.Target > 0 && goal.Balance >= goal.Target
}

// PriorityGoals returns the incomplete goals whose priority is at or above
// the urgency threshold (numerically <= threshold), most urgent first. Ties
// keep the older goal first.
func (s *GoalProgressService) PriorityGoals(ctx context.Context) ([]model.Goal, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("priority goals: %w", err)
	}

	var priority []model.Goal
	for _, goal := range goals {
		g := goal
		if s.IsComplete(&g) {
			continue
		}
		if g.Priority > s.priorityThreshold {
			continue
		}
		priority = append(priority, g)
	}

	sort.SliceStable(priority, func(i, j int) bool {
		if priority[i].Priority != priority[j].Priority {
			return priority[i].Priority < priority[j].Priority
		}
		return priority[i].CreateTime < priority[j].CreateTime
	})
	return priority, nil
}
