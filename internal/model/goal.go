package model

import "time"

// Goal is a savings target. Balance holds the amount saved so far. Priority is
// ascending: 1 is the most urgent. Deadline may be empty for open-ended goals.
type Goal struct {
	Funds
	Target     float64
	Deadline   string // yyyy-MM-dd, empty when no deadline is set
	Priority   int
	CreateTime string // yyyy-MM-dd HH:mm:ss
}

// NewGoal creates a goal with a generated id, zero saved balance, and the
// current time as its creation timestamp.
func NewGoal(name string, target float64, priority int) *Goal {
	return &Goal{
		Funds:      Funds{ID: NewGoalID(), Name: name},
		Target:     target,
		Priority:   priority,
		CreateTime: time.Now().Format(DateTimeLayout),
	}
}
