package service

import "fmt"

// DependencyDirection distinguishes the two ways a task can be linked to
// another: waiting on it, or blocking it.
type DependencyDirection int

const (
	// DirectionWaitingOn means the task cannot proceed until the other
	// task completes. Sent to the backend as depends_on.
	DirectionWaitingOn DependencyDirection = iota + 1

	// DirectionBlocking means the task prevents the other task from
	// proceeding. Sent to the backend as dependency_of.
	DirectionBlocking
)

// DependencyLink is a directed link from a task to another task. The
// zero value is invalid: a link always carries a direction and a target,
// so "no direction" and "both directions" are unrepresentable.
type DependencyLink struct {
	Direction DependencyDirection
	TaskID    string
}

// WaitingOn links a task as waiting on other.
func WaitingOn(other string) DependencyLink {
	return DependencyLink{Direction: DirectionWaitingOn, TaskID: other}
}

// Blocking links a task as blocking other.
func Blocking(other string) DependencyLink {
	return DependencyLink{Direction: DirectionBlocking, TaskID: other}
}

// Validate checks that the link carries a known direction and a target.
func (l DependencyLink) Validate() error {
	if l.TaskID == "" {
		return fmt.Errorf("dependency link: task id is empty")
	}
	switch l.Direction {
	case DirectionWaitingOn, DirectionBlocking:
		return nil
	default:
		return fmt.Errorf("dependency link: unknown direction %d", l.Direction)
	}
}
