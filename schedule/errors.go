package schedule

import "fmt"

// Error reports that path is unschedulable: step index i's recipe was
// not applicable to the pending multiset when its turn came. This can
// only happen for a path that was never valid to begin with — a valid
// path (per verify.Verify) always schedules cleanly (spec.md §4.8
// "Failure ... does not attempt repair").
type Error struct {
	Step int
}

func (e *Error) Error() string {
	return fmt.Sprintf("schedule: step %d: recipe not applicable to pending multiset", e.Step)
}
