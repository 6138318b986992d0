package verify

import (
	"errors"
	"fmt"
)

// Reason classifies why a Path failed to verify (spec.md §4.7:
// "RecipeNotApplicable, IntermediateUnderflow, FinalStateMismatch").
type Reason uint8

const (
	// RecipeNotApplicable means a step names a recipe index outside the
	// supplied catalog — there is no recipe for it to even attempt.
	RecipeNotApplicable Reason = iota
	// IntermediateUnderflow means the named recipe's inputs are not
	// contained in the running state at that point in the sequence.
	IntermediateUnderflow
	// FinalStateMismatch means every step applied cleanly but the
	// resulting state does not equal the claimed target.
	FinalStateMismatch
)

func (r Reason) String() string {
	switch r {
	case RecipeNotApplicable:
		return "recipe not applicable"
	case IntermediateUnderflow:
		return "intermediate underflow"
	case FinalStateMismatch:
		return "final state mismatch"
	default:
		return "unknown"
	}
}

// Error reports a failed verification: the step index it failed at
// (len(path) for a FinalStateMismatch, which fails after the last
// step), the multiset state the failure was detected against, and why
// (spec.md §7 "VerifyFailure ... includes step index and the multiset
// state at that point").
type Error struct {
	Step   int
	State  fmt.Stringer
	Reason Reason
}

func (e *Error) Error() string {
	return fmt.Sprintf("verify: step %d (state %s): %s", e.Step, e.State, e.Reason)
}

// ErrInternal wraps an invariant violation unrelated to the path's own
// correctness — an overflow while applying a well-formed recipe,
// which spec.md §7 classifies as Internal rather than a VerifyFailure.
var ErrInternal = errors.New("verify: internal invariant violation")
