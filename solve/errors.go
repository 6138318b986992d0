package solve

import (
	"errors"
	"fmt"
)

// ErrNoSolution indicates exhaustive search within MaxCatalystSize
// found no path for any candidate catalyst.
var ErrNoSolution = errors.New("solve: no solution within catalyst size cap")

// ErrCancelled indicates the solver's context was cancelled before it
// could finish.
var ErrCancelled = errors.New("solve: cancelled")

// ErrInfeasible indicates the problem fails Problem.Feasible() —
// no catalyst, however large, could make SOURCE and TARGET reachable
// from one another — so the solver never enumerates candidates at
// all.
var ErrInfeasible = errors.New("solve: problem is infeasible")

// TruncatedError indicates a caller-supplied cap was exceeded before
// the solver could establish whether a solution exists. Cap is "depth"
// or "nodes", copied from the per-candidate search that tripped it;
// exhausting MaxCatalystSize is reported as ErrNoSolution instead.
type TruncatedError struct {
	Cap string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("solve: truncated: %s cap exceeded", e.Cap)
}
