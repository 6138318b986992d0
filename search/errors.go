package search

import (
	"errors"
	"fmt"
)

// ErrNoPath indicates the BFS completed within the depth cap without
// reaching the target state.
var ErrNoPath = errors.New("search: no path within depth cap")

// ErrOverflow indicates a recipe application overflowed a multiset
// count — an internal invariant violation, never caused by user input
// (recipes and states are bounded well under the representable range
// in any realistic problem).
var ErrOverflow = errors.New("search: internal multiset overflow")

// ErrCancelled indicates the search's context was cancelled between
// BFS levels.
var ErrCancelled = errors.New("search: cancelled")

// TruncatedError indicates a caller-supplied cap was exceeded before
// the search completed. Cap is "depth" or "nodes".
type TruncatedError struct {
	Cap string
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("search: truncated: %s cap exceeded", e.Cap)
}

// errTruncated builds the *TruncatedError for the named cap; callers
// that want to branch on the specific cap use errors.As and read Cap
// instead of matching strings.
func errTruncated(cap string) error { return &TruncatedError{Cap: cap} }
