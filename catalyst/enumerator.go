package catalyst

import "github.com/arcosphere-go/catalyst/token"

// feasibilityChecker is the one fact the enumerator needs from a
// problem.Problem. Kept as a tiny interface (rather than importing
// package problem directly) so catalyst has no dependency on problem,
// matching spec.md §9's "polymorphism over ... generic over anything
// exposing" philosophy.
type feasibilityChecker interface {
	Feasible() bool
}

// Enumerator produces candidate Catalyst multisets in non-decreasing
// size, lexicographic within a size, starting from the empty multiset,
// up to MaxSize inclusive. It is a lazy, stateless-beyond-its-cursor
// sequence: construct once, call Next repeatedly, or Reset to start
// over (spec.md §4.4).
type Enumerator struct {
	maxSize int
	problem feasibilityChecker

	size int   // current size tier
	idx  []int // current combination-with-repetition indices for size, nil before first of a tier
	done bool
}

// New builds an Enumerator bounded by maxSize (inclusive). problem
// supplies the one-time feasibility check; if problem is nil the
// feasibility filter is skipped (useful for testing the enumerator in
// isolation).
func New(maxSize int, problem feasibilityChecker) *Enumerator {
	e := &Enumerator{maxSize: maxSize, problem: problem}
	e.Reset()
	return e
}

// Reset rewinds the sequence to the empty catalyst.
func (e *Enumerator) Reset() {
	e.size = 0
	e.idx = nil
	e.done = e.problem != nil && !e.problem.Feasible()
}

// Next returns the next candidate catalyst in the sequence, or
// (zero, false) once MaxSize is exhausted (or the problem is
// infeasible).
func (e *Enumerator) Next() (Catalyst, bool) {
	if e.done {
		return Catalyst{}, false
	}
	for {
		if e.size > e.maxSize {
			e.done = true
			return Catalyst{}, false
		}
		if e.size == 0 {
			e.size++
			return Catalyst{}, true // the empty catalyst
		}
		if e.idx == nil {
			e.idx = make([]int, e.size)
			return e.build(), true
		}
		if advance(e.idx, numTokens) {
			return e.build(), true
		}
		e.size++
		e.idx = nil
	}
}

func (e *Enumerator) build() Catalyst {
	tokens := make([]token.Token, len(e.idx))
	for i, v := range e.idx {
		tokens[i] = token.Alphabet[v]
	}
	return token.Of(tokens...)
}

// advance steps idx to the lexicographically next non-decreasing
// combination-with-repetition over an alphabet of size n, returning
// false once the current size tier is exhausted (idx was already the
// maximal combination, all n-1).
func advance(idx []int, n int) bool {
	i := len(idx) - 1
	for i >= 0 && idx[i] == n-1 {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < len(idx); j++ {
		idx[j] = idx[i]
	}
	return true
}
