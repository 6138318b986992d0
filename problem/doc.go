// Package problem wraps a (SOURCE, TARGET, recipe set, repetition)
// tuple into an immutable Problem, precomputing the invariants the
// solver needs before it ever enumerates a catalyst: the polarity
// delta, the minimum number of inversion steps any solution must use,
// and a cheap lower bound on total path length.
//
// A Problem is constructed once per solve and never mutated — see
// spec.md §4.3.
package problem
