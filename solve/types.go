package solve

import (
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

// CatalystGroup is every shortest path found using one particular
// catalyst (spec.md §4.6 "grouped or tagged by catalyst").
type CatalystGroup struct {
	Catalyst token.Multiset
	Paths    []search.Path
}

// Solution is the solver's result: every CatalystGroup sharing the
// minimum catalyst size and, among those, the minimum path length
// (spec.md §4.6, §8 Invariant 4 "all paths returned for a given solve
// share the same catalyst size and the same length").
//
// Groups is sorted by Catalyst canonical bytes; within each group,
// Paths is sorted by Path.Less — both independent of worker count or
// scheduling order (spec.md §5 "Ordering guarantees").
type Solution struct {
	Groups       []CatalystGroup
	CatalystSize int
	PathLength   int
}
