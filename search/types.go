package search

import (
	"strconv"
	"strings"

	"github.com/arcosphere-go/catalyst/recipe"
)

// Step is one recipe application within a Path.
type Step struct {
	// RecipeIndex is the index of the applied recipe within the
	// recipe.Set the search ran against — the same total order used by
	// the equivalence-folding rule and the canonical serialization.
	RecipeIndex int
	Recipe      recipe.Recipe
}

// Path is an ordered sequence of recipe applications.
type Path []Step

// CanonicalKey returns a stable, comparable string for Path —
// concatenated recipe indices — used to sort and deduplicate paths
// deterministically (spec.md §3 "Path").
func (p Path) CanonicalKey() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s.RecipeIndex))
	}
	return b.String()
}

// Less orders two Paths first by length, then by CanonicalKey
// (spec.md §3 "Path").
func (p Path) Less(other Path) bool {
	if len(p) != len(other) {
		return len(p) < len(other)
	}
	return p.CanonicalKey() < other.CanonicalKey()
}

// Result is the outcome of a successful Find: every shortest path, all
// sharing the same Depth.
type Result struct {
	Paths []Path
	Depth int
}
