package recipe

import "github.com/arcosphere-go/catalyst/token"

// Set is an immutable, ordered catalog of recipes. Order is part of the
// contract: it defines the total order the searcher's equivalence-
// folding rule (spec.md §4.5) and the scheduler's tie-break (spec.md
// §4.8) both sort by.
type Set []Recipe

// New validates every recipe and returns an immutable Set in the given
// order. ErrEmptySet if recipes is empty, or the first validation
// failure encountered.
func New(recipes ...Recipe) (Set, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptySet
	}
	out := make(Set, len(recipes))
	for i, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Applicable returns the indices, in Set order, of every recipe whose
// Inputs are contained in state. Linear scan: for an 8-symbol alphabet
// and a ~10-rule catalog this is faster than any index structure, and
// keeps the searcher's hot loop branch-predictable (spec.md §4.2).
func (s Set) Applicable(state token.Multiset) []int {
	var idx []int
	for i, r := range s {
		if state.Contains(r.Inputs) {
			idx = append(idx, i)
		}
	}
	return idx
}

// mustFold panics on a malformed built-in default recipe; reserved for
// package-init time construction of DefaultRecipes, never called on
// user input.
func mustFold(inputs, outputs token.Multiset) Recipe {
	r, err := New(inputs, outputs)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRecipes returns the canonical 10-rule catalog: 8 foldings
// forming 4 reversible pairs over a cyclic shift of (negative,
// positive) index pairs, plus the 2 inversion directions. spec.md §4.2
// leaves the exact identity of the "typically 10 rules" catalog
// unspecified beyond its shape (folding vs inversion); this is the
// solver's concrete default. Problems that need a specific rule set
// (e.g. to exclude a particular folding) should build their own Set via
// New instead of using this catalog.
func DefaultRecipes() Set {
	neg := [4]token.Token{token.E, token.L, token.P, token.X}
	pos := [4]token.Token{token.G, token.O, token.T, token.Z}

	recipes := make([]Recipe, 0, 10)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		from := token.Of(neg[i], pos[i])
		to := token.Of(neg[j], pos[j])
		recipes = append(recipes, mustFold(from, to))
		recipes = append(recipes, mustFold(to, from))
	}

	negSet := token.Of(neg[0], neg[1], neg[2], neg[3])
	posSet := token.Of(pos[0], pos[1], pos[2], pos[3])
	recipes = append(recipes, mustFold(negSet, posSet))
	recipes = append(recipes, mustFold(posSet, negSet))

	set, err := New(recipes...)
	if err != nil {
		panic(err) // unreachable: every recipe above is constructed to satisfy Validate.
	}
	return set
}
