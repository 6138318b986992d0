package recipe

import "github.com/arcosphere-go/catalyst/token"

// Kind distinguishes the two recipe shapes spec.md §3 allows.
type Kind uint8

const (
	// Folding is a polarity-preserving 1-negative+1-positive → 1-negative+1-positive rule.
	Folding Kind = iota
	// Inversion is a polarity-flipping complete-negative-set ↔ complete-positive-set rule.
	Inversion
)

func (k Kind) String() string {
	if k == Inversion {
		return "inversion"
	}
	return "folding"
}

// Recipe is a rewrite rule: consume Inputs, produce Outputs. Both sides
// must have equal total size; see Validate for the full shape contract.
type Recipe struct {
	Inputs  token.Multiset
	Outputs token.Multiset
}

// New builds a Recipe and validates its shape immediately — recipes are
// immutable catalog entries, not user input, so a malformed one is
// always a construction-time bug, never a runtime input.
func New(inputs, outputs token.Multiset) (Recipe, error) {
	r := Recipe{Inputs: inputs, Outputs: outputs}
	if err := r.Validate(); err != nil {
		return Recipe{}, err
	}
	return r, nil
}

// Validate checks that r conserves token count and is either a Folding
// or an Inversion per spec.md §3.
func (r Recipe) Validate() error {
	if r.Inputs.Size() != r.Outputs.Size() {
		return ErrSizeMismatch
	}
	if _, ok := r.kind(); !ok {
		return ErrInvalidShape
	}
	return nil
}

// Kind reports whether r is a Folding or an Inversion. Callers should
// only call this after Validate has succeeded (New guarantees that).
func (r Recipe) Kind() Kind {
	k, _ := r.kind()
	return k
}

func (r Recipe) kind() (Kind, bool) {
	if isFoldingSide(r.Inputs) && isFoldingSide(r.Outputs) {
		return Folding, true
	}
	if isInversionPair(r.Inputs, r.Outputs) {
		return Inversion, true
	}
	return 0, false
}

// isFoldingSide reports whether m is exactly one negative token plus
// one positive token.
func isFoldingSide(m token.Multiset) bool {
	neg, pos := m.PolarityCounts()
	return neg == 1 && pos == 1
}

// isInversionPair reports whether (a, b) is the complete negative set
// on one side and the complete positive set on the other, in either
// direction.
func isInversionPair(a, b token.Multiset) bool {
	return (isCompleteNegativeSet(a) && isCompletePositiveSet(b)) ||
		(isCompletePositiveSet(a) && isCompleteNegativeSet(b))
}

func isCompleteNegativeSet(m token.Multiset) bool {
	return m.Count(token.E) == 1 && m.Count(token.L) == 1 &&
		m.Count(token.P) == 1 && m.Count(token.X) == 1 &&
		m.Size() == 4
}

func isCompletePositiveSet(m token.Multiset) bool {
	return m.Count(token.G) == 1 && m.Count(token.O) == 1 &&
		m.Count(token.T) == 1 && m.Count(token.Z) == 1 &&
		m.Size() == 4
}

// Apply consumes r.Inputs from state and produces r.Outputs, returning
// the resulting state. ErrNotApplicable if state does not contain
// r.Inputs.
func (r Recipe) Apply(state token.Multiset) (token.Multiset, error) {
	remainder, err := state.Sub(r.Inputs)
	if err != nil {
		return token.Multiset{}, ErrNotApplicable
	}
	// Addition cannot overflow here in practice (recipes are tiny and
	// problem sizes are bounded), but propagate faithfully regardless.
	out, err := remainder.Add(r.Outputs)
	if err != nil {
		return token.Multiset{}, err
	}
	return out, nil
}

// IndependentOf reports whether r and other consume disjoint tokens —
// i.e. applying them is commutative because neither's input overlaps
// the other's. Used both by the searcher's equivalence-folding rule
// (spec.md §4.5) and the scheduler's concurrency grouping (spec.md §4.8).
func (r Recipe) IndependentOf(other Recipe) bool {
	for _, t := range token.Alphabet {
		if r.Inputs.Count(t) > 0 && other.Inputs.Count(t) > 0 {
			return false
		}
	}
	return true
}

// Equal reports whether r and other have identical inputs and outputs.
func (r Recipe) Equal(other Recipe) bool {
	return r.Inputs.Equal(other.Inputs) && r.Outputs.Equal(other.Outputs)
}

// String renders r in the canonical "<inputs> -> <outputs>" form (spec.md §6).
func (r Recipe) String() string {
	return r.Inputs.String() + " -> " + r.Outputs.String()
}
