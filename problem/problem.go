package problem

import (
	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/token"
)

// Problem holds a solved-once, never-mutated (SOURCE, TARGET, recipes,
// repetition) tuple plus its precomputed invariants (spec.md §4.3).
type Problem struct {
	rawSource token.Multiset
	rawTarget token.Multiset
	recipes   recipe.Set
	reps      int

	source token.Multiset // reps·rawSource
	target token.Multiset // reps·rawTarget

	polarityDelta    int // negative(target) - negative(source)
	feasible         bool
	minInversions    int
	foldsLowerBound  int
	lengthLowerBound int
}

// Option configures a Problem at construction time.
type Option func(*config)

type config struct {
	repetitions int
}

// WithRepetitions sets the repetition factor n (spec.md §3 "Problem"):
// SOURCE is replaced by n·SOURCE, TARGET by n·TARGET. Default 1.
func WithRepetitions(n int) Option {
	return func(c *config) { c.repetitions = n }
}

// New constructs a Problem, validating recipes and repetitions and
// precomputing every invariant in spec.md §4.3. Returns ErrEmptyRecipes,
// ErrBadRepetitions, or ErrOverflow.
func New(source, target token.Multiset, recipes recipe.Set, opts ...Option) (*Problem, error) {
	cfg := config{repetitions: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.repetitions < 1 {
		return nil, ErrBadRepetitions
	}
	if len(recipes) == 0 {
		return nil, ErrEmptyRecipes
	}

	scaledSource, err := source.Scale(cfg.repetitions)
	if err != nil {
		return nil, ErrOverflow
	}
	scaledTarget, err := target.Scale(cfg.repetitions)
	if err != nil {
		return nil, ErrOverflow
	}

	p := &Problem{
		rawSource: source,
		rawTarget: target,
		recipes:   recipes,
		reps:      cfg.repetitions,
		source:    scaledSource,
		target:    scaledTarget,
	}
	p.precompute()
	return p, nil
}

// Source returns n·SOURCE, the effective starting state before any catalyst.
func (p *Problem) Source() token.Multiset { return p.source }

// Target returns n·TARGET, the effective goal state before any catalyst.
func (p *Problem) Target() token.Multiset { return p.target }

// Recipes returns the problem's recipe catalog.
func (p *Problem) Recipes() recipe.Set { return p.recipes }

// Repetitions returns n.
func (p *Problem) Repetitions() int { return p.reps }

// PolarityDelta returns negative(TARGET) - negative(SOURCE) for the
// effective (n-scaled) states. This is invariant under any catalyst,
// since a catalyst is added identically to both sides (spec.md §4.3).
func (p *Problem) PolarityDelta() int { return p.polarityDelta }

// Feasible reports whether a solution could possibly exist: SOURCE and
// TARGET (after repetition scaling) must have equal size — any recipe
// conserves total token count, and a catalyst is added identically to
// both sides, so no catalyst can close a size gap — and PolarityDelta
// must be a multiple of 4, since only Inversion recipes change
// polarity-class totals, and each does so by exactly ±4. Both
// conditions are catalyst-independent: a catalyst cancels out of both
// computations identically on SOURCE+C and TARGET+C (spec.md §4.3).
func (p *Problem) Feasible() bool {
	return p.source.Size() == p.target.Size() && p.feasible
}

// MinInversions returns |PolarityDelta|/4, the minimum number of
// Inversion steps any solution must contain. Meaningless (0) if
// !Feasible.
func (p *Problem) MinInversions() int { return p.minInversions }

// LengthLowerBound returns a cheap, catalyst-independent lower bound on
// total path length: MinInversions plus a heuristic estimate of the
// folding steps needed to redistribute token identities within each
// polarity class. It is not tight — the searcher's BFS determines the
// true shortest length — but is useful for fast-rejecting depth caps
// that are clearly too small.
func (p *Problem) LengthLowerBound() int { return p.lengthLowerBound }

func (p *Problem) precompute() {
	srcNeg, _ := p.source.PolarityCounts()
	tgtNeg, _ := p.target.PolarityCounts()
	delta := tgtNeg - srcNeg
	p.polarityDelta = delta

	mod := delta % 4
	if mod < 0 {
		mod += 4
	}
	p.feasible = mod == 0
	if p.feasible {
		p.minInversions = abs(delta) / 4
	}

	p.foldsLowerBound = foldsLowerBound(p.source, p.target, delta, p.minInversions)
	p.lengthLowerBound = p.minInversions + p.foldsLowerBound
}

// foldsLowerBound estimates the minimum number of Folding steps needed
// to reconcile per-token differences once polarity-class totals are
// aligned. Each folding step changes exactly four per-token counts by
// one (two decremented, two incremented), so the sum of absolute
// per-token deltas can shrink by at most 4 per step — hence dividing
// by 4 gives a valid (if loose) lower bound. The net effect of the
// inversions is removed first: every Inversion moves one copy of each
// token of one polarity class to one copy of each token of the other,
// so inversions net (toward the side delta calls for) shift each
// negative token by -inversions and each positive token by +inversions
// when delta < 0, and the reverse when delta > 0.
func foldsLowerBound(source, target token.Multiset, delta, inversions int) int {
	shift := inversions
	if delta > 0 {
		shift = -inversions
	}
	sum := 0
	for _, t := range token.Alphabet {
		inv := shift
		if t.Polarity() == token.Negative {
			inv = -shift
		}
		sum += abs(int(target.Count(t)) - int(source.Count(t)) - inv)
	}
	return (sum + 3) / 4
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
