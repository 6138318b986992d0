package solve

import (
	"errors"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/arcosphere-go/catalyst/catalyst"
	"github.com/arcosphere-go/catalyst/problem"
	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

// candidateResult pairs one catalyst candidate with the outcome of
// searching it.
type candidateResult struct {
	catalyst token.Multiset
	result   *search.Result
	err      error
}

// Solve returns the paths with minimum catalyst size and, among those,
// minimum path length for the problem (source, target, recipes)
// (spec.md §4.6). Returns ErrInfeasible immediately if the problem's
// own polarity/size invariants rule out any solution, ErrNoSolution
// if catalyst enumeration exhausts MaxCatalystSize without any
// candidate admitting a path, a *TruncatedError if a depth/node cap
// tripped before an answer could be established, or ErrCancelled if
// Ctx was cancelled.
func Solve(source, target token.Multiset, recipes recipe.Set, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := problem.New(source, target, recipes, problem.WithRepetitions(o.Repetitions))
	if err != nil {
		return nil, err
	}
	if !p.Feasible() {
		return nil, ErrInfeasible
	}

	enum := catalyst.New(o.MaxCatalystSize, p)

	var tier []token.Multiset
	tierSize := -1

	flushTier := func() (*Solution, error, bool) {
		if len(tier) == 0 {
			return nil, nil, false
		}
		sol, err := searchTier(p, recipes, tier, o)
		tier = tier[:0]
		if err != nil {
			return nil, err, true
		}
		if sol != nil {
			return sol, nil, true
		}
		return nil, nil, false
	}

	for {
		select {
		case <-o.Ctx.Done():
			return nil, ErrCancelled
		default:
		}

		c, ok := enum.Next()
		if !ok {
			if sol, err, done := flushTier(); done {
				return sol, err
			}
			o.Logger.NoSolution(o.MaxCatalystSize)
			return nil, ErrNoSolution
		}

		size := c.Size()
		if size != tierSize {
			if sol, err, done := flushTier(); done {
				return sol, err
			}
			tierSize = size
		}
		tier = append(tier, c)
	}
}

// searchTier runs search.Find for every candidate in tier (in
// parallel if requested), and if any candidate yields a path, builds
// and returns the Solution for this tier. Returns (nil, nil) if the
// whole tier came up empty.
func searchTier(p *problem.Problem, recipes recipe.Set, tier []token.Multiset, o Options) (*Solution, error) {
	results := make([]candidateResult, len(tier))

	run := func(i int) error {
		c := tier[i]
		start := p.Source().MustAdd(c)
		goal := p.Target().MustAdd(c)

		if o.Logger != nil {
			o.Logger.CatalystTier(c.Size(), c.String())
		}

		res, err := search.Find(start, goal, recipes,
			search.WithMaxDepth(o.MaxDepth),
			search.WithMaxNodes(o.MaxNodes),
			search.WithContext(o.Ctx),
		)
		results[i] = candidateResult{catalyst: c, result: res, err: err}
		return nil
	}

	if o.Parallel && len(tier) > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range tier {
			i := i
			g.Go(func() error { return run(i) })
		}
		_ = g.Wait() // run never itself returns an error; failures live in results[i].err
	} else {
		for i := range tier {
			_ = run(i)
		}
	}

	type found struct {
		group  CatalystGroup
		length int
	}
	var hits []found
	minLength := -1
	for _, cr := range results {
		switch {
		case cr.err == nil:
			if o.Logger != nil {
				o.Logger.BFSLevel(cr.catalyst.String(), cr.result.Depth, len(cr.result.Paths))
			}
			if minLength < 0 || cr.result.Depth < minLength {
				minLength = cr.result.Depth
			}
			hits = append(hits, found{
				group:  CatalystGroup{Catalyst: cr.catalyst, Paths: cr.result.Paths},
				length: cr.result.Depth,
			})
		case errors.Is(cr.err, search.ErrNoPath):
			// not a failure, just nothing found for this candidate
		default:
			return nil, translateSearchError(cr.err, o)
		}
	}

	if len(hits) == 0 {
		return nil, nil
	}

	var groups []CatalystGroup
	for _, h := range hits {
		if h.length == minLength {
			groups = append(groups, h.group)
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Catalyst.Less(groups[j].Catalyst) })

	return &Solution{Groups: groups, CatalystSize: tier[0].Size(), PathLength: minLength}, nil
}

func translateSearchError(err error, o Options) error {
	if o.Logger != nil {
		o.Logger.Truncated(err.Error())
	}
	var te *search.TruncatedError
	if errors.As(err, &te) {
		return &TruncatedError{Cap: te.Cap}
	}
	if errors.Is(err, search.ErrCancelled) {
		return ErrCancelled
	}
	return err
}
