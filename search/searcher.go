package search

import (
	"sort"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/token"
)

// rootRecipeIndex marks an edge with no predecessor recipe — the
// sentinel used at depth 0, where there is no "previous step" for the
// equivalence-folding rule to compare against.
const rootRecipeIndex = -1

// edge records one predecessor (state, recipe) pair reaching a state at
// the first depth it was discovered.
type edge struct {
	fromKey     string
	recipeIndex int
}

// node is a frontier entry: a state's value plus every distinct edge
// that reached it at the depth it was first discovered.
type node struct {
	state token.Multiset
	preds []edge
}

// Find runs breadth-first search from start to target over recipes,
// returning every shortest rewrite sequence (spec.md §4.5). Returns
// ErrNoPath if BFS completes within MaxDepth without reaching target,
// a *TruncatedError if a cap trips first, ErrCancelled if Ctx is
// cancelled, or ErrOverflow on an internal invariant violation.
func Find(start, target token.Multiset, recipes recipe.Set, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if start.Equal(target) {
		return &Result{Paths: []Path{{}}, Depth: 0}, nil
	}
	if o.MaxDepth <= 0 {
		return nil, ErrNoPath
	}

	startKey := start.Key()
	levels := []map[string]*node{
		{startKey: {state: start, preds: []edge{{fromKey: "", recipeIndex: rootRecipeIndex}}}},
	}
	visited := map[string]int{startKey: 0}

	targetKey := target.Key()
	depthFound := -1

	for depth := 1; ; depth++ {
		if depth > o.MaxDepth {
			// The frontier was still alive after the previous level (we
			// would not still be looping otherwise) and the target has
			// not been found — we'd need to go deeper than the cap allows.
			return nil, errTruncated("depth")
		}

		select {
		case <-o.Ctx.Done():
			return nil, ErrCancelled
		default:
		}

		var prev map[string]*node
		if depth >= 2 {
			prev = levels[depth-2]
		}
		next, err := expand(levels[depth-1], prev, recipes, visited)
		if err != nil {
			return nil, err
		}
		if len(next) == 0 {
			// Search naturally exhausted: no new states reachable, and
			// target was not among them. No cap was exceeded.
			return nil, ErrNoPath
		}
		if len(visited)+len(next) > o.MaxNodes {
			return nil, errTruncated("nodes")
		}
		for key := range next {
			visited[key] = depth
		}
		levels = append(levels, next)

		if _, ok := next[targetKey]; ok {
			depthFound = depth
			break
		}
	}

	sequences := reconstruct(levels, depthFound, targetKey)
	paths := make([]Path, 0, len(sequences))
	for _, seq := range sequences {
		p := make(Path, len(seq))
		for i, idx := range seq {
			p[i] = Step{RecipeIndex: idx, Recipe: recipes[idx]}
		}
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })

	return &Result{Paths: paths, Depth: depthFound}, nil
}

// expand builds the next BFS level from the current one, applying the
// equivalence-folding rule per incoming edge and skipping any state
// already visited at an earlier (or, by construction, equal) depth.
// prev is the level before current, holding the states every incoming
// edge of current starts from (nil when current is the root level).
func expand(current, prev map[string]*node, recipes recipe.Set, visited map[string]int) (map[string]*node, error) {
	next := make(map[string]*node)
	for key, nd := range current {
		applicable := recipes.Applicable(nd.state)
		for _, e := range nd.preds {
			for _, r2idx := range applicable {
				if e.recipeIndex != rootRecipeIndex {
					r1 := recipes[e.recipeIndex]
					r2 := recipes[r2idx]
					if r1.IndependentOf(r2) && r2idx < e.recipeIndex && prev[e.fromKey].state.Contains(r2.Inputs) {
						continue // r2 could have run before r1: keep only the ascending-index order
					}
				}
				succ, err := recipes[r2idx].Apply(nd.state)
				if err != nil {
					return nil, ErrOverflow
				}
				succKey := succ.Key()
				if _, seen := visited[succKey]; seen {
					continue
				}
				n, ok := next[succKey]
				if !ok {
					n = &node{state: succ}
					next[succKey] = n
				}
				n.preds = append(n.preds, edge{fromKey: key, recipeIndex: r2idx})
			}
		}
	}
	return next, nil
}

// reconstruct walks predecessors from (depth, targetKey) back to depth
// 0, returning every distinct forward sequence of recipe indices.
// Memoized per (depth, key) since multiple edges can share ancestors.
func reconstruct(levels []map[string]*node, depth int, key string) [][]int {
	memo := make(map[int]map[string][][]int)
	var walk func(d int, k string) [][]int
	walk = func(d int, k string) [][]int {
		if d == 0 {
			return [][]int{{}}
		}
		if byKey, ok := memo[d]; ok {
			if cached, ok := byKey[k]; ok {
				return cached
			}
		} else {
			memo[d] = make(map[string][][]int)
		}

		nd := levels[d][k]
		var results [][]int
		for _, e := range nd.preds {
			prefixes := walk(d-1, e.fromKey)
			for _, prefix := range prefixes {
				seq := make([]int, len(prefix)+1)
				copy(seq, prefix)
				seq[len(prefix)] = e.recipeIndex
				results = append(results, seq)
			}
		}
		memo[d][k] = results
		return results
	}
	return walk(depth, key)
}
