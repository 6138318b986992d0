package schedule

import (
	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

// Stage is one concurrency-grouped batch of recipe applications
// (spec.md §4.8).
//
// Reserved is the portion of the pending multiset this stage does not
// touch. Working is the union of inputs this stage consumes. Released
// is the portion of the post-stage multiset that no remaining step's
// inputs reference at all — free for the caller to use downstream
// without waiting for the rest of the schedule to finish.
type Stage struct {
	Reserved token.Multiset
	Working  token.Multiset
	Released token.Multiset
	Recipes  []recipe.Recipe
	Indices  []int
}

// Stages is an ordered schedule, numbered from 1 in its text rendering
// (spec.md §6).
type Stages []Stage

// Schedule greedily groups path into concurrency stages starting from
// start (spec.md §4.8). Returns an *Error naming the first step whose
// recipe is not applicable to the pending multiset when its turn
// comes — only possible for a path that was never valid.
func Schedule(start token.Multiset, path search.Path) (Stages, error) {
	pending := start
	remaining := path
	offset := 0

	var stages Stages
	for len(remaining) > 0 {
		stage, consumed, err := nextStage(pending, remaining, offset)
		if err != nil {
			return nil, err
		}

		afterInputs, _ := pending.Sub(stage.Working) // guaranteed contained by nextStage
		var producedOutputs token.Multiset
		for _, r := range stage.Recipes {
			producedOutputs = producedOutputs.MustAdd(r.Outputs)
		}
		post := afterInputs.MustAdd(producedOutputs)

		remaining = remaining[consumed:]
		offset += consumed
		stillNeeded := tokenTypesIn(remaining)
		stage.Released = retain(post, func(t token.Token) bool { return !stillNeeded[t] })

		stages = append(stages, stage)
		pending = post
	}

	return stages, nil
}

// nextStage picks the longest prefix of remaining whose input
// multisets are pairwise disjoint and jointly contained in pending,
// breaking ties lexicographically by recipe order when step
// equivalence allows more than one maximal prefix (spec.md §4.8
// "Tie-break"). Because the prefix is built left to right and grown
// greedily, and path's own step order already reflects the
// searcher's canonical tie-break, the leftmost greedy extension is
// always the lexicographically smallest maximal one.
func nextStage(pending token.Multiset, remaining search.Path, offset int) (Stage, int, error) {
	var working token.Multiset
	recipes := make([]recipe.Recipe, 0, len(remaining))
	indices := make([]int, 0, len(remaining))

	for i, step := range remaining {
		candidateWorking, err := working.Add(step.Recipe.Inputs)
		if err != nil {
			break
		}
		if !disjointFrom(working, step.Recipe.Inputs) || !pending.Contains(candidateWorking) {
			if i == 0 {
				return Stage{}, 0, &Error{Step: offset}
			}
			break
		}
		working = candidateWorking
		recipes = append(recipes, step.Recipe)
		indices = append(indices, step.RecipeIndex)
	}

	if len(recipes) == 0 {
		return Stage{}, 0, &Error{Step: offset}
	}

	reserved, _ := pending.Sub(working) // contained by construction
	return Stage{Reserved: reserved, Working: working, Recipes: recipes, Indices: indices}, len(recipes), nil
}

// disjointFrom reports whether m and other share no token type.
func disjointFrom(m, other token.Multiset) bool {
	for _, t := range token.Alphabet {
		if m.Count(t) > 0 && other.Count(t) > 0 {
			return false
		}
	}
	return true
}

// tokenTypesIn returns the set of token types appearing in any step's
// recipe inputs across path, indexed by Token value.
func tokenTypesIn(path search.Path) map[token.Token]bool {
	present := make(map[token.Token]bool, len(token.Alphabet))
	for _, step := range path {
		for _, t := range token.Alphabet {
			if step.Recipe.Inputs.Count(t) > 0 {
				present[t] = true
			}
		}
	}
	return present
}

// retain returns the sub-multiset of m containing only token types for
// which keep returns true.
func retain(m token.Multiset, keep func(token.Token) bool) token.Multiset {
	counts := make([]uint8, len(token.Alphabet))
	for _, t := range token.Alphabet {
		if keep(t) {
			counts[t] = m.Count(t)
		}
	}
	return token.New(counts...)
}
