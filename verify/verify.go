package verify

import (
	"errors"
	"fmt"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

// Verify replays path against recipes starting from source, failing at
// the first step whose recipe is out of range or inapplicable, or at
// the end if the resulting state does not equal target exactly
// (spec.md §4.6, §7 "VerifyFailure").
//
// Verify is independent of Find: it trusts nothing about how path was
// produced, only that recipes is the catalog path.Step.RecipeIndex
// refers into.
func Verify(source, target token.Multiset, path search.Path, recipes recipe.Set) error {
	state := source
	for i, step := range path {
		if step.RecipeIndex < 0 || step.RecipeIndex >= len(recipes) {
			return &Error{Step: i, State: state, Reason: RecipeNotApplicable}
		}
		r := recipes[step.RecipeIndex]

		next, err := r.Apply(state)
		if errors.Is(err, recipe.ErrNotApplicable) {
			return &Error{Step: i, State: state, Reason: IntermediateUnderflow}
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		state = next
	}

	if !state.Equal(target) {
		return &Error{Step: len(path), State: state, Reason: FinalStateMismatch}
	}
	return nil
}
