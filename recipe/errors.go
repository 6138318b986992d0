package recipe

import "errors"

// Sentinel errors for the recipe package.
var (
	// ErrSizeMismatch indicates a Recipe whose inputs and outputs differ
	// in total token count; recipes must conserve size.
	ErrSizeMismatch = errors.New("recipe: inputs and outputs differ in size")

	// ErrInvalidShape indicates a Recipe that is neither a valid Folding
	// (1 negative + 1 positive on each side) nor a valid Inversion (the
	// complete negative set on one side, the complete positive set on
	// the other).
	ErrInvalidShape = errors.New("recipe: not a valid folding or inversion")

	// ErrEmptySet indicates a Set was constructed with zero recipes.
	ErrEmptySet = errors.New("recipe: set must contain at least one recipe")

	// ErrNotApplicable indicates Apply was called with a Recipe whose
	// inputs are not contained in the given state.
	ErrNotApplicable = errors.New("recipe: inputs not contained in state")
)
