package problem

import "errors"

// Sentinel errors for the problem package.
var (
	// ErrBadRepetitions indicates Repetitions < 1.
	ErrBadRepetitions = errors.New("problem: repetitions must be >= 1")

	// ErrEmptyRecipes indicates a nil or empty recipe.Set was supplied.
	ErrEmptyRecipes = errors.New("problem: recipe set must not be empty")

	// ErrOverflow indicates n·SOURCE or n·TARGET overflowed the
	// representable per-token count.
	ErrOverflow = errors.New("problem: repetition scaling overflowed")
)
