package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/schedule"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

func parse(t *testing.T, s string) token.Multiset {
	t.Helper()
	m, err := token.Parse(s)
	require.NoError(t, err)
	return m
}

// TestSchedule_IndependentStepsGroupIntoOneStage exercises the case
// spec.md §4.8 exists for: two recipes with disjoint inputs, both
// satisfiable from the starting multiset at once, should land in a
// single stage rather than two sequential ones.
func TestSchedule_IndependentStepsGroupIntoOneStage(t *testing.T) {
	a, err := recipe.New(parse(t, "EG"), parse(t, "LO"))
	require.NoError(t, err)
	b, err := recipe.New(parse(t, "PT"), parse(t, "XZ"))
	require.NoError(t, err)

	path := search.Path{
		{RecipeIndex: 0, Recipe: a},
		{RecipeIndex: 1, Recipe: b},
	}

	stages, err := schedule.Schedule(parse(t, "EGPT"), path)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Len(t, stages[0].Recipes, 2)
	assert.True(t, stages[0].Working.Equal(parse(t, "EGPT")))
	assert.True(t, stages[0].Reserved.IsEmpty())
}

// TestSchedule_DependentStepsSplitAcrossStages covers the case where
// the second step's input isn't available until the first produces it.
func TestSchedule_DependentStepsSplitAcrossStages(t *testing.T) {
	r1, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	r2, err := recipe.New(parse(t, "PG"), parse(t, "XO"))
	require.NoError(t, err)

	path := search.Path{
		{RecipeIndex: 0, Recipe: r1},
		{RecipeIndex: 1, Recipe: r2},
	}

	stages, err := schedule.Schedule(parse(t, "EOP"), path)
	require.NoError(t, err)
	require.Len(t, stages, 2)

	assert.Len(t, stages[0].Recipes, 1)
	assert.True(t, stages[0].Working.Equal(parse(t, "EO")))
	assert.True(t, stages[0].Reserved.Equal(parse(t, "P")))

	assert.Len(t, stages[1].Recipes, 1)
	assert.True(t, stages[1].Working.Equal(parse(t, "PG")))
}

func TestSchedule_ReleasedTokensNotNeededAgain(t *testing.T) {
	r1, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	r2, err := recipe.New(parse(t, "PG"), parse(t, "XO"))
	require.NoError(t, err)

	path := search.Path{
		{RecipeIndex: 0, Recipe: r1},
		{RecipeIndex: 1, Recipe: r2},
	}

	stages, err := schedule.Schedule(parse(t, "EOP"), path)
	require.NoError(t, err)
	require.Len(t, stages, 2)

	// After stage 1, state is P+LG. L is never consumed again, so it's
	// released; G is still needed by step 2's recipe, so it's held.
	assert.Equal(t, uint8(1), stages[0].Released.Count(token.L))
	assert.Equal(t, uint8(0), stages[0].Released.Count(token.G))
}

func TestSchedule_InvalidPathReportsFailingStep(t *testing.T) {
	r1, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)

	path := search.Path{
		{RecipeIndex: 0, Recipe: r1},
	}

	_, err = schedule.Schedule(parse(t, "PT"), path)
	var serr *schedule.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Step)
}

func TestSchedule_EmptyPathOnEqualStates(t *testing.T) {
	stages, err := schedule.Schedule(parse(t, "EP"), nil)
	require.NoError(t, err)
	assert.Empty(t, stages)
}
