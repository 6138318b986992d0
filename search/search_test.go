package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

func mustRecipe(t *testing.T, inputs, outputs string) recipe.Recipe {
	t.Helper()
	in, err := token.Parse(inputs)
	require.NoError(t, err)
	out, err := token.Parse(outputs)
	require.NoError(t, err)
	r, err := recipe.New(in, out)
	require.NoError(t, err)
	return r
}

func mustMultiset(t *testing.T, s string) token.Multiset {
	t.Helper()
	m, err := token.Parse(s)
	require.NoError(t, err)
	return m
}

func TestFind_SourceEqualsTarget(t *testing.T) {
	state := mustMultiset(t, "EP")
	recipes, err := recipe.New(mustRecipe(t, "EO", "LG"))
	require.NoError(t, err)

	res, err := search.Find(state, state, recipes)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Depth)
	require.Len(t, res.Paths, 1)
	assert.Empty(t, res.Paths[0])
}

func TestFind_TwoStepPath(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	r2 := mustRecipe(t, "PG", "XO")
	recipes, err := recipe.New(r1, r2)
	require.NoError(t, err)

	start := mustMultiset(t, "EOP")
	target := mustMultiset(t, "LXO")

	res, err := search.Find(start, target, recipes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth)
	require.Len(t, res.Paths, 1)

	got := res.Paths[0]
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].RecipeIndex)
	assert.Equal(t, 1, got[1].RecipeIndex)
}

func TestFind_NoPath(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	recipes, err := recipe.New(r1)
	require.NoError(t, err)

	start := mustMultiset(t, "EO")
	target := mustMultiset(t, "PT")

	_, err = search.Find(start, target, recipes)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestFind_MaxDepthTruncated(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	r2 := mustRecipe(t, "PG", "XO")
	recipes, err := recipe.New(r1, r2)
	require.NoError(t, err)

	start := mustMultiset(t, "EOP")
	target := mustMultiset(t, "LXO")

	_, err = search.Find(start, target, recipes, search.WithMaxDepth(1))
	var te *search.TruncatedError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "depth", te.Cap)
}

func TestFind_MaxNodesTruncated(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	r2 := mustRecipe(t, "PG", "XO")
	recipes, err := recipe.New(r1, r2)
	require.NoError(t, err)

	start := mustMultiset(t, "EOP")
	target := mustMultiset(t, "LXO")

	_, err = search.Find(start, target, recipes, search.WithMaxNodes(1))
	var te *search.TruncatedError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "nodes", te.Cap)
}

func TestFind_Cancelled(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	recipes, err := recipe.New(r1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := mustMultiset(t, "EO")
	target := mustMultiset(t, "PT")

	_, err = search.Find(start, target, recipes, search.WithContext(ctx))
	assert.ErrorIs(t, err, search.ErrCancelled)
}

// TestFind_EquivalenceFoldingDedupesCommutingOrder checks that when two
// applicable recipes are independent (disjoint inputs), only the
// ascending-index application order survives as a path — the
// descending-index order is a commuting rearrangement of the same
// multiset of steps, not a distinct path.
func TestFind_EquivalenceFoldingDedupesCommutingOrder(t *testing.T) {
	a := mustRecipe(t, "EG", "LO")
	b := mustRecipe(t, "PT", "XZ")
	recipes, err := recipe.New(a, b)
	require.NoError(t, err)
	require.True(t, a.IndependentOf(b))

	start := mustMultiset(t, "EGPT")
	target := mustMultiset(t, "LOXZ")

	res, err := search.Find(start, target, recipes)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth)
	require.Len(t, res.Paths, 1)

	got := res.Paths[0]
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].RecipeIndex)
	assert.Equal(t, 1, got[1].RecipeIndex)
}

func TestFind_MaxDepthZeroOnlyMatchesEqualStates(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	recipes, err := recipe.New(r1)
	require.NoError(t, err)

	start := mustMultiset(t, "EO")
	target := mustMultiset(t, "LG")

	_, err = search.Find(start, target, recipes, search.WithMaxDepth(0))
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestPath_CanonicalKeyAndLess(t *testing.T) {
	r1 := mustRecipe(t, "EO", "LG")
	r2 := mustRecipe(t, "PG", "XO")

	short := search.Path{{RecipeIndex: 0, Recipe: r1}}
	long := search.Path{{RecipeIndex: 0, Recipe: r1}, {RecipeIndex: 1, Recipe: r2}}

	assert.Equal(t, "0", short.CanonicalKey())
	assert.Equal(t, "0,1", long.CanonicalKey())
	assert.True(t, short.Less(long))
	assert.False(t, long.Less(short))
}
