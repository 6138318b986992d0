package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
	"github.com/arcosphere-go/catalyst/verify"
)

func parse(t *testing.T, s string) token.Multiset {
	t.Helper()
	m, err := token.Parse(s)
	require.NoError(t, err)
	return m
}

func buildCatalog(t *testing.T) recipe.Set {
	t.Helper()
	eoToLG, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	pgToXO, err := recipe.New(parse(t, "PG"), parse(t, "XO"))
	require.NoError(t, err)
	set, err := recipe.New(eoToLG, pgToXO)
	require.NoError(t, err)
	return set
}

func TestVerify_ValidPath(t *testing.T) {
	recipes := buildCatalog(t)
	path := search.Path{
		{RecipeIndex: 0, Recipe: recipes[0]},
		{RecipeIndex: 1, Recipe: recipes[1]},
	}

	err := verify.Verify(parse(t, "EOP"), parse(t, "LXO"), path, recipes)
	assert.NoError(t, err)
}

func TestVerify_EmptyPathRequiresEqualStates(t *testing.T) {
	recipes := buildCatalog(t)
	err := verify.Verify(parse(t, "EP"), parse(t, "EP"), nil, recipes)
	assert.NoError(t, err)
}

func TestVerify_StepNotApplicable(t *testing.T) {
	recipes := buildCatalog(t)
	// Second step requires PG, but after the first step the running
	// state is PLG — PG is present, so instead flip the order to make
	// it inapplicable: apply pgToXO first against a state lacking P/G.
	path := search.Path{
		{RecipeIndex: 1, Recipe: recipes[1]},
	}

	err := verify.Verify(parse(t, "EO"), parse(t, "XO"), path, recipes)
	var verr *verify.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Step)
	assert.Equal(t, verify.IntermediateUnderflow, verr.Reason)
}

func TestVerify_FinalStateMismatch(t *testing.T) {
	recipes := buildCatalog(t)
	path := search.Path{
		{RecipeIndex: 0, Recipe: recipes[0]},
	}

	err := verify.Verify(parse(t, "EOP"), parse(t, "ZZZ"), path, recipes)
	var verr *verify.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Step)
	assert.Equal(t, verify.FinalStateMismatch, verr.Reason)
}

func TestVerify_RecipeIndexOutOfRange(t *testing.T) {
	recipes := buildCatalog(t)
	path := search.Path{
		{RecipeIndex: 5, Recipe: recipes[0]},
	}

	err := verify.Verify(parse(t, "EOP"), parse(t, "LXO"), path, recipes)
	var verr *verify.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, verify.RecipeNotApplicable, verr.Reason)
}
