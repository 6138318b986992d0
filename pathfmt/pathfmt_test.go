package pathfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/pathfmt"
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

func TestFormatPath_RoundTrip(t *testing.T) {
	recipes := buildCatalog(t)
	path := search.Path{
		{RecipeIndex: 0, Recipe: recipes[0]},
		{RecipeIndex: 1, Recipe: recipes[1]},
	}

	text := pathfmt.FormatPath(parse(t, "EP"), parse(t, "LX"), 1, parse(t, "O"), path)
	assert.Equal(t, "EP -> LX + O => EO -> GL | GP -> OX", text)

	source, target, reps, catalyst, got, err := pathfmt.ParsePath(text, recipes)
	require.NoError(t, err)
	assert.True(t, source.Equal(parse(t, "EP")))
	assert.True(t, target.Equal(parse(t, "LX")))
	assert.Equal(t, 1, reps)
	assert.True(t, catalyst.Equal(parse(t, "O")))
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].RecipeIndex)
	assert.Equal(t, 1, got[1].RecipeIndex)
}

func TestFormatPath_RepetitionClause(t *testing.T) {
	recipes := buildCatalog(t)
	path := search.Path{{RecipeIndex: 0, Recipe: recipes[0]}}

	text := pathfmt.FormatPath(parse(t, "EO"), parse(t, "LG"), 3, token.Multiset{}, path)
	assert.Equal(t, "EO -> GL x3 => EO -> GL", text)

	_, _, reps, catalyst, _, err := pathfmt.ParsePath(text, recipes)
	require.NoError(t, err)
	assert.Equal(t, 3, reps)
	assert.True(t, catalyst.IsEmpty())
}

func TestParsePath_MissingArrow(t *testing.T) {
	recipes := buildCatalog(t)
	_, _, _, _, _, err := pathfmt.ParsePath("EP LX => EO -> LG", recipes)
	require.Error(t, err)
}

func TestParsePath_UnknownRecipe(t *testing.T) {
	recipes := buildCatalog(t)
	_, _, _, _, _, err := pathfmt.ParsePath("EP -> LX => ZZ -> ZZ", recipes)
	require.Error(t, err)
}

func TestParsePath_EmptyBody(t *testing.T) {
	recipes := buildCatalog(t)
	_, _, _, _, got, err := pathfmt.ParsePath("EP -> EP =>", recipes)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFormatStages_RoundTrip(t *testing.T) {
	recipes := buildCatalog(t)
	stages := schedule.Stages{
		{
			Reserved: parse(t, "P"),
			Working:  parse(t, "EO"),
			Released: token.Multiset{},
			Recipes:  []recipe.Recipe{recipes[0]},
			Indices:  []int{0},
		},
		{
			Reserved: token.Multiset{},
			Working:  parse(t, "PG"),
			Released: parse(t, "L"),
			Recipes:  []recipe.Recipe{recipes[1]},
			Indices:  []int{1},
		},
	}

	text := pathfmt.FormatStages(stages)
	assert.Equal(t, "1. [P] + [EO] + [] | EO -> GL\n2. [] + [GP] + [L] | GP -> OX", text)

	got, err := pathfmt.ParseStages(text, recipes)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Reserved.Equal(parse(t, "P")))
	assert.True(t, got[1].Released.Equal(parse(t, "L")))
	assert.Equal(t, []int{0}, got[0].Indices)
	assert.Equal(t, []int{1}, got[1].Indices)
}
