package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/internal/wire"
	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/schedule"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/solve"
	"github.com/arcosphere-go/catalyst/token"
)

func parse(t *testing.T, s string) token.Multiset {
	t.Helper()
	m, err := token.Parse(s)
	require.NoError(t, err)
	return m
}

func TestEncodeDecodeSolution_RoundTrip(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)

	sol := &solve.Solution{
		CatalystSize: 1,
		PathLength:   1,
		Groups: []solve.CatalystGroup{
			{
				Catalyst: parse(t, "O"),
				Paths: []search.Path{
					{{RecipeIndex: 0, Recipe: r}},
				},
			},
		},
	}

	b, err := wire.EncodeSolution(sol)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	got, err := wire.DecodeSolution(b)
	require.NoError(t, err)
	assert.Equal(t, sol.CatalystSize, got.CatalystSize)
	assert.Equal(t, sol.PathLength, got.PathLength)
	require.Len(t, got.Groups, 1)
	assert.True(t, got.Groups[0].Catalyst.Equal(parse(t, "O")))
	require.Len(t, got.Groups[0].Paths, 1)
	require.Len(t, got.Groups[0].Paths[0], 1)
	assert.True(t, got.Groups[0].Paths[0][0].Recipe.Equal(r))
}

func TestEncodeSolution_Deterministic(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	sol := &solve.Solution{
		Groups: []solve.CatalystGroup{{Catalyst: parse(t, "O"), Paths: []search.Path{{{RecipeIndex: 0, Recipe: r}}}}},
	}

	b1, err := wire.EncodeSolution(sol)
	require.NoError(t, err)
	b2, err := wire.EncodeSolution(sol)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestEncodeDecodeStages_RoundTrip(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)

	stages := schedule.Stages{
		{
			Reserved: parse(t, "P"),
			Working:  parse(t, "EO"),
			Released: token.Multiset{},
			Recipes:  []recipe.Recipe{r},
			Indices:  []int{0},
		},
	}

	b, err := wire.EncodeStages(stages)
	require.NoError(t, err)

	got, err := wire.DecodeStages(b)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Reserved.Equal(parse(t, "P")))
	assert.True(t, got[0].Working.Equal(parse(t, "EO")))
	assert.Equal(t, []int{0}, got[0].Indices)
}
