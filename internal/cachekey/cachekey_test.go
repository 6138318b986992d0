package cachekey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/internal/cachekey"
	"github.com/arcosphere-go/catalyst/recipe"
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
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	set, err := recipe.New(r)
	require.NoError(t, err)
	return set
}

func TestForSolve_Deterministic(t *testing.T) {
	recipes := buildCatalog(t)
	k1 := cachekey.ForSolve(parse(t, "EP"), parse(t, "LX"), recipes, 1)
	k2 := cachekey.ForSolve(parse(t, "EP"), parse(t, "LX"), recipes, 1)
	assert.Equal(t, k1, k2)
	assert.Equal(t, k1.String(), k2.String())
}

func TestForSolve_DiffersOnRepetitions(t *testing.T) {
	recipes := buildCatalog(t)
	k1 := cachekey.ForSolve(parse(t, "EP"), parse(t, "LX"), recipes, 1)
	k2 := cachekey.ForSolve(parse(t, "EP"), parse(t, "LX"), recipes, 2)
	assert.NotEqual(t, k1, k2)
}

func TestForSolve_DiffersOnTarget(t *testing.T) {
	recipes := buildCatalog(t)
	k1 := cachekey.ForSolve(parse(t, "EP"), parse(t, "LX"), recipes, 1)
	k2 := cachekey.ForSolve(parse(t, "EP"), parse(t, "GT"), recipes, 1)
	assert.NotEqual(t, k1, k2)
}
