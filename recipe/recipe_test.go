package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/token"
)

func parse(t *testing.T, s string) token.Multiset {
	t.Helper()
	m, err := token.Parse(s)
	require.NoError(t, err)
	return m
}

func TestNew_FoldingValid(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)
	assert.Equal(t, recipe.Folding, r.Kind())
}

func TestNew_InversionValid(t *testing.T) {
	r, err := recipe.New(parse(t, "ELPX"), parse(t, "GOTZ"))
	require.NoError(t, err)
	assert.Equal(t, recipe.Inversion, r.Kind())
}

func TestNew_SizeMismatch(t *testing.T) {
	_, err := recipe.New(parse(t, "EO"), parse(t, "LGZ"))
	require.ErrorIs(t, err, recipe.ErrSizeMismatch)
}

func TestNew_InvalidShape(t *testing.T) {
	// Two negatives on the input side: not a folding (needs 1 neg + 1
	// pos), not an inversion (needs all four of one polarity).
	_, err := recipe.New(parse(t, "EL"), parse(t, "GO"))
	require.ErrorIs(t, err, recipe.ErrInvalidShape)
}

func TestApply(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)

	state := parse(t, "EOP")
	next, err := r.Apply(state)
	require.NoError(t, err)
	assert.Equal(t, "GLP", next.String())
}

func TestApply_NotApplicable(t *testing.T) {
	r, err := recipe.New(parse(t, "EO"), parse(t, "LG"))
	require.NoError(t, err)

	_, err = r.Apply(parse(t, "PX"))
	require.ErrorIs(t, err, recipe.ErrNotApplicable)
}

func TestIndependentOf(t *testing.T) {
	a, _ := recipe.New(parse(t, "EO"), parse(t, "LG"))
	b, _ := recipe.New(parse(t, "PG"), parse(t, "XO"))
	c, _ := recipe.New(parse(t, "EG"), parse(t, "LO"))

	assert.True(t, a.IndependentOf(b), "EO and PG share no input tokens")
	assert.False(t, a.IndependentOf(c), "both consume E")
}

func TestSet_Applicable(t *testing.T) {
	r1, _ := recipe.New(parse(t, "EO"), parse(t, "LG"))
	r2, _ := recipe.New(parse(t, "PG"), parse(t, "XO"))
	set, err := recipe.New(r1, r2)
	require.NoError(t, err)

	idx := set.Applicable(parse(t, "EOP"))
	assert.Equal(t, []int{0}, idx)
}

func TestSet_EmptyRejected(t *testing.T) {
	_, err := recipe.New()
	require.ErrorIs(t, err, recipe.ErrEmptySet)
}

func TestDefaultRecipes_AllValid(t *testing.T) {
	set := recipe.DefaultRecipes()
	assert.Len(t, set, 10)
	for _, r := range set {
		assert.NoError(t, r.Validate())
	}
}
