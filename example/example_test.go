package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wellgraded/check"
	"github.com/teranos/wellgraded/family"
)

func TestBaseSize(t *testing.T) {
	base := Base()
	assert.Equal(t, 29, base.Size())
	assert.True(t, base.Contains(family.NewSet(1, 2, 3)))
	assert.True(t, base.Contains(family.NewSet(1, 2, 3, 4, 5, 6, 13)))
	assert.True(t, base.Contains(family.NewSet(4, 5, 6, 7)))
	assert.True(t, base.Contains(family.NewSet(4, 5, 6, 12, 13)))
}

func TestBuildSizeAndUniverse(t *testing.T) {
	fam, x := Build()

	assert.Equal(t, 959, fam.Size())
	assert.True(t, x.Equal(family.NewSet(1, 2, 3)))
	assert.True(t, fam.Contains(x))
	assert.Equal(t, 13, fam.Universe().Len())
	assert.False(t, fam.Contains(family.EmptySet()))
}

func TestBuildDeterministic(t *testing.T) {
	a, _ := Build()
	b, _ := Build()
	assert.True(t, a.Equal(b))
}

func TestExampleProperties(t *testing.T) {
	fam, x := Build()

	require.NoError(t, check.Verify(fam, x))

	// the projection algorithm agrees with the definitional check
	ok, w := check.WellGradedByProjection(fam, Base())
	assert.True(t, ok)
	assert.Nil(t, w)

	// the point of the example: X-closed, well-graded, yet no abundant element
	table := check.Frequencies(fam, x)
	require.Len(t, table, 3)
	for _, row := range table {
		assert.Equal(t, 479, row.Count)
		assert.False(t, row.Abundant)
		assert.Less(t, row.Fraction, 0.5)
	}
	assert.NoError(t, check.NoAbundant(table))
}

func TestExampleNotIntersectionClosed(t *testing.T) {
	// the family is union-closed and X-closed but deliberately not
	// intersection-closed
	fam, _ := Build()
	ok, w := check.IntersectionClosed(fam)
	assert.False(t, ok)
	assert.NotNil(t, w)
}

func TestDerivedBaseMatchesConstruction(t *testing.T) {
	fam, _ := Build()
	derived := family.Base(fam)
	assert.True(t, derived.Equal(Base()))
}

func TestMinimalSets(t *testing.T) {
	fam, _ := Build()
	minimal := family.MinimalSets(fam)

	require.Len(t, minimal, 7)
	assert.True(t, minimal[0].Equal(family.NewSet(1, 2, 3)))
	for _, s := range minimal[1:] {
		assert.True(t, family.NewSet(4, 5, 6).SubsetOf(s))
		assert.Equal(t, 4, s.Len())
	}
}
