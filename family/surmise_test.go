package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// powerSetFamily is the power set of {1,2}, a well-graded union-closed
// family containing the empty set.
func powerSetFamily() *Family {
	return Collect(EmptySet(), NewSet(1), NewSet(2), NewSet(1, 2))
}

func TestSurmisePowerSet(t *testing.T) {
	surmise := Surmise(powerSetFamily())
	require.Len(t, surmise, 2)

	// the singleton {q} is the unique atom at q
	require.Len(t, surmise[1], 1)
	assert.True(t, surmise[1][0].Equal(NewSet(1)))
	require.Len(t, surmise[2], 1)
	assert.True(t, surmise[2][0].Equal(NewSet(2)))
}

func TestSurmiseMultipleAtoms(t *testing.T) {
	// element 3 is reached through {1,3} or {2,3}, both minimal
	f := Collect(EmptySet(), NewSet(1), NewSet(2), NewSet(1, 2),
		NewSet(1, 3), NewSet(2, 3), NewSet(1, 2, 3))
	surmise := Surmise(f)

	require.Len(t, surmise[3], 2)
	keys := []string{surmise[3][0].Key(), surmise[3][1].Key()}
	assert.ElementsMatch(t, []string{"1,3", "2,3"}, keys)
}

func TestHasUniqueAtoms(t *testing.T) {
	assert.True(t, HasUniqueAtoms(powerSetFamily()))

	// {1,2} is the atom at both 1 and 2: not well-graded
	repeated := Collect(EmptySet(), NewSet(1, 2))
	assert.False(t, HasUniqueAtoms(repeated))
}

func TestBase(t *testing.T) {
	// the power set of {1,2} is generated by the singletons
	base := Base(powerSetFamily())
	assert.Equal(t, 2, base.Size())
	assert.True(t, base.Contains(NewSet(1)))
	assert.True(t, base.Contains(NewSet(2)))

	// saturating the base recovers the nonempty members
	fam := Saturate(base)
	assert.True(t, fam.Contains(NewSet(1, 2)))
	assert.Equal(t, 3, fam.Size())
}

func TestMinimalSets(t *testing.T) {
	f := Collect(NewSet(1), NewSet(2), NewSet(1, 2), NewSet(1, 2, 3))
	minimal := MinimalSets(f)

	require.Len(t, minimal, 2)
	assert.True(t, minimal[0].Equal(NewSet(1)))
	assert.True(t, minimal[1].Equal(NewSet(2)))
}

func TestMinimalSetsWithEmpty(t *testing.T) {
	minimal := MinimalSets(powerSetFamily())
	require.Len(t, minimal, 1)
	assert.True(t, minimal[0].IsEmpty())
}
