package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/wellgraded/family"
)

func TestFrequenciesPowerSet(t *testing.T) {
	// F = {∅, {1}, {2}, {1,2}}, X = {1,2}: both elements sit in exactly
	// half the sets, which already counts as abundant
	table := Frequencies(powerSetFamily(), family.NewSet(1, 2))
	require.Len(t, table, 2)

	for _, row := range table {
		assert.Equal(t, 2, row.Count)
		assert.InDelta(t, 0.5, row.Fraction, 1e-12)
		assert.True(t, row.Abundant)
	}
	assert.ElementsMatch(t, []family.Element{1, 2}, table.Abundant())
}

func TestFrequenciesRowsSortedByElement(t *testing.T) {
	table := Frequencies(powerSetFamily(), family.NewSet(2, 1))
	require.Len(t, table, 2)
	assert.Equal(t, 1, table[0].Element)
	assert.Equal(t, 2, table[1].Element)
}

func TestFrequenciesNotAbundant(t *testing.T) {
	f := family.Collect(
		family.NewSet(1),
		family.NewSet(2),
		family.NewSet(3),
		family.NewSet(1, 2),
	)
	table := Frequencies(f, family.NewSet(3))
	require.Len(t, table, 1)
	assert.Equal(t, 1, table[0].Count)
	assert.False(t, table[0].Abundant)
	assert.Empty(t, table.Abundant())
}

func TestFrequenciesPure(t *testing.T) {
	f := powerSetFamily()
	x := family.NewSet(1, 2)
	assert.Equal(t, Frequencies(f, x), Frequencies(f, x))
}

func TestFrequenciesElementOutsideFamily(t *testing.T) {
	table := Frequencies(powerSetFamily(), family.NewSet(9))
	require.Len(t, table, 1)
	assert.Equal(t, 0, table[0].Count)
	assert.Equal(t, 0.0, table[0].Fraction)
	assert.False(t, table[0].Abundant)
}

func TestFrequenciesEmptyFamily(t *testing.T) {
	f := family.Collect()
	table := Frequencies(f, family.NewSet(1))
	require.Len(t, table, 1)
	assert.Equal(t, 0, table[0].Count)
	assert.False(t, table[0].Abundant)
}
