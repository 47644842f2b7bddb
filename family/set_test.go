package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetCollapsesDuplicates(t *testing.T) {
	s := NewSet(1, 2, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []Element{1, 2, 3}, s.Elements())
}

func TestSetOps(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(3, 4)

	assert.Equal(t, []Element{1, 2, 3, 4}, a.Union(b).Elements())
	assert.Equal(t, []Element{3}, a.Intersect(b).Elements())
	assert.Equal(t, []Element{1, 2}, a.Diff(b).Elements())
	assert.Equal(t, []Element{1, 2, 4}, a.SymmetricDiff(b).Elements())
	assert.Equal(t, 3, a.Distance(b))
}

func TestSetOpsDoNotMutate(t *testing.T) {
	a := NewSet(1, 2)
	b := NewSet(3)
	_ = a.Union(b)
	_ = a.Diff(b)
	assert.Equal(t, []Element{1, 2}, a.Elements())
	assert.Equal(t, []Element{3}, b.Elements())
}

func TestEmptySet(t *testing.T) {
	e := EmptySet()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, "", e.Key())
	assert.Equal(t, "∅", e.String())

	a := NewSet(1, 2)
	assert.True(t, e.Union(a).Equal(a))
	assert.True(t, e.Intersect(a).IsEmpty())
	assert.True(t, e.SubsetOf(a))
	assert.True(t, e.ProperSubsetOf(a))
}

func TestSubsetRelations(t *testing.T) {
	a := NewSet(1, 2)
	b := NewSet(1, 2, 3)

	assert.True(t, a.SubsetOf(b))
	assert.True(t, a.ProperSubsetOf(b))
	assert.True(t, a.SubsetOf(a))
	assert.False(t, a.ProperSubsetOf(a))
	assert.False(t, b.SubsetOf(a))
}

func TestKeyIsCanonical(t *testing.T) {
	assert.Equal(t, NewSet(3, 1, 2).Key(), NewSet(1, 2, 3).Key())
	assert.Equal(t, "1,2,10", NewSet(10, 2, 1).Key())
	assert.Equal(t, "{1,2,10}", NewSet(10, 2, 1).String())
}

func TestEqual(t *testing.T) {
	assert.True(t, NewSet(1, 2).Equal(NewSet(2, 1)))
	assert.False(t, NewSet(1, 2).Equal(NewSet(1, 2, 3)))
	assert.True(t, EmptySet().Equal(NewSet()))
}
