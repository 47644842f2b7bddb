// Package example builds the well-graded union-closed family of
// Matayoshi (2017), Example 2.1: a family F over ground set {1..13} with
// designated subset X = {1,2,3} such that F is well-graded and X-closed,
// yet no element of X is abundant. The construction is fixed data, not a
// search: a 29-set base whose union-closure is F.
package example

import (
	"github.com/teranos/wellgraded/family"
)

// DesignatedSubset returns X = {1,2,3}.
func DesignatedSubset() family.Set {
	return family.NewSet(1, 2, 3)
}

// Base returns the 29-set base of the example family. Saturating the base
// under pairwise unions yields the full family.
func Base() *family.Family {
	var sets []family.Set

	// the top chain over X and the bridge element 13
	sets = append(sets, family.NewSet(1, 2, 3, 4, 5, 6, 13))
	curr := family.NewSet(1, 2)
	for i := 3; i <= 6; i++ {
		curr = curr.Union(family.NewSet(i))
		sets = append(sets, curr)
	}

	// aGroups[i] pairs the elements of X two at a time; bSets[i] attaches
	// the core {4,5,6} to one marker element 7..12
	aGroups := [4][]family.Set{
		{}, // 1-indexed to match the construction in the paper
		{family.EmptySet(), family.NewSet(1), family.NewSet(2)},
		{family.EmptySet(), family.NewSet(1), family.NewSet(3)},
		{family.EmptySet(), family.NewSet(2), family.NewSet(3)},
	}
	var bSets [7]family.Set
	for i := 1; i <= 6; i++ {
		bSets[i] = family.NewSet(4, 5, 6, i+6)
	}

	for i := 1; i <= 3; i++ {
		for _, a := range aGroups[i] {
			sets = append(sets, a.Union(bSets[i]))
			sets = append(sets, a.Union(bSets[i+3]))
		}
	}
	for i := 1; i <= 6; i++ {
		sets = append(sets, bSets[i].Union(family.NewSet(13)))
	}

	return family.Collect(sets...)
}

// Build returns the example family and its designated subset. Deterministic:
// every call yields the same (F, X).
func Build() (*family.Family, family.Set) {
	return family.Saturate(Base()), DesignatedSubset()
}
