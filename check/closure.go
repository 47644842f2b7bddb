// Package check implements the property checkers for set families:
// union-closure, intersection-closure, X-closure under a pluggable operator,
// well-gradedness, and element frequency analysis. All checkers are pure
// functions over immutable inputs and report a witness on failure.
package check

import (
	"fmt"

	"github.com/teranos/wellgraded/family"
)

// PairWitness identifies a pair of member sets whose required combination is
// missing from the family.
type PairWitness struct {
	A, B    family.Set
	Missing family.Set // the set the closure property requires
}

func (w *PairWitness) String() string {
	return fmt.Sprintf("pair %s, %s requires %s", w.A, w.B, w.Missing)
}

// UnionClosed verifies that for every pair of member sets A, B the union
// A ∪ B is also a member. On failure the witness names the offending pair.
// A family without the empty set is still checked only over existing pairs;
// no implicit empty set is assumed.
func UnionClosed(f *family.Family) (bool, *PairWitness) {
	sets := f.Sets()
	for i, a := range sets {
		for _, b := range sets[i+1:] {
			if u := a.Union(b); !f.Contains(u) {
				return false, &PairWitness{A: a, B: b, Missing: u}
			}
		}
	}
	return true, nil
}

// IntersectionClosed verifies that every pairwise intersection of member
// sets is also a member.
func IntersectionClosed(f *family.Family) (bool, *PairWitness) {
	sets := f.Sets()
	for i, a := range sets {
		for _, b := range sets[i+1:] {
			if inter := a.Intersect(b); !f.Contains(inter) {
				return false, &PairWitness{A: a, B: b, Missing: inter}
			}
		}
	}
	return true, nil
}

// Operator is a pluggable X-closure operator. Given a pair of member sets
// and the designated subset X, it returns the set the family must contain
// and whether the requirement applies to this pair at all.
type Operator func(a, b, x family.Set) (family.Set, bool)

// PairIntersection is the X-closure operator of Matayoshi (2017): the
// requirement applies when X is a proper subset of A ∩ B, and the required
// member is A ∩ B itself.
func PairIntersection(a, b, x family.Set) (family.Set, bool) {
	inter := a.Intersect(b)
	return inter, x.ProperSubsetOf(inter)
}

// XClosed verifies the family is closed under op relative to the designated
// subset x. op is evaluated over all ordered pairs of distinct members, so
// asymmetric operators are supported. A nil op means PairIntersection.
func XClosed(f *family.Family, x family.Set, op Operator) (bool, *PairWitness) {
	if op == nil {
		op = PairIntersection
	}
	sets := f.Sets()
	for _, a := range sets {
		for _, b := range sets {
			if a.Equal(b) {
				continue
			}
			required, applies := op(a, b, x)
			if applies && !f.Contains(required) {
				return false, &PairWitness{A: a, B: b, Missing: required}
			}
		}
	}
	return true, nil
}
