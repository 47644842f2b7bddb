// Package family implements finite set families over an integer ground set:
// the Set and Family types, a line-based file codec, and the derived
// structure of union-closed families (surmise function, atoms, base).
package family

import (
	"sort"
	"strconv"
	"strings"
)

// Element is an atomic member of the ground set.
type Element = int

// Set is a finite set of Elements. Sets are treated as immutable after
// construction: all operations return new Sets. The zero value is the
// empty set.
type Set struct {
	members map[Element]struct{}
}

// NewSet builds a Set from the given elements. Duplicates collapse.
func NewSet(elems ...Element) Set {
	s := Set{members: make(map[Element]struct{}, len(elems))}
	for _, e := range elems {
		s.members[e] = struct{}{}
	}
	return s
}

// EmptySet returns the empty set.
func EmptySet() Set {
	return Set{}
}

// Contains reports whether e is a member of s.
func (s Set) Contains(e Element) bool {
	_, ok := s.members[e]
	return ok
}

// Len returns the cardinality of s.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Elements returns the members of s in ascending order. The slice is a
// copy; mutating it does not affect s.
func (s Set) Elements() []Element {
	elems := make([]Element, 0, len(s.members))
	for e := range s.members {
		elems = append(elems, e)
	}
	sort.Ints(elems)
	return elems
}

// Union returns s ∪ t.
func (s Set) Union(t Set) Set {
	u := Set{members: make(map[Element]struct{}, len(s.members)+len(t.members))}
	for e := range s.members {
		u.members[e] = struct{}{}
	}
	for e := range t.members {
		u.members[e] = struct{}{}
	}
	return u
}

// Intersect returns s ∩ t.
func (s Set) Intersect(t Set) Set {
	small, large := s, t
	if len(t.members) < len(s.members) {
		small, large = t, s
	}
	u := Set{members: make(map[Element]struct{})}
	for e := range small.members {
		if _, ok := large.members[e]; ok {
			u.members[e] = struct{}{}
		}
	}
	return u
}

// Diff returns s \ t.
func (s Set) Diff(t Set) Set {
	u := Set{members: make(map[Element]struct{})}
	for e := range s.members {
		if _, ok := t.members[e]; !ok {
			u.members[e] = struct{}{}
		}
	}
	return u
}

// SymmetricDiff returns s Δ t, the elements in exactly one of s and t.
func (s Set) SymmetricDiff(t Set) Set {
	return s.Diff(t).Union(t.Diff(s))
}

// Distance returns |s Δ t| without materializing the difference.
func (s Set) Distance(t Set) int {
	d := 0
	for e := range s.members {
		if _, ok := t.members[e]; !ok {
			d++
		}
	}
	for e := range t.members {
		if _, ok := s.members[e]; !ok {
			d++
		}
	}
	return d
}

// Equal reports set equality.
func (s Set) Equal(t Set) bool {
	if len(s.members) != len(t.members) {
		return false
	}
	for e := range s.members {
		if _, ok := t.members[e]; !ok {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every member of s is in t.
func (s Set) SubsetOf(t Set) bool {
	if len(s.members) > len(t.members) {
		return false
	}
	for e := range s.members {
		if _, ok := t.members[e]; !ok {
			return false
		}
	}
	return true
}

// ProperSubsetOf reports whether s ⊂ t strictly.
func (s Set) ProperSubsetOf(t Set) bool {
	return len(s.members) < len(t.members) && s.SubsetOf(t)
}

// Key returns the canonical identity of s: its elements in ascending order,
// comma-joined. The empty set's key is "". Keys are what Family uses for
// membership, so two Sets are family-equal iff their keys match.
func (s Set) Key() string {
	elems := s.Elements()
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}

// String renders s in brace notation, e.g. "{1,2,3}". The empty set renders
// as "∅".
func (s Set) String() string {
	if s.IsEmpty() {
		return "∅"
	}
	return "{" + s.Key() + "}"
}
