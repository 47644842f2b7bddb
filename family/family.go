package family

import (
	"sort"
	"strings"

	"github.com/teranos/wellgraded/errors"
)

// Family is a finite collection of unique Sets. Construction fixes the
// contents; checkers consume a Family read-only. Iteration order is stable:
// ascending cardinality, then element order.
type Family struct {
	index map[string]Set
	keys  []string
	dirty bool // keys need re-sorting
}

// New builds a Family from the given sets, rejecting duplicates. Two sets
// are duplicates when they are equal as sets, not as values.
func New(sets ...Set) (*Family, error) {
	f := &Family{index: make(map[string]Set, len(sets))}
	for _, s := range sets {
		if !f.add(s) {
			return nil, errors.Wrapf(errors.ErrDuplicateSet, "set %s appears more than once", s)
		}
	}
	return f, nil
}

// Collect builds a Family from the given sets, silently deduplicating.
// Used for generated families where repeats are expected.
func Collect(sets ...Set) *Family {
	f := &Family{index: make(map[string]Set, len(sets))}
	for _, s := range sets {
		f.add(s)
	}
	return f
}

// add inserts s, reporting false if it was already present.
func (f *Family) add(s Set) bool {
	k := s.Key()
	if _, ok := f.index[k]; ok {
		return false
	}
	f.index[k] = s
	f.keys = append(f.keys, k)
	f.dirty = true
	return true
}

// Size returns the number of member sets.
func (f *Family) Size() int {
	return len(f.index)
}

// Contains reports whether s is a member of the family.
func (f *Family) Contains(s Set) bool {
	_, ok := f.index[s.Key()]
	return ok
}

// ContainsKey reports membership by canonical key.
func (f *Family) ContainsKey(key string) bool {
	_, ok := f.index[key]
	return ok
}

// Sets returns the member sets in stable order: ascending cardinality,
// ties broken by ascending element sequence. The slice is freshly
// allocated on every call.
func (f *Family) Sets() []Set {
	f.sortKeys()
	out := make([]Set, len(f.keys))
	for i, k := range f.keys {
		out[i] = f.index[k]
	}
	return out
}

func (f *Family) sortKeys() {
	if !f.dirty {
		return
	}
	sort.Slice(f.keys, func(i, j int) bool {
		a, b := f.index[f.keys[i]], f.index[f.keys[j]]
		if a.Len() != b.Len() {
			return a.Len() < b.Len()
		}
		ae, be := a.Elements(), b.Elements()
		for n := range ae {
			if ae[n] != be[n] {
				return ae[n] < be[n]
			}
		}
		return false
	})
	f.dirty = false
}

// Universe returns the union of all member sets.
func (f *Family) Universe() Set {
	u := EmptySet()
	for _, s := range f.index {
		u = u.Union(s)
	}
	return u
}

// Equal reports whether two families contain exactly the same sets.
func (f *Family) Equal(g *Family) bool {
	if f.Size() != g.Size() {
		return false
	}
	for k := range f.index {
		if _, ok := g.index[k]; !ok {
			return false
		}
	}
	return true
}

// Project returns { A \ b : A ∈ F }. Distinct members may collapse, so the
// projection is usually smaller than F and typically gains the empty set.
func (f *Family) Project(b Set) *Family {
	proj := &Family{index: make(map[string]Set, len(f.index))}
	for _, s := range f.index {
		proj.add(s.Diff(b))
	}
	return proj
}

// Saturate closes base under pairwise unions: repeatedly unions every
// member with every base set until the family stops growing. The result
// is the smallest union-closed family containing base.
func Saturate(base *Family) *Family {
	fam := Collect(base.Sets()...)
	baseSets := base.Sets()
	for {
		before := fam.Size()
		for _, a := range fam.Sets() {
			for _, b := range baseSets {
				fam.add(a.Union(b))
			}
		}
		if fam.Size() == before {
			return fam
		}
	}
}

// String renders the family in brace notation for diagnostics.
func (f *Family) String() string {
	sets := f.Sets()
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = s.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
