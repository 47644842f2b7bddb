package family

import "sort"

// Surmise computes the surmise function of a family: for each element q of
// the universe, the minimal member sets containing q (the atoms at q). See
// Falmagne & Doignon, Learning Spaces, §5.2.
func Surmise(f *Family) map[Element][]Set {
	universe := f.Universe().Elements()
	surmise := make(map[Element][]Set, len(universe))
	for _, q := range universe {
		var atoms []Set
		for _, s := range f.Sets() {
			if !s.Contains(q) {
				continue
			}
			minimal := true
			kept := atoms[:0]
			for _, a := range atoms {
				if s.ProperSubsetOf(a) {
					continue // s displaces a larger atom
				}
				if a.ProperSubsetOf(s) {
					minimal = false
				}
				kept = append(kept, a)
			}
			atoms = kept
			if minimal {
				atoms = append(atoms, s)
			}
		}
		surmise[q] = atoms
	}
	return surmise
}

// HasUniqueAtoms reports whether no set is an atom at more than one element.
// For a union-closed family containing the empty set this is equivalent to
// well-gradedness (Koppen 1998, Theorem 4.5).
func HasUniqueAtoms(f *Family) bool {
	total := 0
	distinct := make(map[string]struct{})
	for _, atoms := range Surmise(f) {
		for _, a := range atoms {
			total++
			distinct[a.Key()] = struct{}{}
		}
	}
	return total == len(distinct)
}

// Base returns the base of a union-closed family: the union of all surmise
// classes. Every member of the family is a union of base sets.
func Base(f *Family) *Family {
	var sets []Set
	for _, atoms := range Surmise(f) {
		sets = append(sets, atoms...)
	}
	return Collect(sets...)
}

// MinimalSets returns the members of the family that have no proper subset
// in the family, in stable order.
func MinimalSets(f *Family) []Set {
	sets := f.Sets()
	var minimal []Set
	for i, s := range sets {
		isMin := true
		for j, t := range sets {
			if i != j && t.ProperSubsetOf(s) {
				isMin = false
				break
			}
		}
		if isMin {
			minimal = append(minimal, s)
		}
	}
	sort.Slice(minimal, func(i, j int) bool {
		if minimal[i].Len() != minimal[j].Len() {
			return minimal[i].Len() < minimal[j].Len()
		}
		return minimal[i].Key() < minimal[j].Key()
	})
	return minimal
}
