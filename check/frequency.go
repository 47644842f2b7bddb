package check

import (
	"github.com/teranos/wellgraded/family"
)

// Frequency records how often one designated element occurs across the
// family. An element is abundant when it appears in at least half the sets.
type Frequency struct {
	Element  family.Element `json:"element"`
	Count    int            `json:"count"`
	Fraction float64        `json:"fraction"`
	Abundant bool           `json:"abundant"`
}

// FrequencyTable holds one row per element of the designated subset, in
// ascending element order.
type FrequencyTable []Frequency

// Abundant returns the elements flagged as abundant.
func (t FrequencyTable) Abundant() []family.Element {
	var out []family.Element
	for _, row := range t {
		if row.Abundant {
			out = append(out, row.Element)
		}
	}
	return out
}

// Frequencies counts, for each element of x, the member sets containing it.
// Pure function of (f, x): repeated calls yield identical tables. The
// abundance test uses integer arithmetic (2·count ≥ |F|), so no float
// rounding can flip the flag.
func Frequencies(f *family.Family, x family.Set) FrequencyTable {
	size := f.Size()
	table := make(FrequencyTable, 0, x.Len())
	for _, e := range x.Elements() {
		count := 0
		for _, s := range f.Sets() {
			if s.Contains(e) {
				count++
			}
		}
		row := Frequency{Element: e, Count: count}
		if size > 0 {
			row.Fraction = float64(count) / float64(size)
			row.Abundant = 2*count >= size
		}
		table = append(table, row)
	}
	return table
}
