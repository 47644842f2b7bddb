package family

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/teranos/wellgraded/errors"
)

// File format: one set per line, elements as comma-separated integers in
// ascending order, sets ordered smallest first. The empty set is a blank
// line. Lines starting with '#' are comments and are skipped on read.

// Encode writes the family to w, one set per line.
func Encode(w io.Writer, f *Family) error {
	bw := bufio.NewWriter(w)
	for _, s := range f.Sets() {
		if _, err := bw.WriteString(s.Key()); err != nil {
			return errors.Wrap(err, "failed to write set")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "failed to write set")
		}
	}
	return bw.Flush()
}

// Decode reads a family from r. Duplicate sets in the input are rejected.
func Decode(r io.Reader) (*Family, error) {
	var sets []Set
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		s, err := ParseSet(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		sets = append(sets, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read family")
	}
	return New(sets...)
}

// ParseSet parses a comma-separated element list. The empty string is the
// empty set.
func ParseSet(text string) (Set, error) {
	if text == "" {
		return EmptySet(), nil
	}
	parts := strings.Split(text, ",")
	elems := make([]Element, 0, len(parts))
	for _, p := range parts {
		e, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Set{}, errors.Wrapf(errors.ErrBadFormat, "bad element %q", p)
		}
		elems = append(elems, e)
	}
	s := NewSet(elems...)
	if s.Len() != len(elems) {
		return Set{}, errors.Wrapf(errors.ErrBadFormat, "repeated element in %q", text)
	}
	return s, nil
}

// WriteFile serializes the family to path, creating or truncating the file.
func WriteFile(path string, f *Family) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer file.Close()
	if err := Encode(file, f); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// ReadFile parses a family from path.
func ReadFile(path string) (*Family, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()
	fam, err := Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return fam, nil
}
