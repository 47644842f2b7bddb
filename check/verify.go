package check

import (
	"github.com/teranos/wellgraded/errors"
	"github.com/teranos/wellgraded/family"
	"github.com/teranos/wellgraded/logger"
)

// Verify runs the closure properties a well-graded union-closed X-closed
// family must satisfy, in order: union-closure, well-gradedness, X-closure
// under the default operator. The first failure is returned as the matching
// sentinel error wrapped with its witness; nil means all properties hold.
func Verify(f *family.Family, x family.Set) error {
	if ok, w := UnionClosed(f); !ok {
		return errors.Wrap(errors.ErrNotUnionClosed, w.String())
	}
	logger.Debugw("union-closure verified", "sets", f.Size())

	if ok, w := WellGraded(f); !ok {
		return errors.Wrap(errors.ErrNotWellGraded, w.String())
	}
	logger.Debugw("well-gradedness verified", "sets", f.Size())

	if ok, w := XClosed(f, x, nil); !ok {
		return errors.Wrap(errors.ErrNotXClosed, w.String())
	}
	logger.Debugw("X-closure verified", "x", x.String())

	return nil
}

// NoAbundant returns ErrAbundantElement when any row of the table is
// flagged abundant.
func NoAbundant(table FrequencyTable) error {
	if abundant := table.Abundant(); len(abundant) > 0 {
		return errors.Wrapf(errors.ErrAbundantElement, "abundant elements %v", abundant)
	}
	return nil
}
