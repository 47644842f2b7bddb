// Package errors provides error handling for wellgraded.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing diagnostics
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotUnionClosed) {
//	    // handle closure failure
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the family verification pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add the witness detail while preserving the type.
var (
	// ErrDuplicateSet indicates a family was constructed from input containing
	// the same set twice
	ErrDuplicateSet = New("duplicate set in family")

	// ErrNotUnionClosed indicates a pairwise union is missing from the family
	ErrNotUnionClosed = New("family is not union-closed")

	// ErrNotIntersectionClosed indicates a pairwise intersection is missing
	// from the family
	ErrNotIntersectionClosed = New("family is not intersection-closed")

	// ErrNotWellGraded indicates a pair of sets has no single-element chain of
	// the required length inside the family
	ErrNotWellGraded = New("family is not well-graded")

	// ErrNotXClosed indicates the closure operator produced a set outside the family
	ErrNotXClosed = New("family is not X-closed")

	// ErrAbundantElement indicates an element of X appears in at least half
	// the sets of the family
	ErrAbundantElement = New("designated element is abundant")

	// ErrConstruction indicates the built-in example failed one of its required
	// properties; this is an internal-consistency bug, not user error
	ErrConstruction = New("example construction is inconsistent")

	// ErrBadFormat indicates a family file could not be parsed
	ErrBadFormat = New("malformed family file")
)

// IsConstructionError checks if an error is or wraps ErrConstruction
func IsConstructionError(err error) bool {
	return err != nil && Is(err, ErrConstruction)
}

// MarkConstruction marks a property failure as an internal construction error.
// The returned error satisfies errors.Is for both ErrConstruction and the
// original property sentinel.
func MarkConstruction(err error, property string) error {
	return Wrap(Mark(err, ErrConstruction), property)
}
