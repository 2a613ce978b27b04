// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations return
// these sentinels wrapped with call-site context, and tests MUST check them
// via errors.Is. No public operation panics on user-triggered conditions;
// panics are reserved for nonsensical Option values (programmer error).

package sparse

import "errors"

// Every message is prefixed with "sparse: ..." for easy grepping across logs.
//
// ERROR PRIORITY (enforced in tests):
// nil receiver -> shape -> index -> vector length.

var (
	// ErrInvalidDimensions indicates negative matrix extents.
	// Zero extents are legal (an empty matrix).
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates that (row, col) lies outside [0,rows)×[0,cols).
	// Unlike an absent entry, this is never silently absorbed.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates that a vector length disagrees with the
	// matrix column count. No partial result is returned.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a package function.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
