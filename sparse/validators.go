// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/index/vector checks.
//  - Return plain sentinel errors tagged with the validator name so call sites
//    can wrap uniformly with their own context.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDims ensures rows and cols are non-negative.
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDims", ErrInvalidDimensions)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ row < rows and 0 ≤ col < cols.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}
	if col < 0 || col >= cols {
		return validatorErrorf("ValidateIndex: col", ErrOutOfRange)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is accepted only when n == 0.
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[T Number](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
