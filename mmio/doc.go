// SPDX-License-Identifier: MIT

// Package mmio reads and writes sparse matrices in the Matrix Market
// coordinate text format.
//
// Format accepted by Read:
//
//	%%MatrixMarket matrix coordinate real general   (optional banner)
//	% any number of comment lines
//	rows cols nnz
//	row col value                                   (nnz lines, 1-based)
//
// The banner, when present, must be the first non-blank line; later
// "%%" lines are ordinary comments.
//
// Supported fields: real, integer, complex (two value columns) and pattern
// (no value column; every entry reads as 1). Supported symmetries: general,
// symmetric, skew-symmetric and hermitian; the off-diagonal half that the
// file omits is mirrored on read.
//
// File indices are 1-based. The translation to the 0-based sparse API lives
// only in this package: the matrix is populated exclusively through
// sparse.Matrix.Set with (row-1, col-1).
//
// ReadFile and WriteFile handle gzip, zstd and lz4-frame compressed files
// transparently (detected by magic bytes on read, by extension on write).
package mmio
