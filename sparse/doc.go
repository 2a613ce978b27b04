// SPDX-License-Identifier: MIT

// Package sparse stores a mostly-zero two-dimensional matrix in one of two
// representations and moves between them on request.
//
// The package provides:
//
//   - Matrix[T, O]: a generic container over a numeric element type T and an
//     orientation tag O (RowMajor or ColumnMajor).
//   - An uncompressed state: an ordered coordinate map, cheap to mutate.
//   - A compressed state: CSR (RowMajor) or CSC (ColumnMajor) arrays
//     inner/outer/values, compact and fast to multiply.
//   - Uniform element access (At, Ref, Set) in either state, Resize, and the
//     matrix-vector product MulVec.
//
// State machine:
//
//	          Compress()
//	  ┌────────────┐ ───────▶ ┌────────────┐
//	  │uncompressed│          │ compressed │
//	  └────────────┘ ◀─────── └────────────┘
//	     ▲  Uncompress()/Resize()    │
//	     └── Set/Ref (map insert)    └── Set/Ref (compressed insertion)
//
// Indices are 0-based everywhere in this package. Absent in-bounds
// coordinates read as the zero value of T; out-of-bounds coordinates return
// ErrOutOfRange.
//
// A Matrix is not safe for concurrent use. Guard it with an external lock if
// several goroutines touch it.
package sparse
