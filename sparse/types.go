// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix, its collaborators and
// tests. The orientation tags live in layout.go; errors and options live in
// their own files.
package sparse

import "fmt"

// Number is the element constraint of Matrix: any built-in integer, float or
// complex kind. The zero value of T is the additive identity and the value
// read back for absent coordinates.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Orientation names the storage order selected by a layout tag.
type Orientation uint8

const (
	// RowWise groups entries by row: the compressed state is CSR.
	RowWise Orientation = iota
	// ColumnWise groups entries by column: the compressed state is CSC.
	ColumnWise
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case RowWise:
		return "row-major"
	case ColumnWise:
		return "column-major"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Coord is a 0-based (row, col) position.
type Coord struct {
	Row int
	Col int
}

// Triplet is one stored entry in coordinate form.
type Triplet[T Number] struct {
	Row   int
	Col   int
	Value T
}

// Storage is a copy of the compressed arrays.
//   - Inner has length primary+1; Inner[i] counts entries before primary index i.
//   - Outer holds the secondary index of each entry, ascending per segment.
//   - Values[k] is the value stored at Outer[k].
type Storage[T Number] struct {
	Inner  []int
	Outer  []int
	Values []T
}

// NNZ returns the number of stored entries described by s.
func (s Storage[T]) NNZ() int { return len(s.Values) }
