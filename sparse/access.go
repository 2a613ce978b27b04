// SPDX-License-Identifier: MIT

// Package sparse - element access in either state.
//
// Policy:
//   - Every accessor bounds-checks first and returns ErrOutOfRange, never a
//     default value, for coordinates outside [0,rows)×[0,cols).
//   - In-bounds absent coordinates read as the zero value of T (not an error).
//   - Write access always materialises an entry, even when the written value
//     is zero. Nothing is pruned implicitly.
//   - A pointer returned by Ref stays valid until the next structural change
//     (Compress, Uncompress, Resize, SetBatch, or a compressed insertion).

package sparse

import (
	"slices"
	"sort"
)

// At returns the value at (row, col), or the zero value when no entry is stored.
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the matrix.
//
// Complexity:
//   - Uncompressed: O(log nnz). Compressed: O(log segment).
func (m *Matrix[T, O]) At(row, col int) (T, error) {
	var zero T
	if err := ValidateIndex(row, col, m.rows, m.cols); err != nil {
		return zero, matrixErrorf(ctxAt, row, col, err)
	}
	if !m.compressed {
		e, ok := m.entries.Get(entry[T]{key: Coord{Row: row, Col: col}})
		if !ok {
			return zero, nil
		}

		return *e.val, nil
	}
	if k, ok := m.find(row, col); ok {
		return m.values[k], nil
	}

	return zero, nil
}

// Has reports whether (row, col) is explicitly stored.
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the matrix.
func (m *Matrix[T, O]) Has(row, col int) (bool, error) {
	if err := ValidateIndex(row, col, m.rows, m.cols); err != nil {
		return false, matrixErrorf(ctxHas, row, col, err)
	}
	if !m.compressed {
		return m.entries.Has(entry[T]{key: Coord{Row: row, Col: col}}), nil
	}
	_, ok := m.find(row, col)

	return ok, nil
}

// Ref returns a mutable reference to the slot at (row, col), creating a
// zero-valued entry when none is stored.
//
// Implementation:
//   - Uncompressed: look the key up in the map; insert a zero slot if absent.
//   - Compressed, present: pointer into values.
//   - Compressed, absent: compressed insertion (see insertCompressed).
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the matrix.
//
// Complexity:
//   - Uncompressed: O(log nnz). Compressed present: O(log segment).
//     Compressed absent: O(nnz + primary) because of the suffix shift; use
//     SetBatch for many insertions into a compressed matrix.
func (m *Matrix[T, O]) Ref(row, col int) (*T, error) {
	if err := ValidateIndex(row, col, m.rows, m.cols); err != nil {
		return nil, matrixErrorf(ctxRef, row, col, err)
	}

	return m.ref(row, col), nil
}

// Set stores v at (row, col). Storing zero keeps an explicit entry.
//
// Errors:
//   - ErrOutOfRange when (row, col) is outside the matrix.
func (m *Matrix[T, O]) Set(row, col int, v T) error {
	if err := ValidateIndex(row, col, m.rows, m.cols); err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	*m.ref(row, col) = v

	return nil
}

// ref is Ref without the bounds check. Callers validate first.
func (m *Matrix[T, O]) ref(row, col int) *T {
	if !m.compressed {
		key := entry[T]{key: Coord{Row: row, Col: col}}
		if e, ok := m.entries.Get(key); ok {
			return e.val
		}
		key.val = new(T)
		m.entries.ReplaceOrInsert(key)

		return key.val
	}
	var lay O
	p, s := lay.split(row, col)
	lo, hi := m.inner[p], m.inner[p+1]
	// Upper bound: first position whose secondary index exceeds s.
	pos := lo + sort.Search(hi-lo, func(i int) bool { return m.outer[lo+i] > s })
	if pos > lo && m.outer[pos-1] == s {
		return &m.values[pos-1]
	}

	return m.insertCompressed(p, s, pos)
}

// insertCompressed inserts a zero entry with secondary index s at position
// pos of primary segment p and returns a pointer to its value slot.
//
// Implementation:
//   - Stage 1: shift every boundary inner[p+1:] up by one.
//   - Stage 2: insert s into outer and zero into values at pos.
//
// Behavior highlights:
//   - pos is the upper bound of s inside the segment, so the segment stays
//     strictly ascending and duplicate-free.
//
// Complexity:
//   - Time O(nnz + primary) (suffix moves), amortised append growth.
func (m *Matrix[T, O]) insertCompressed(p, s, pos int) *T {
	for i := p + 1; i < len(m.inner); i++ {
		m.inner[i]++
	}
	var zero T
	m.outer = slices.Insert(m.outer, pos, s)
	m.values = slices.Insert(m.values, pos, zero)

	return &m.values[pos]
}

// find locates (row, col) in the compressed arrays by binary search over the
// primary segment. Requires the compressed state.
func (m *Matrix[T, O]) find(row, col int) (int, bool) {
	var lay O
	p, s := lay.split(row, col)
	lo, hi := m.inner[p], m.inner[p+1]
	i, ok := slices.BinarySearch(m.outer[lo:hi], s)

	return lo + i, ok
}
