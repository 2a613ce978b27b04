// SPDX-License-Identifier: MIT

// Package sparse - Matrix container: construction, shape queries, cloning and
// read-only introspection for collaborators (renderers, writers).
//
// Purpose:
//   - Own both representations and guarantee that exactly one is populated.
//   - Expose a pure, data-producing dump (String) instead of writing to a
//     console, so callers pick the output stream.
//
// Complexity quicksheet:
//   - New: O(1); Rows/Cols/NNZ/IsCompressed: O(1); Clone/Entries/String: O(nnz).

package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/btree"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxAt         = "At"
	ctxRef        = "Ref"
	ctxSet        = "Set"
	ctxHas        = "Has"
	ctxResize     = "Resize"
	ctxSetBatch   = "SetBatch"
	opMatVec      = "MatVec"
	logCompress   = "sparse: compressed"
	logUncompress = "sparse: uncompressed"
	logResize     = "sparse: resized"
	logBatchMerge = "sparse: merged batch into compressed storage"
)

// ---------- Formatting literals ----------

const (
	_fmtHeader = "%s %dx%d %s nnz=%d\n"
	_fmtEntry  = "(%d, %d): %v\n"
	_fmtInner  = "inner:  %v\n"
	_fmtOuter  = "outer:  %v\n"
	_fmtValues = "values: %v\n"
)

// matrixErrorf wraps an error with a uniform Matrix context and call-site indices.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps an error with an operation tag.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// entry is one item of the ordered coordinate map. The value lives behind a
// pointer so Ref can hand out a stable mutable reference to the map slot.
type entry[T Number] struct {
	key Coord
	val *T
}

// Matrix is a sparse rows×cols matrix over T stored in orientation O.
//
// In the uncompressed state entries live in an ordered map keyed by Coord
// and ordered by O. In the compressed state they live in inner/outer/values
// (CSR for RowMajor, CSC for ColumnMajor). Exactly one state is populated.
//
// Assigning a *Matrix shares storage; use Clone for an independent copy.
// A Matrix is not safe for concurrent use.
type Matrix[T Number, O Layout] struct {
	rows, cols int
	compressed bool

	entries *btree.BTreeG[entry[T]] // uncompressed state; nil while compressed

	inner  []int // len primary+1 while compressed
	outer  []int // len nnz while compressed
	values []T   // len nnz while compressed

	opts Options
}

// New creates an empty, uncompressed rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity: O(1).
func New[T Number, O Layout](rows, cols int, opts ...Option) (*Matrix[T, O], error) {
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return &Matrix[T, O]{
		rows:    rows,
		cols:    cols,
		entries: newEntryMap[T, O](o.degree),
		opts:    o,
	}, nil
}

// newEntryMap builds an empty ordered map whose comparator is O's ordering.
func newEntryMap[T Number, O Layout](degree int) *btree.BTreeG[entry[T]] {
	return btree.NewG(degree, func(a, b entry[T]) bool {
		return keyLess[O](a.key, b.key)
	})
}

// Rows returns the number of rows.
func (m *Matrix[T, O]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T, O]) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix[T, O]) Dims() (int, int) { return m.rows, m.cols }

// IsCompressed reports whether the matrix is in the compressed state.
func (m *Matrix[T, O]) IsCompressed() bool { return m.compressed }

// Orientation reports the storage order selected by O.
func (m *Matrix[T, O]) Orientation() Orientation {
	var lay O
	return lay.Orientation()
}

// NNZ returns the number of explicitly stored entries, including entries
// explicitly set to zero.
func (m *Matrix[T, O]) NNZ() int {
	if m.compressed {
		return len(m.values)
	}

	return m.entries.Len()
}

// Clone returns a deep copy in the same state as m.
// Complexity: O(nnz).
func (m *Matrix[T, O]) Clone() *Matrix[T, O] {
	out := &Matrix[T, O]{
		rows:       m.rows,
		cols:       m.cols,
		compressed: m.compressed,
		opts:       m.opts,
	}
	if m.compressed {
		out.inner = slices.Clone(m.inner)
		out.outer = slices.Clone(m.outer)
		out.values = slices.Clone(m.values)

		return out
	}
	out.entries = newEntryMap[T, O](m.opts.degree)
	m.entries.Ascend(func(e entry[T]) bool {
		v := *e.val // fresh slot; the clone must not alias m
		out.entries.ReplaceOrInsert(entry[T]{key: e.key, val: &v})
		return true
	})

	return out
}

// Entries returns every stored entry as a triplet, in O's order
// (row-major: by row then column; column-major: by column then row).
// Valid in both states. Complexity: O(nnz).
func (m *Matrix[T, O]) Entries() []Triplet[T] {
	out := make([]Triplet[T], 0, m.NNZ())
	if !m.compressed {
		m.entries.Ascend(func(e entry[T]) bool {
			out = append(out, Triplet[T]{Row: e.key.Row, Col: e.key.Col, Value: *e.val})
			return true
		})

		return out
	}
	var lay O
	for p := 0; p+1 < len(m.inner); p++ {
		for k := m.inner[p]; k < m.inner[p+1]; k++ {
			r, c := lay.join(p, m.outer[k])
			out = append(out, Triplet[T]{Row: r, Col: c, Value: m.values[k]})
		}
	}

	return out
}

// Storage returns copies of the compressed arrays. The boolean is false (and
// the Storage empty) while the matrix is uncompressed.
func (m *Matrix[T, O]) Storage() (Storage[T], bool) {
	if !m.compressed {
		return Storage[T]{}, false
	}

	return Storage[T]{
		Inner:  slices.Clone(m.inner),
		Outer:  slices.Clone(m.outer),
		Values: slices.Clone(m.values),
	}, true
}

// String returns the diagnostic dump: a header line, then either every stored
// "(row, col): value" in map order (uncompressed) or the three raw sequences
// (compressed). It performs no I/O.
func (m *Matrix[T, O]) String() string {
	var b strings.Builder
	state := "uncompressed"
	if m.compressed {
		state = "compressed"
	}
	fmt.Fprintf(&b, _fmtHeader, state, m.rows, m.cols, m.Orientation(), m.NNZ())
	if m.compressed {
		fmt.Fprintf(&b, _fmtInner, m.inner)
		fmt.Fprintf(&b, _fmtOuter, m.outer)
		fmt.Fprintf(&b, _fmtValues, m.values)

		return b.String()
	}
	m.entries.Ascend(func(e entry[T]) bool {
		fmt.Fprintf(&b, _fmtEntry, e.key.Row, e.key.Col, *e.val)
		return true
	})

	return b.String()
}

// logState emits one Debug record describing the current shape and state.
func (m *Matrix[T, O]) logState(msg string, attrs ...any) {
	base := []any{
		"rows", m.rows,
		"cols", m.cols,
		"nnz", m.NNZ(),
		"orientation", m.Orientation().String(),
	}
	m.opts.logger.Debug(msg, append(base, attrs...)...)
}
