// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid logic duplication: each facade delegates to the canonical
//     implementation and never changes its numeric policy.

package sparse

// CSR is a row-major matrix; compressed, it is Compressed Sparse Row.
type CSR[T Number] = Matrix[T, RowMajor]

// CSC is a column-major matrix; compressed, it is Compressed Sparse Column.
type CSC[T Number] = Matrix[T, ColumnMajor]

// NewRowMajor creates an empty uncompressed rows×cols row-major matrix.
// Thin alias of New[T, RowMajor].
func NewRowMajor[T Number](rows, cols int, opts ...Option) (*CSR[T], error) {
	return New[T, RowMajor](rows, cols, opts...)
}

// NewColumnMajor creates an empty uncompressed rows×cols column-major matrix.
// Thin alias of New[T, ColumnMajor].
func NewColumnMajor[T Number](rows, cols int, opts ...Option) (*CSC[T], error) {
	return New[T, ColumnMajor](rows, cols, opts...)
}

// FromTriplets builds an uncompressed rows×cols matrix holding entries.
// Composition: New → SetBatch. Later duplicates win.
// Complexity: O(k·log k).
func FromTriplets[T Number, O Layout](rows, cols int, entries []Triplet[T], opts ...Option) (*Matrix[T, O], error) {
	m, err := New[T, O](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.SetBatch(entries); err != nil {
		return nil, err
	}

	return m, nil
}

// MatVecMul is an alias for MatVec: y = m·x.
func MatVecMul[T Number, O Layout](m *Matrix[T, O], x []T) ([]T, error) { return MatVec(m, x) }

// CloneMatrix returns a deep copy of m. Thin wrapper over Matrix.Clone.
func CloneMatrix[T Number, O Layout](m *Matrix[T, O]) *Matrix[T, O] { return m.Clone() }
