// SPDX-License-Identifier: MIT

package sparse

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Cols().
//   - Stage 2: allocate y with len m.Rows(), zero-initialised.
//   - Stage 3: pick the kernel for the current state and orientation:
//   - compressed row-major (CSR): per-row gather, y[i] += values[k]*x[outer[k]],
//     sequential and cache-friendly per output element;
//   - compressed column-major (CSC): per-column scatter,
//     y[outer[k]] += values[k]*x[j], avoiding a transpose;
//   - uncompressed (either orientation): one pass over the map,
//     y[row] += v*x[col].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. No partial result is returned.
//
// Complexity:
//   - Time O(nnz + primary), Space O(rows).
func MatVec[T Number, O Layout](m *Matrix[T, O], x []T) ([]T, error) {
	if m == nil {
		return nil, opErrorf(opMatVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	y := make([]T, m.rows)

	if !m.compressed {
		m.entries.Ascend(func(e entry[T]) bool {
			y[e.key.Row] += *e.val * x[e.key.Col]
			return true
		})

		return y, nil
	}

	var lay O
	switch lay.Orientation() {
	case RowWise:
		var acc T
		for i := 0; i < m.rows; i++ {
			acc = 0
			for k := m.inner[i]; k < m.inner[i+1]; k++ {
				acc += m.values[k] * x[m.outer[k]]
			}
			y[i] = acc
		}
	case ColumnWise:
		var xj T
		for j := 0; j < m.cols; j++ {
			xj = x[j]
			for k := m.inner[j]; k < m.inner[j+1]; k++ {
				y[m.outer[k]] += m.values[k] * xj
			}
		}
	}

	return y, nil
}

// MulVec is the method form of MatVec: y = m·x.
func (m *Matrix[T, O]) MulVec(x []T) ([]T, error) { return MatVec(m, x) }
