// SPDX-License-Identifier: MIT

package sparse

// Resize changes the extents to rows×cols.
//
// Implementation:
//   - Stage 1: force the uncompressed state.
//   - Stage 2: when shrinking, drop every entry with row >= rows or
//     col >= cols (entries on the new boundary are dropped; this is a shrink,
//     not a clamp).
//   - Stage 3: store the new extents.
//
// Behavior highlights:
//   - The matrix is left uncompressed; call Compress again if needed.
//   - Growing only adds addressable space; no entries are created.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0 (the matrix is untouched).
//
// Complexity:
//   - Time O(nnz·log nnz) worst case (uncompress + deletions).
func (m *Matrix[T, O]) Resize(rows, cols int) error {
	if err := ValidateDims(rows, cols); err != nil {
		return matrixErrorf(ctxResize, rows, cols, err)
	}
	m.Uncompress()

	dropped := 0
	if rows < m.rows || cols < m.cols {
		var doomed []entry[T]
		m.entries.Ascend(func(e entry[T]) bool {
			if e.key.Row >= rows || e.key.Col >= cols {
				doomed = append(doomed, e)
			}
			return true
		})
		for _, e := range doomed {
			m.entries.Delete(e)
		}
		dropped = len(doomed)
	}

	m.rows, m.cols = rows, cols
	m.logState(logResize, "dropped", dropped)

	return nil
}
