// SPDX-License-Identifier: MIT

// Package sparse - compress/uncompress state machine.
//
// Determinism & Policy:
//   - The ordered map visits entries grouped by primary index with ascending
//     secondary index (see layout.go), so Compress is one linear pass with no
//     sort step.
//   - Both transitions are idempotent: calling either twice equals calling once.
//   - Both transitions preserve the logical entry set exactly, including
//     entries explicitly stored as zero.

package sparse

// Compress moves the matrix into the compressed state (CSR for RowMajor,
// CSC for ColumnMajor). No-op when already compressed.
//
// Implementation:
//   - Stage 1: allocate inner (primary+1, zeroed), outer/values (nnz).
//   - Stage 2: walk the map in order; before storing an entry of primary i,
//     close every boundary inner[p+1] for p < i with the running count, so
//     empty primary indices repeat the previous boundary.
//   - Stage 3: close the trailing boundaries with the total count.
//   - Stage 4: flip the flag and drop the map.
//
// Complexity:
//   - Time O(nnz + primary), Space O(nnz + primary).
func (m *Matrix[T, O]) Compress() {
	if m.compressed {
		return
	}
	var lay O
	n := lay.primary(m.rows, m.cols)
	nnz := m.entries.Len()
	inner := make([]int, n+1) // inner[0] == 0
	outer := make([]int, nnz)
	values := make([]T, nnz)

	k, p := 0, 0 // k: entries written; p: boundaries closed so far
	m.entries.Ascend(func(e entry[T]) bool {
		i, s := lay.split(e.key.Row, e.key.Col)
		for ; p < i; p++ {
			inner[p+1] = k
		}
		outer[k] = s
		values[k] = *e.val
		k++
		return true
	})
	for ; p < n; p++ {
		inner[p+1] = k
	}

	m.inner, m.outer, m.values = inner, outer, values
	m.entries = nil
	m.compressed = true
	m.logState(logCompress)
}

// Uncompress moves the matrix back into the ordered-map state.
// No-op when already uncompressed.
//
// Implementation:
//   - Stage 1: for each primary index p with a non-empty segment
//     inner[p]..inner[p+1], join (p, outer[k]) back into (row, col) and insert.
//   - Stage 2: flip the flag and release the three slices.
//
// Complexity:
//   - Time O(primary + nnz·log nnz), Space O(nnz).
func (m *Matrix[T, O]) Uncompress() {
	if !m.compressed {
		return
	}
	var lay O
	entries := newEntryMap[T, O](m.opts.degree)
	for p := 0; p+1 < len(m.inner); p++ {
		lo, hi := m.inner[p], m.inner[p+1]
		if lo == hi {
			continue // empty segment
		}
		for k := lo; k < hi; k++ {
			r, c := lay.join(p, m.outer[k])
			v := m.values[k]
			entries.ReplaceOrInsert(entry[T]{key: Coord{Row: r, Col: c}, val: &v})
		}
	}

	m.entries = entries
	m.inner, m.outer, m.values = nil, nil, nil
	m.compressed = false
	m.logState(logUncompress)
}
