// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
)

// SetBatch stores every triplet of batch. It is the bulk path for writing
// into a compressed matrix: instead of one O(nnz) suffix shift per new entry,
// the whole batch is merged into the compressed arrays in a single pass.
//
// Implementation:
//   - Stage 1: validate every coordinate; on failure nothing is written.
//   - Stage 2 (uncompressed): plain map writes in batch order.
//   - Stage 2 (compressed): stable-sort a copy of the batch by layout order,
//     keep the last write per coordinate, then merge segment by segment.
//
// Behavior highlights:
//   - Later duplicates in batch win, exactly as repeated Set calls would.
//   - The matrix stays in its current state.
//
// Errors:
//   - ErrOutOfRange (wrapped with the offending triplet position).
//
// Complexity:
//   - Uncompressed: O(k·log(nnz+k)).
//   - Compressed: O(k·log k + nnz + primary).
func (m *Matrix[T, O]) SetBatch(batch []Triplet[T]) error {
	for i, t := range batch {
		if err := ValidateIndex(t.Row, t.Col, m.rows, m.cols); err != nil {
			return opErrorf(ctxSetBatch, fmt.Errorf("entry %d (%d,%d): %w", i, t.Row, t.Col, err))
		}
	}
	if len(batch) == 0 {
		return nil
	}
	if !m.compressed {
		for _, t := range batch {
			*m.ref(t.Row, t.Col) = t.Value
		}

		return nil
	}
	m.mergeCompressed(batch)

	return nil
}

// mergeCompressed merges a validated, non-empty batch into the compressed arrays.
func (m *Matrix[T, O]) mergeCompressed(batch []Triplet[T]) {
	var lay O
	cmp := func(a, b Triplet[T]) int {
		ap, as := lay.split(a.Row, a.Col)
		bp, bs := lay.split(b.Row, b.Col)
		if ap != bp {
			return ap - bp
		}

		return as - bs
	}
	sorted := slices.Clone(batch)
	slices.SortStableFunc(sorted, cmp)
	// Collapse duplicates keeping the last one (stable sort preserves order).
	w := 0
	for r := 0; r < len(sorted); r++ {
		if w > 0 && cmp(sorted[w-1], sorted[r]) == 0 {
			sorted[w-1] = sorted[r]
			continue
		}
		sorted[w] = sorted[r]
		w++
	}
	sorted = sorted[:w]

	n := len(m.inner) - 1
	inner := make([]int, n+1)
	outer := make([]int, 0, len(m.outer)+len(sorted))
	values := make([]T, 0, len(m.values)+len(sorted))

	b := 0 // cursor into sorted
	for p := 0; p < n; p++ {
		k, hi := m.inner[p], m.inner[p+1]
	merge:
		for {
			bp, bs := -1, 0
			if b < len(sorted) {
				bp, bs = lay.split(sorted[b].Row, sorted[b].Col)
			}
			batchHere := bp == p
			switch {
			case k < hi && (!batchHere || m.outer[k] < bs):
				outer = append(outer, m.outer[k])
				values = append(values, m.values[k])
				k++
			case batchHere && k < hi && m.outer[k] == bs:
				outer = append(outer, bs)
				values = append(values, sorted[b].Value)
				k++
				b++
			case batchHere:
				outer = append(outer, bs)
				values = append(values, sorted[b].Value)
				b++
			default:
				break merge
			}
		}
		inner[p+1] = len(outer)
	}

	added := len(outer) - len(m.outer)
	m.inner, m.outer, m.values = inner, outer, values
	m.logState(logBatchMerge, "batch", len(batch), "added", added)
}
