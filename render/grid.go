// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// DefaultGridLimit is the largest dimension Grid draws when maxDim <= 0.
const DefaultGridLimit = 64

// absent marks coordinates with no stored entry.
const absent = "."

// Grid renders src densely, one line per row, cells right-aligned to a common
// width and separated by one space. Absent coordinates print as ".", so a
// stored zero stays distinguishable from structural sparsity.
//
// Errors:
//   - ErrTooLarge if rows or cols exceeds maxDim (DefaultGridLimit when
//     maxDim <= 0).
func Grid[T sparse.Number](src Source[T], maxDim int) (string, error) {
	if maxDim <= 0 {
		maxDim = DefaultGridLimit
	}
	rows, cols := src.Dims()
	if rows > maxDim || cols > maxDim {
		return "", fmt.Errorf("Grid(%dx%d, max %d): %w", rows, cols, maxDim, ErrTooLarge)
	}

	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
		for j := range cells[i] {
			cells[i][j] = absent
		}
	}
	width := len(absent)
	for _, e := range src.Entries() {
		s := fmt.Sprint(e.Value)
		cells[e.Row][e.Col] = s
		width = max(width, len(s))
	}

	var b strings.Builder
	for _, line := range cells {
		for j, s := range line {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, s)
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
