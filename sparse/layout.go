// SPDX-License-Identifier: MIT

// Package sparse - orientation tags.
//
// Purpose:
//   - Encode the storage order ONCE, as a compile-time type parameter, instead
//     of branching on orientation throughout the algorithms.
//   - The coordinate ordering of the uncompressed map is derived from the tag
//     (keyLess), so that an in-order walk of the map visits entries grouped by
//     primary index with ascending secondary index. Compress relies on this to
//     build the compressed arrays in one linear pass.
//
// Primary/secondary:
//   - RowMajor:    primary = row,    secondary = col  (CSR).
//   - ColumnMajor: primary = col,    secondary = row  (CSC).

package sparse

// Layout is the sealed set of orientation tags accepted by Matrix.
// The union keeps third-party types out; the methods give the algorithms a
// single, branch-free way to map between (row, col) and (primary, secondary).
type Layout interface {
	RowMajor | ColumnMajor

	// Orientation reports the tag as an enum value.
	Orientation() Orientation
	// primary returns the number of primary indices for a rows×cols matrix.
	primary(rows, cols int) int
	// split maps (row, col) to (primary, secondary).
	split(row, col int) (int, int)
	// join maps (primary, secondary) back to (row, col).
	join(primary, secondary int) (int, int)
}

// RowMajor selects row-wise storage; the compressed state is CSR.
type RowMajor struct{}

// Orientation implements Layout.
func (RowMajor) Orientation() Orientation { return RowWise }

func (RowMajor) primary(rows, _ int) int { return rows }

func (RowMajor) split(row, col int) (int, int) { return row, col }

func (RowMajor) join(p, s int) (int, int) { return p, s }

// ColumnMajor selects column-wise storage; the compressed state is CSC.
type ColumnMajor struct{}

// Orientation implements Layout.
func (ColumnMajor) Orientation() Orientation { return ColumnWise }

func (ColumnMajor) primary(_, cols int) int { return cols }

func (ColumnMajor) split(row, col int) (int, int) { return col, row }

func (ColumnMajor) join(p, s int) (int, int) { return s, p }

// keyLess orders coordinates by (primary, secondary) of layout O.
// Row-major compares (row, col); column-major compares (col, row).
// Complexity: O(1).
func keyLess[O Layout](a, b Coord) bool {
	var lay O
	ap, as := lay.split(a.Row, a.Col)
	bp, bs := lay.split(b.Row, b.Col)
	if ap != bp {
		return ap < bp
	}

	return as < bs
}
