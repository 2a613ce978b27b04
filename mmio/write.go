// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Write emits m in coordinate format: a general banner whose field matches
// T, the size line and one 1-based "row col value" line per stored entry in
// layout order. Write works in either state and does not mutate m.
func Write[T sparse.Number, O sparse.Layout](w io.Writer, m *sparse.Matrix[T, O]) error {
	if m == nil {
		return fmt.Errorf("mmio.Write: %w", sparse.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	h := Header{Field: fieldFor[T](), Symmetry: General, Rows: m.Rows(), Cols: m.Cols(), NNZ: m.NNZ()}
	fmt.Fprintln(bw, h.banner())
	fmt.Fprintf(bw, "%d %d %d\n", h.Rows, h.Cols, h.NNZ)
	for _, t := range m.Entries() {
		fmt.Fprintf(bw, "%d %d %s\n", t.Row+1, t.Col+1, formatValue(t.Value))
	}

	return bw.Flush()
}

// WriteFile writes m to path, compressing by extension (see CompressionFor).
func WriteFile[T sparse.Number, O sparse.Layout](path string, m *sparse.Matrix[T, O]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	cw, err := compressWriter(f, CompressionFor(path))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err = Write(cw, m); err != nil {
		_ = cw.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return cw.Close()
}
