// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Source is the read-only view render needs. *sparse.Matrix satisfies it
// for every layout.
type Source[T sparse.Number] interface {
	fmt.Stringer
	Dims() (int, int)
	NNZ() int
	IsCompressed() bool
	Orientation() sparse.Orientation
	Entries() []sparse.Triplet[T]
	Storage() (sparse.Storage[T], bool)
}

// Dump returns the plain diagnostic dump of src: stored "(row, col): value"
// lines while uncompressed, the three raw sequences once compressed.
func Dump[T sparse.Number](src Source[T]) string {
	return src.String()
}

// Summary returns a one-line description such as
// "7x4 column-major compressed nnz=6".
func Summary[T sparse.Number](src Source[T]) string {
	r, c := src.Dims()
	state := "uncompressed"
	if src.IsCompressed() {
		state = "compressed"
	}

	return fmt.Sprintf("%dx%d %s %s nnz=%d", r, c, src.Orientation(), state, src.NNZ())
}
