// SPDX-License-Identifier: MIT

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// maxLineBytes bounds a single line of input.
const maxLineBytes = 1 << 20

// Read parses a Matrix Market coordinate stream into a new uncompressed
// matrix. opts are forwarded to sparse.New.
//
// Implementation:
//   - Stage 1: read the optional banner (first non-blank line), skip
//     comments and blank lines, read the size line.
//   - Stage 2: construct sparse.New(rows, cols).
//   - Stage 3: for each entry line, parse 1-based (row, col, value) and call
//     Set(row-1, col-1, value); mirror off-diagonal entries for non-general
//     symmetry.
//   - Stage 4: require exactly nnz entry lines.
//
// Errors:
//   - ErrMalformedHeader, ErrMalformedEntry, ErrEntryCount, ErrUnsupported,
//     sparse.ErrOutOfRange (index outside the declared size), or the
//     underlying I/O error. Every error carries its line number.
func Read[T sparse.Number, O sparse.Layout](r io.Reader, opts ...sparse.Option) (*sparse.Matrix[T, O], error) {
	m, _, err := ReadWithHeader[T, O](r, opts...)
	return m, err
}

// ReadWithHeader is Read that also returns the parsed header.
func ReadWithHeader[T sparse.Number, O sparse.Layout](r io.Reader, opts ...sparse.Option) (*sparse.Matrix[T, O], Header, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0

	// Stage 1: banner, comments, size line.
	h := defaultHeader()
	sizeSeen := false
	bannerAllowed := true // until the first non-blank line
	for !sizeSeen && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		first := bannerAllowed
		bannerAllowed = false
		switch {
		case first && strings.HasPrefix(line, bannerPrefix[:2]):
			var err error
			if h, err = parseBanner(line); err != nil {
				return nil, h, lineErrorf(lineNo, err, "banner")
			}
		case strings.HasPrefix(line, commentPrefix):
			continue
		default:
			if err := parseSize(line, &h); err != nil {
				return nil, h, lineErrorf(lineNo, err, "size")
			}
			sizeSeen = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, h, lineErrorf(lineNo, err, "scan")
	}
	if !sizeSeen {
		return nil, h, lineErrorf(lineNo, ErrMalformedHeader, "missing size line")
	}
	if err := checkField[T](h); err != nil {
		return nil, h, lineErrorf(lineNo, err, "field")
	}

	// Stage 2: the core matrix.
	m, err := sparse.New[T, O](h.Rows, h.Cols, opts...)
	if err != nil {
		return nil, h, lineErrorf(lineNo, err, "size")
	}

	// Stage 3: entries.
	read := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if read == h.NNZ {
			return nil, h, lineErrorf(lineNo, ErrEntryCount, "more than %d entries", h.NNZ)
		}
		if err = readEntry(m, h, line); err != nil {
			return nil, h, lineErrorf(lineNo, err, "entry %d", read+1)
		}
		read++
	}
	if err = sc.Err(); err != nil {
		return nil, h, lineErrorf(lineNo, err, "scan")
	}

	// Stage 4: count check.
	if read != h.NNZ {
		return nil, h, lineErrorf(lineNo, ErrEntryCount, "got %d of %d entries", read, h.NNZ)
	}

	return m, h, nil
}

// readEntry parses one entry line and writes it (and its mirror) into m.
func readEntry[T sparse.Number, O sparse.Layout](m *sparse.Matrix[T, O], h Header, line string) error {
	tok := strings.Fields(line)
	if len(tok) < 2 {
		return fmt.Errorf("%q: %w", line, ErrMalformedEntry)
	}
	i, err := strconv.Atoi(tok[0])
	if err != nil {
		return fmt.Errorf("row %q: %w", tok[0], ErrMalformedEntry)
	}
	j, err := strconv.Atoi(tok[1])
	if err != nil {
		return fmt.Errorf("col %q: %w", tok[1], ErrMalformedEntry)
	}
	v, err := parseValue[T](h.Field, tok[2:])
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedEntry)
	}

	// 1-based file indices → 0-based core indices.
	row, col := i-1, j-1
	if h.Symmetry == Hermitian && row == col && hasImag(v) {
		return fmt.Errorf("hermitian diagonal (%d,%d) has an imaginary part: %w", i, j, ErrMalformedEntry)
	}
	if err = m.Set(row, col, v); err != nil {
		return err
	}
	if h.Symmetry != General && row != col {
		if err = m.Set(col, row, mirror(h.Symmetry, v)); err != nil {
			return err
		}
	}

	return nil
}
