// SPDX-License-Identifier: MIT

package mmio

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is the value type declared by the banner.
type Field string

// Supported fields.
const (
	FieldReal    Field = "real"
	FieldInteger Field = "integer"
	FieldComplex Field = "complex"
	FieldPattern Field = "pattern"
)

// Symmetry is the storage symmetry declared by the banner.
type Symmetry string

// Supported symmetries.
const (
	General       Symmetry = "general"
	Symmetric     Symmetry = "symmetric"
	SkewSymmetric Symmetry = "skew-symmetric"
	Hermitian     Symmetry = "hermitian"
)

const (
	bannerPrefix     = "%%MatrixMarket"
	commentPrefix    = "%"
	objectMatrix     = "matrix"
	formatCoordinate = "coordinate"
)

// Header describes a Matrix Market stream. Files without a banner read as
// real/general.
type Header struct {
	Field    Field
	Symmetry Symmetry
	Rows     int
	Cols     int
	NNZ      int
}

// defaultHeader is assumed when the stream has no banner line.
func defaultHeader() Header {
	return Header{Field: FieldReal, Symmetry: General}
}

// parseBanner parses "%%MatrixMarket matrix coordinate <field> <symmetry>".
// Keywords are case-insensitive.
func parseBanner(line string) (Header, error) {
	h := defaultHeader()
	tok := strings.Fields(line)
	if len(tok) != 5 || !strings.EqualFold(tok[0], bannerPrefix) {
		return h, fmt.Errorf("banner %q: %w", line, ErrMalformedHeader)
	}
	if !strings.EqualFold(tok[1], objectMatrix) {
		return h, fmt.Errorf("object %q: %w", tok[1], ErrUnsupported)
	}
	if !strings.EqualFold(tok[2], formatCoordinate) {
		return h, fmt.Errorf("format %q: %w", tok[2], ErrUnsupported)
	}

	switch f := Field(strings.ToLower(tok[3])); f {
	case FieldReal, FieldInteger, FieldComplex, FieldPattern:
		h.Field = f
	default:
		return h, fmt.Errorf("field %q: %w", tok[3], ErrMalformedHeader)
	}
	switch s := Symmetry(strings.ToLower(tok[4])); s {
	case General, Symmetric, SkewSymmetric, Hermitian:
		h.Symmetry = s
	default:
		return h, fmt.Errorf("symmetry %q: %w", tok[4], ErrMalformedHeader)
	}
	if h.Symmetry == Hermitian && h.Field != FieldComplex {
		return h, fmt.Errorf("hermitian requires complex field: %w", ErrMalformedHeader)
	}

	return h, nil
}

// parseSize parses the "rows cols nnz" line into h.
func parseSize(line string, h *Header) error {
	tok := strings.Fields(line)
	if len(tok) != 3 {
		return fmt.Errorf("size line %q: %w", line, ErrMalformedHeader)
	}
	var vals [3]int
	for i, s := range tok {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return fmt.Errorf("size line %q: %w", line, ErrMalformedHeader)
		}
		vals[i] = v
	}
	h.Rows, h.Cols, h.NNZ = vals[0], vals[1], vals[2]
	if h.Symmetry != General && h.Rows != h.Cols {
		return fmt.Errorf("%s matrix must be square, got %dx%d: %w", h.Symmetry, h.Rows, h.Cols, ErrMalformedHeader)
	}

	return nil
}

// banner renders h as a banner line (without newline).
func (h Header) banner() string {
	return fmt.Sprintf("%s %s %s %s %s", bannerPrefix, objectMatrix, formatCoordinate, h.Field, h.Symmetry)
}
