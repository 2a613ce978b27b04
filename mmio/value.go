// SPDX-License-Identifier: MIT

package mmio

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/katalvlaran/lvsparse/sparse"
)

// kindOf returns the reflect.Kind underlying T (named types included).
func kindOf[T sparse.Number]() reflect.Kind {
	var zero T
	return reflect.TypeOf(zero).Kind()
}

// isComplex reports whether T is a complex kind.
func isComplex[T sparse.Number]() bool {
	k := kindOf[T]()
	return k == reflect.Complex64 || k == reflect.Complex128
}

// isUnsigned reports whether T is an unsigned integer kind.
func isUnsigned[T sparse.Number]() bool {
	switch kindOf[T]() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// fieldFor returns the field Write declares for T.
func fieldFor[T sparse.Number]() Field {
	switch kindOf[T]() {
	case reflect.Float32, reflect.Float64:
		return FieldReal
	case reflect.Complex64, reflect.Complex128:
		return FieldComplex
	default:
		return FieldInteger
	}
}

// checkField rejects fields that cannot be stored in T.
func checkField[T sparse.Number](h Header) error {
	if h.Field == FieldComplex && !isComplex[T]() {
		return fmt.Errorf("complex field into %s: %w", kindOf[T](), ErrUnsupported)
	}
	if h.Symmetry == SkewSymmetric && isUnsigned[T]() {
		return fmt.Errorf("skew-symmetric into %s: %w", kindOf[T](), ErrUnsupported)
	}
	return nil
}

// parseValue converts the value columns of an entry line into T.
//   - pattern: no column, value 1.
//   - complex: two columns (re, im).
//   - real/integer: one column; integer kinds accept integral reals ("3.0").
func parseValue[T sparse.Number](field Field, cols []string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch field {
	case FieldPattern:
		if len(cols) != 0 {
			return v, fmt.Errorf("pattern entry has %d value columns", len(cols))
		}
		setOne(rv)
		return v, nil
	case FieldComplex:
		if len(cols) != 2 {
			return v, fmt.Errorf("complex entry needs 2 value columns, got %d", len(cols))
		}
		re, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return v, err
		}
		im, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return v, err
		}
		rv.SetComplex(complex(re, im))
		return v, nil
	}

	if len(cols) != 1 {
		return v, fmt.Errorf("entry needs 1 value column, got %d", len(cols))
	}
	s := cols[0]
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := parseIntegral(s)
		if err != nil {
			return v, err
		}
		if rv.OverflowInt(n) {
			return v, fmt.Errorf("%s overflows %s", s, rv.Kind())
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := parseIntegral(s)
		if err != nil {
			return v, err
		}
		if n < 0 || rv.OverflowUint(uint64(n)) {
			return v, fmt.Errorf("%s does not fit %s", s, rv.Kind())
		}
		rv.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		rv.SetComplex(complex(f, 0))
	}

	return v, nil
}

// parseIntegral parses s as an integer, accepting integral reals like "4.0".
func parseIntegral(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s is not an integer", s)
	}
	return int64(f), nil
}

// setOne stores the multiplicative identity into rv.
func setOne(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(1)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		rv.SetUint(1)
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(1)
	case reflect.Complex64, reflect.Complex128:
		rv.SetComplex(1)
	}
}

// hasImag reports whether v is complex with a non-zero imaginary part.
func hasImag[T sparse.Number](v T) bool {
	rv := reflect.ValueOf(v)
	if k := rv.Kind(); k != reflect.Complex64 && k != reflect.Complex128 {
		return false
	}
	return imag(rv.Complex()) != 0
}

// mirror returns the value stored at (j, i) for an entry v at (i, j), i != j.
func mirror[T sparse.Number](sym Symmetry, v T) T {
	switch sym {
	case SkewSymmetric:
		var zero T
		return zero - v
	case Hermitian:
		rv := reflect.ValueOf(&v).Elem()
		if k := rv.Kind(); k == reflect.Complex64 || k == reflect.Complex128 {
			c := rv.Complex()
			rv.SetComplex(complex(real(c), -imag(c)))
		}
		return v
	default:
		return v
	}
}

// formatValue renders v as Matrix Market value columns.
func formatValue[T sparse.Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		bits := 64
		if rv.Kind() == reflect.Complex64 {
			bits = 32
		}
		c := rv.Complex()
		return strconv.FormatFloat(real(c), 'g', -1, bits) + " " + strconv.FormatFloat(imag(c), 'g', -1, bits)
	}
	return fmt.Sprint(v)
}
