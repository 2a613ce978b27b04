// SPDX-License-Identifier: MIT

package mmio

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "mmio: ...". Callers match with errors.Is;
// errors from the sparse core (e.g. sparse.ErrOutOfRange for an index outside
// the declared size) propagate unchanged inside the wrapper.
var (
	// ErrMalformedHeader indicates a bad banner or size line.
	ErrMalformedHeader = errors.New("mmio: malformed header")

	// ErrMalformedEntry indicates an entry line that cannot be parsed.
	ErrMalformedEntry = errors.New("mmio: malformed entry")

	// ErrEntryCount indicates that the number of entry lines differs from the
	// nnz declared on the size line.
	ErrEntryCount = errors.New("mmio: entry count does not match header")

	// ErrUnsupported indicates a valid Matrix Market feature this package does
	// not handle, or a field that cannot be stored in the requested type.
	ErrUnsupported = errors.New("mmio: unsupported")
)

// lineErrorf wraps err with the 1-based line number it was detected on.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}
