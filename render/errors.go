// SPDX-License-Identifier: MIT

package render

import "errors"

// ErrTooLarge is returned by Grid when a dimension exceeds the limit.
var ErrTooLarge = errors.New("render: matrix too large for grid")
