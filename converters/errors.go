// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil source value.
	ErrNilInput = errors.New("converters: nil input")

	// ErrNonSquare indicates a gonum matrix with rows != cols.
	ErrNonSquare = errors.New("converters: matrix is not square")
)

// convErrorf wraps err with the conversion name. err must be non-nil.
func convErrorf(tag string, err error) error {
	return fmt.Errorf("converters.%s: %w", tag, err)
}
