// SPDX-License-Identifier: MIT

// Package matrix: limits and the Matrix type.
package matrix

import (
	"fmt"
	"io"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// MaxSize is the largest row/column count a Matrix may be constructed with.
const MaxSize = 10_000

// Matrix is a square matrix stored as a fixed-length set of row vectors.
//   - len(rows) == Size(); every row has length Size().
//   - rows are owned exclusively; Row hands out the live row for element
//     access, and callers must not change its length (Assign/MoveFrom) through it.
//   - opts is inherited by every matrix an operation returns.
type Matrix[T vector.Element] struct {
	rows []*vector.Vector[T] // one owned vector per row
	opts Options             // kernel scheduling policy
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Matrix[float64])(nil)
	_ io.WriterTo  = (*Matrix[float64])(nil)
)
