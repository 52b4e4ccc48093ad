// SPDX-License-Identifier: MIT

// Package vector: element constraint, limits and the Vector type.
package vector

import (
	"fmt"
	"io"
)

// MaxSize is the largest length a Vector may be constructed with.
// Requests above it fail with ErrInvalidSize instead of attempting the allocation.
const MaxSize = 100_000_000

// Element is the set of types a Vector can hold.
// Every member supports +, -, *, == and has a zero value that acts as the
// additive identity; all of them scan and print through package fmt.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Vector is a fixed-length, owned buffer of elements.
//   - data is the only reference to the buffer; accessors never leak it.
//   - len(data) is in [1, MaxSize] for any Vector produced by a constructor
//     or arithmetic. A moved-from Vector has len(data)==0 and may only be
//     reassigned (Assign/MoveFrom) or dropped.
type Vector[T Element] struct {
	data []T // owned storage
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Vector[float64])(nil)
	_ io.WriterTo  = (*Vector[float64])(nil)
)
