// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every exported operation returns one of these sentinels (possibly wrapped
// with call-site context) and tests match them via errors.Is. No operation
// panics on user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistent grepping.
// Call sites wrap with vectorErrorf / indexErrorf so the sentinel survives
// via %w.

var (
	// ErrInvalidSize is returned when a requested length is zero, negative,
	// or exceeds MaxSize. Checked before any allocation.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrNullSource indicates that construction from a source buffer got nil.
	ErrNullSource = errors.New("vector: nil source buffer")

	// ErrIndexOutOfRange indicates an element index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch indicates that two operands of an element-wise
	// operation or dot product have different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrScan indicates malformed or truncated text input.
	ErrScan = errors.New("vector: malformed input")
)

// Operation tags used in error wrappers.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAt        = "At"
	opSet       = "Set"
	opRef       = "Ref"
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opHadamard  = "Hadamard"
	opScan      = "Scan"
)

// vectorErrorf prefixes err with the operation tag, preserving errors.Is.
// err must be non-nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}

// indexErrorf reports an out-of-range index together with the vector length.
func indexErrorf(tag string, idx, length int) error {
	return fmt.Errorf("Vector.%s(%d) len=%d: %w", tag, idx, length, ErrIndexOutOfRange)
}
