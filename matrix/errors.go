// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (wrapped with call-site context) and
// tests check them via errors.Is. No operation panics on user-triggered
// conditions; panics are reserved for invalid Option values.

package matrix

import (
	"errors"
	"fmt"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> size/dimension mismatch -> row/element index.

var (
	// ErrInvalidSize is returned when a requested size is zero, negative or
	// exceeds MaxSize. Validated before allocation.
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrDimensionMismatch indicates incompatible operands: different sizes
	// for Add/Sub/Mul, a vector whose length differs from the matrix size in
	// MulVec, or non-square row literals in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrScan indicates malformed or truncated text input.
	ErrScan = errors.New("matrix: malformed input")
)

// ErrIndexOutOfRange is shared with package vector: a bad row index and a
// bad column index inside a row both match it via errors.Is.
var ErrIndexOutOfRange = vector.ErrIndexOutOfRange

// Operation tags used in error wrappers.
const (
	opNew      = "New"
	opFromRows = "FromRows"
	opIdentity = "Identity"
	opRow      = "Row"
	opAt       = "At"
	opSet      = "Set"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opScan     = "Scan"
)

// matrixErrorf wraps err with a "Matrix.<tag>" prefix, preserving errors.Is.
// err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}
