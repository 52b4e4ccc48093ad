// Package vector provides Vector, a fixed-length, heap-allocated sequence of
// numeric elements with value semantics.
//
// The vector package provides:
//
//   - Construction by size (zero-filled) or by deep copy of a source slice.
//   - Explicit copy (Clone, Assign) and move (Move, MoveFrom, Swap) semantics;
//     a Vector is the sole owner of its buffer.
//   - Bounds-checked element access (At, Set, Ref) with 0 <= i < Len().
//   - Scalar arithmetic, element-wise arithmetic and the dot product, each
//     returning a fresh result and never mutating its operands.
//   - Whitespace-separated text input/output (Scan, WriteTo, String).
//
// A Vector never changes its own length in place: only Assign and MoveFrom
// replace the contents wholesale. All user-triggered failures are reported
// through the sentinel errors in errors.go and can be matched via errors.Is.
//
// Vectors are not safe for concurrent mutation; callers serialize access.
package vector
