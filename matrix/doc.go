// Package matrix offers Matrix, a generic dense square matrix built by
// composition over vector.Vector rows.
//
// The matrix package provides:
//
//   - Construction by size (zero-filled), from row literals, or as identity.
//   - Row access (Row, At, Set) with the same strict bounds contract as
//     vector.Vector; the row storage itself is never exposed otherwise.
//   - Matrix × scalar, matrix × vector (returning a vector), and
//     matrix ± / × matrix, each returning a fresh result.
//   - Row-major whitespace-separated text input/output.
//
// Vector-only operations (scalar addition, dot product) are deliberately not
// part of the Matrix surface. Products distribute rows over goroutines when
// the matrix is large enough (see options.go); results never depend on it.
//
// See the examples in this package for usage patterns.
package matrix
