// SPDX-License-Identifier: MIT

// Package vector - whitespace-separated text input/output.
//
// Format:
//   - Output: each element rendered with fmt's default verb and followed by a
//     single space; no newline. A length-3 vector prints as "1 2 3 ".
//   - Input: exactly Len() whitespace-separated tokens (newlines count as
//     whitespace). The vector never grows or shrinks while scanning.
//
// Default formatting of floats and complex numbers is the shortest
// representation that parses back to the same value, so WriteTo followed by
// Scan into a vector of the same length reproduces the elements exactly.

package vector

import (
	"bufio"
	"fmt"
	"io"
)

// TokenReader is a reader fmt.Fscan can consume without reading ahead.
type TokenReader interface {
	io.Reader
	io.RuneScanner
}

// AsRuneScanner returns r itself when it already implements io.RuneScanner,
// otherwise a buffered reader over r. Callers that scan several vectors from
// one stream must wrap it once and reuse the result; a fresh buffer per call
// may read ahead and lose tokens.
func AsRuneScanner(r io.Reader) TokenReader {
	if tr, ok := r.(TokenReader); ok {
		return tr
	}

	return bufio.NewReader(r)
}

// Scan reads Len() elements from r, overwriting v in place.
// Implementation:
//   - Stage 1: scan every token into a scratch buffer.
//   - Stage 2: copy the scratch buffer into v only when all tokens parsed.
//
// Behavior highlights:
//   - On error v is unchanged (no partially overwritten state).
//
// Errors:
//   - ErrScan wrapping the underlying fmt/io error (malformed token, EOF).
//
// Complexity:
//   - Time O(n), Space O(n) scratch.
func (v *Vector[T]) Scan(r io.Reader) error {
	n := v.Len()
	if n == 0 {
		return nil // nothing to overwrite
	}
	rs := AsRuneScanner(r)
	tmp := make([]T, n)
	for i := 0; i < n; i++ {
		if _, err := fmt.Fscan(rs, &tmp[i]); err != nil {
			return fmt.Errorf("Vector.%s(%d): %w: %w", opScan, i, ErrScan, err)
		}
	}
	copy(v.data, tmp)

	return nil
}

// appendText appends the textual form of v to buf.
func (v *Vector[T]) appendText(buf []byte) []byte {
	for i := 0; i < v.Len(); i++ {
		buf = fmt.Append(buf, v.data[i])
		buf = append(buf, ' ')
	}

	return buf
}

// WriteTo writes v to w as space-separated elements. It implements io.WriterTo.
func (v *Vector[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.appendText(nil))

	return int64(n), err
}

// String implements fmt.Stringer with the same format as WriteTo.
func (v *Vector[T]) String() string {
	return string(v.appendText(nil))
}
