// SPDX-License-Identifier: MIT

// Package matrix - row-major text input/output.
//
// Format:
//   - Output: every row in vector format ("a b c ") followed by "\n".
//   - Input: Size()*Size() whitespace-separated tokens, row-major.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// Scan reads Size() rows from r, overwriting m in place.
// Implementation:
//   - Stage 1: wrap r once so consecutive rows share one read position.
//   - Stage 2: scan into a clone so a failure leaves m unchanged.
//   - Stage 3: copy the parsed values into the existing rows; row handles
//     obtained through Row before Scan observe the new contents.
//
// Errors:
//   - ErrScan wrapping the row index and the vector.ErrScan cause.
//
// Complexity:
//   - Time O(n²), Space O(n²) scratch.
func (m *Matrix[T]) Scan(r io.Reader) error {
	rs := vector.AsRuneScanner(r)
	tmp := m.Clone()
	for i, row := range tmp.rows {
		if err := row.Scan(rs); err != nil {
			return matrixErrorf(opScan, fmt.Errorf("row %d: %w: %w", i, ErrScan, err))
		}
	}
	for i, row := range tmp.rows {
		for j, x := range row.Slice() {
			_ = m.rows[i].Set(j, x) // clone rows have identical lengths
		}
	}

	return nil
}

// WriteTo writes m to w row by row. It implements io.WriterTo.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())

	return int64(n), err
}

// String implements fmt.Stringer with the same format as WriteTo.
// Complexity: O(n²) for string construction.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.Size(); i++ {
		sb.WriteString(m.rows[i].String()) // row in vector format
		sb.WriteByte('\n')                 // row separator
	}

	return sb.String()
}
