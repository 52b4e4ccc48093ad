// Package mp2lab2matrix is a small generic linear-algebra toolkit: a
// fixed-length dynamic vector and a square dynamic matrix built from it.
//
// What is inside?
//
//	vector/     — Vector[T]: owned buffer, copy/move, bounds-checked access,
//	              scalar & element-wise arithmetic, dot product, text I/O
//	matrix/     — Matrix[T]: square matrix over Vector rows; scalar, vector
//	              and matrix products, sum/difference, text I/O
//	converters/ — float64 adapters to and from gonum's mat package
//	examples/   — power iteration and text-stream products
//
// Every element type is a built-in numeric kind (or a named type over one).
// Failures are sentinel errors matched with errors.Is; no operation panics
// on user input, and a failed operation never modifies its operands.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	x, _ := vector.FromSlice([]int{1, 1})
//	y, _ := a.MulVec(x) // "3 7 "
package mp2lab2matrix
