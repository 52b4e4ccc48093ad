// Package converters provides two-way adapters between the float64
// instantiations of vector.Vector / matrix.Matrix and gonum's mat package:
//   - vector.Vector[float64] <-> *mat.VecDense (and any mat.Vector)
//   - matrix.Matrix[float64] <-> *mat.Dense   (and any square mat.Matrix)
//
// Every conversion copies; neither side ever aliases the other's storage.
// Use converters to hand data to gonum's factorizations and solvers and to
// bring the results back.
package converters
