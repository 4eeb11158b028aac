// Package matrix offers exact rational matrices and vectors for the linsys
// solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major rows×cols array of rational.Value with bounds-checked
//     At/Set, deep Clone, row swaps and row combinations.
//   - Vector, an ordered list of rational.Value with cloning and formatting.
//   - Validators (ValidateSquare, ValidateVecLen, ValidateSymmetric,
//     ValidateTridiagonal) returning package sentinels.
//   - Canonical display strings: "[[2, 1],\n [0, 5/2]]" for matrices and
//     "[1, 2]" for vectors, used verbatim in solver traces.
//
// All comparisons are exact. "Zero" always means exactly zero; there is no
// epsilon anywhere in this package.
//
// See the examples in this package and in solver for usage patterns.
package matrix
