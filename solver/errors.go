// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

var (
	// ErrSingular is returned by LU factorization when a pivot U[i][i] is zero.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a diagonal radicand
	// A[i][i] − Σ L[i][k]² is not strictly positive.
	ErrNotPositiveDefinite = errors.New("solver: matrix is not positive definite")

	// ErrUnknownMethod signals a method name outside the supported set.
	ErrUnknownMethod = errors.New("solver: unknown method")

	// ErrNotDirect is returned by Solve for the iterative methods, which live
	// in package iterative.
	ErrNotDirect = errors.New("solver: not a direct method")
)

// Operation tags for error wrapping.
const (
	opGauss       = "Gauss"
	opGaussJordan = "GaussJordan"
	opLU          = "LU"
	opLUSolve     = "LUSolve"
	opCholesky    = "Cholesky"
	opThomas      = "Thomas"
	opResidual    = "Residual"
	opSolve       = "Solve"
)

// solverErrorf wraps err with an operation tag, preserving errors.Is.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsShapeError reports whether err is a dimension/shape violation, i.e. an
// input that was rejected before any computation began.
func IsShapeError(err error) bool {
	return errors.Is(err, matrix.ErrDimensionMismatch) ||
		errors.Is(err, matrix.ErrNonSquare) ||
		errors.Is(err, matrix.ErrNotTridiagonal) ||
		errors.Is(err, matrix.ErrBadShape) ||
		errors.Is(err, matrix.ErrInvalidDimensions) ||
		errors.Is(err, matrix.ErrNilMatrix)
}

// IsInputError reports whether err was caused by the caller's input (shape,
// symmetry, definiteness, singular factorization or an unknown method) as
// opposed to an internal failure.
func IsInputError(err error) bool {
	return IsShapeError(err) ||
		errors.Is(err, matrix.ErrAsymmetry) ||
		errors.Is(err, matrix.ErrNotFinite) ||
		errors.Is(err, ErrSingular) ||
		errors.Is(err, ErrNotPositiveDefinite) ||
		errors.Is(err, ErrUnknownMethod) ||
		errors.Is(err, ErrNotDirect)
}
