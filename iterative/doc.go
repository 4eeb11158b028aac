// Package iterative implements the Jacobi and Gauss–Seidel methods for
// A·x = b in float64 arithmetic on gonum matrices.
//
// Both methods start from the zero vector and stop as soon as every
// per-variable error is strictly below the tolerance in the same iteration,
// or when the iteration cap is reached. Non-convergence is a status
// (Result.Converged == false with an explanatory Note), never an error.
//
//   - Jacobi:       x_new[i] = (b[i] − Σ_{j≠i} A[i][j]·x_old[j]) / A[i][i];
//     error is the relative change |Δ| / |x_new[i]| (0 when x_new[i] = 0).
//   - Gauss–Seidel: same update using already refreshed x[j] for j < i;
//     error is the absolute change |Δ|.
//
// A zero diagonal entry is rejected before iterating (ErrZeroDiagonal).
// Each Result carries the full iteration table, the last iterate, its
// approximate residual ‖Ax − b‖² and whether A is diagonally dominant, the
// classic sufficient condition for convergence.
package iterative
