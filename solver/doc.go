// Package solver implements the direct methods for small systems Ax = b in
// exact rational arithmetic, each producing a full step-by-step trace.
//
// Methods:
//
//   - Gauss: forward elimination with optional partial pivoting, then
//     back substitution.
//   - GaussJordan: reduction to the identity; b ends up holding x.
//   - LU: Doolittle factorization A = L·U (unit diagonal on L), then
//     Ly = b and Ux = y.
//   - Cholesky: A = L·Lᵀ for symmetric positive-definite A.
//   - Thomas: O(n) sweep for tridiagonal systems.
//
// Every method validates shapes up front, takes its own copy of the inputs,
// records each transformation into a trace.Recorder and returns a *Result
// with the solution, the variable names (x, y, z, w or x1..xn), any
// singularity warnings and, where arithmetic is exact, the residual ‖Ax − b‖².
//
// Failure policy:
//
//   - Gauss, GaussJordan, Thomas: a zero pivot is a warning; the affected
//     unknown is set to 0 and the solve continues.
//   - LU: a zero pivot in U aborts with ErrSingular (there is no pivoting to
//     fall back on).
//   - Cholesky: asymmetry aborts with matrix.ErrAsymmetry before any work; a
//     non-positive radicand aborts with ErrNotPositiveDefinite.
//
// Zero tests are exact. Only Cholesky's square roots are approximated: perfect
// squares stay exact, other roots are computed at high precision and rounded
// to the nearest fraction with a bounded denominator (see WithSqrtDenominator),
// so its Result carries no residual and is flagged Approximate.
//
// The package holds no mutable global state; concurrent solves are safe.
package solver
