// Package linsys solves small n×n linear systems A·x = b exactly and records
// every step of the computation.
//
// Direct methods run over exact rationals (rational.Value on math/big), so a
// solution such as x = 9/5 is reported as 9/5 and the residual ‖Ax − b‖² of a
// nonsingular system is exactly 0. Iterative methods run in float64 and report
// a per-iteration table instead of a step trace.
//
// The module is organized in layers:
//
//	rational/  exact numbers: parsing "1/3", "0.25", "-2", JSON/YAML encoding
//	matrix/    dense rational matrices and vectors, shape and symmetry checks
//	trace/     the append-only step trail (pivot swaps, eliminations, ...)
//	solver/    Gauss, Gauss-Jordan, LU (Doolittle), Cholesky, Thomas, Residual
//	iterative/ Jacobi and Gauss-Seidel with convergence tables
//	chart/     convergence plots of an iterative run (PNG)
//	api/       request/response types and the HTTP handler
//	batch/     concurrent solving of a YAML file of problems
//	console/   the interactive prompt
//	config/    viper-backed configuration and the logrus logger
//	cmd/linsys the command-line entry point (solve, serve, batch, interactive)
//
// Quick start:
//
//	a, _ := matrix.NewFromInts([][]int64{{2, 1}, {1, 3}})
//	res, err := solver.Gauss(a, matrix.NewVectorFromInts(4, 7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Solution) // x = 1, y = 2
//	fmt.Println(res.Text())   // Step 1: ..., Step 2: ...
package linsys
