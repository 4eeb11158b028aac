// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// Method names a solution method as it appears on the wire.
type Method string

// Supported methods. Jacobi and GaussSeidel are implemented by package
// iterative; they are listed here so every layer shares one vocabulary.
const (
	MethodGauss       Method = "gauss"
	MethodGaussJordan Method = "gauss-jordan"
	MethodLU          Method = "lu"
	MethodCholesky    Method = "cholesky"
	MethodThomas      Method = "thomas"
	MethodJacobi      Method = "jacobi"
	MethodGaussSeidel Method = "gauss-seidel"
)

// Methods lists every supported method in display order.
func Methods() []Method {
	return []Method{
		MethodGauss, MethodGaussJordan, MethodLU, MethodCholesky,
		MethodThomas, MethodJacobi, MethodGaussSeidel,
	}
}

// ParseMethod resolves a method name case-insensitively. Underscores are
// accepted in place of dashes ("gauss_jordan").
func ParseMethod(s string) (Method, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, m := range Methods() {
		if string(m) == name {
			return m, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// IsIterative reports whether m is served by package iterative.
func (m Method) IsIterative() bool {
	return m == MethodJacobi || m == MethodGaussSeidel
}

// Solution pairs the solution vector with its display names.
type Solution struct {
	Names  []string
	Vector matrix.Vector
}

// Variables returns name → value.
func (s Solution) Variables() map[string]rational.Value {
	out := make(map[string]rational.Value, len(s.Vector))
	for i, v := range s.Vector {
		out[s.Names[i]] = v
	}

	return out
}

// String renders "x = 1, y = 2".
func (s Solution) String() string {
	parts := make([]string, len(s.Vector))
	for i, v := range s.Vector {
		parts[i] = s.Names[i] + " = " + v.String()
	}

	return strings.Join(parts, ", ")
}

// Result is the outcome of a direct solve.
type Result struct {
	Method   Method
	N        int
	Steps    []trace.Step
	Solution Solution
	Warnings []string

	// Residual is ‖Ax − b‖² computed exactly against the original inputs.
	// Nil when the solution is approximate (Cholesky).
	Residual *rational.Value

	// Approximate is set when at least one value in the solution went through
	// a rounded square root.
	Approximate bool

	// L and U are the factors for LU (L unit lower, U upper) and Cholesky
	// (U = Lᵀ). Nil for the other methods.
	L, U *matrix.Dense
}

// Records returns the wire form of the step trail.
func (r *Result) Records() []trace.Record { return trace.Records(r.Steps) }

// Text renders the step trail as numbered text.
func (r *Result) Text() string { return trace.Text(r.Steps) }

// newResult assembles the common part of a Result.
func newResult(m Method, rec *trace.Recorder, x matrix.Vector, w warnings) *Result {
	return &Result{
		Method: m,
		N:      len(x),
		Steps:  rec.Steps(),
		Solution: Solution{
			Names:  VariableNames(len(x)),
			Vector: x,
		},
		Warnings: w,
	}
}

// warnings collects singularity advisories in order of discovery.
type warnings []string

func (w *warnings) addf(format string, args ...interface{}) {
	*w = append(*w, fmt.Sprintf(format, args...))
}
