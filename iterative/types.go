// SPDX-License-Identifier: MIT

package iterative

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/linsys/solver"
)

// Row is one line of the iteration table.
type Row struct {
	Iteration int       `json:"iteration" yaml:"iteration"`
	Values    []float64 `json:"values" yaml:"values"`
	Errors    []float64 `json:"errors" yaml:"errors"`
	MaxError  float64   `json:"max_error" yaml:"max_error"`
}

// MarshalJSON writes non-finite entries as null, which a diverging run
// produces and encoding/json rejects.
func (r Row) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Iteration int        `json:"iteration"`
		Values    []*float64 `json:"values"`
		Errors    []*float64 `json:"errors"`
		MaxError  *float64   `json:"max_error"`
	}{
		Iteration: r.Iteration,
		Values:    finiteOrNil(r.Values),
		Errors:    finiteOrNil(r.Errors),
		MaxError:  finite(r.MaxError),
	})
}

func finiteOrNil(xs []float64) []*float64 {
	if xs == nil {
		return nil
	}
	out := make([]*float64, len(xs))
	for i, x := range xs {
		out[i] = finite(x)
	}

	return out
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

// Result is the outcome of an iterative run.
type Result struct {
	Method solver.Method
	N      int

	// Table holds one row per performed iteration, up to and including the
	// converging one.
	Table []Row

	// Names and Solution are the display names and the last iterate.
	Names    []string
	Solution []float64

	Converged  bool
	Iterations int
	Note       string

	// Residual is ‖A·x − b‖² for the last iterate.
	Residual float64

	// DiagonallyDominant reports |A[i][i]| ≥ Σ_{j≠i} |A[i][j]| for every row.
	DiagonallyDominant bool

	// SpectralRadius is ρ(B) of the iteration matrix B; the method converges
	// for every start iff ρ(B) < 1. SpectralRadiusKnown is false when the
	// eigenvalues could not be computed.
	SpectralRadius      float64
	SpectralRadiusKnown bool

	Warnings []string
}

// MaxErrors returns the MaxError column of the table.
func (r *Result) MaxErrors() []float64 {
	out := make([]float64, len(r.Table))
	for i, row := range r.Table {
		out[i] = row.MaxError
	}

	return out
}
