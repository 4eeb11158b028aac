// SPDX-License-Identifier: MIT

package api

import (
	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/trace"
)

// Request asks for one solve. Numbers may be JSON numbers or strings such as
// "1/3" and are parsed exactly. Nil optional fields fall back to Defaults.
type Request struct {
	Method        string             `json:"method" yaml:"method"`
	A             [][]rational.Value `json:"A" yaml:"A"`
	B             []rational.Value   `json:"b" yaml:"b"`
	Pivoting      *bool              `json:"pivoting,omitempty" yaml:"pivoting,omitempty"`
	Tolerance     *float64           `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	MaxIterations *int               `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
}

// Solution is the wire form of a solution vector.
type Solution struct {
	Variables map[string]string `json:"variables" yaml:"variables"`
	Vector    []string          `json:"vector" yaml:"vector"`
}

// Factors carries L and U (or L and Lᵀ for Cholesky).
type Factors struct {
	L [][]string `json:"L" yaml:"L"`
	U [][]string `json:"U" yaml:"U"`
}

// Response is the outcome of a solve.
type Response struct {
	Method   string         `json:"method" yaml:"method"`
	N        int            `json:"n" yaml:"n"`
	Steps    []trace.Record `json:"steps" yaml:"steps"`
	Solution Solution       `json:"solution" yaml:"solution"`
	Warnings []string       `json:"warnings" yaml:"warnings"`

	// Residual is the exact ‖Ax − b‖²; null for Cholesky and the iterative
	// methods.
	Residual *rational.Value `json:"residual" yaml:"residual"`

	Approximate bool            `json:"approximate,omitempty" yaml:"approximate,omitempty"`
	Factors     *Factors        `json:"factors,omitempty" yaml:"factors,omitempty"`
	Iterations  []iterative.Row `json:"iterations,omitempty" yaml:"iterations,omitempty"`
	Converged   *bool           `json:"converged,omitempty" yaml:"converged,omitempty"`

	// SpectralRadius is ρ of the iteration matrix (iterative methods only).
	SpectralRadius *float64 `json:"spectral_radius,omitempty" yaml:"spectral_radius,omitempty"`
	Note           string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// ErrorBody is the JSON error payload.
type ErrorBody struct {
	Error string `json:"error"`
}

// Defaults are the server-side fallbacks for optional request fields.
type Defaults struct {
	Pivoting        bool
	SqrtDenominator int64
	Tolerance       float64
	MaxIterations   int
	Precision       int
}
