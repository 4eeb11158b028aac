// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/linsys/iterative"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
	"github.com/katalvlaran/linsys/trace"
)

// ErrBadRequest marks malformed input that never reached a solver.
var ErrBadRequest = errors.New("api: bad request")

// NewDefaults returns the library defaults.
func NewDefaults() Defaults {
	return Defaults{
		Pivoting:        solver.DefaultPivoting,
		SqrtDenominator: solver.DefaultSqrtDenominator,
		Tolerance:       iterative.DefaultTolerance,
		MaxIterations:   iterative.DefaultMaxIterations,
		Precision:       iterative.DefaultPrecision,
	}
}

// Solve validates req, runs the requested method and builds the Response.
// Thomas rejects a non-tridiagonal A before the solver runs.
func Solve(req Request, d Defaults) (*Response, error) {
	m, a, b, err := decode(req)
	if err != nil {
		return nil, err
	}

	if m.IsIterative() {
		opts, err := iterativeOptions(req, d)
		if err != nil {
			return nil, err
		}
		res, err := iterative.Solve(m, a, b, opts...)
		if err != nil {
			return nil, err
		}

		return fromIterative(res), nil
	}

	if m == solver.MethodThomas {
		if err = matrix.ValidateTridiagonal(a); err != nil {
			return nil, fmt.Errorf("thomas: %w", err)
		}
	}
	res, err := solver.Solve(m, a, b, directOptions(req, d)...)
	if err != nil {
		return nil, err
	}

	return fromDirect(res), nil
}

// SolveIterative is Solve restricted to jacobi and gauss-seidel, returning
// the raw result (used for charts).
func SolveIterative(req Request, d Defaults) (*iterative.Result, error) {
	m, a, b, err := decode(req)
	if err != nil {
		return nil, err
	}
	if !m.IsIterative() {
		return nil, fmt.Errorf("%w: %q is not an iterative method", ErrBadRequest, m)
	}

	opts, err := iterativeOptions(req, d)
	if err != nil {
		return nil, err
	}

	return iterative.Solve(m, a, b, opts...)
}

func decode(req Request) (solver.Method, *matrix.Dense, matrix.Vector, error) {
	m, err := solver.ParseMethod(req.Method)
	if err != nil {
		return "", nil, nil, err
	}
	if len(req.A) == 0 {
		return "", nil, nil, fmt.Errorf("%w: A is empty", ErrBadRequest)
	}
	a, err := matrix.NewFromRows(req.A)
	if err != nil {
		return "", nil, nil, err
	}
	b := matrix.Vector(req.B).Clone()
	if err = matrix.ValidateSystem(a, b); err != nil {
		return "", nil, nil, err
	}

	return m, a, b, nil
}

func directOptions(req Request, d Defaults) []solver.Option {
	pivoting := d.Pivoting
	if req.Pivoting != nil {
		pivoting = *req.Pivoting
	}
	opts := []solver.Option{solver.WithPivoting(pivoting)}
	if d.SqrtDenominator > 0 {
		opts = append(opts, solver.WithSqrtDenominator(d.SqrtDenominator))
	}

	return opts
}

func iterativeOptions(req Request, d Defaults) ([]iterative.Option, error) {
	var opts []iterative.Option
	tol := d.Tolerance
	if req.Tolerance != nil {
		if !(*req.Tolerance > 0) {
			return nil, fmt.Errorf("%w: tolerance must be > 0", ErrBadRequest)
		}
		tol = *req.Tolerance
	}
	if tol > 0 {
		opts = append(opts, iterative.WithTolerance(tol))
	}
	maxIt := d.MaxIterations
	if req.MaxIterations != nil {
		if *req.MaxIterations < 1 {
			return nil, fmt.Errorf("%w: max_iterations must be >= 1", ErrBadRequest)
		}
		maxIt = *req.MaxIterations
	}
	if maxIt > 0 {
		opts = append(opts, iterative.WithMaxIterations(maxIt))
	}
	if d.Precision >= 0 && d.Precision <= 15 {
		opts = append(opts, iterative.WithPrecision(d.Precision))
	}

	return opts, nil
}

func fromDirect(res *solver.Result) *Response {
	out := &Response{
		Method:      string(res.Method),
		N:           res.N,
		Steps:       res.Records(),
		Solution:    solution(res.Solution.Names, res.Solution.Vector.Strings()),
		Warnings:    nonNil(res.Warnings),
		Residual:    res.Residual,
		Approximate: res.Approximate,
	}
	if res.L != nil && res.U != nil {
		out.Factors = &Factors{L: res.L.Strings(), U: res.U.Strings()}
	}

	return out
}

func fromIterative(res *iterative.Result) *Response {
	vec := make([]string, len(res.Solution))
	for i, v := range res.Solution {
		vec[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	converged := res.Converged
	var rho *float64
	if res.SpectralRadiusKnown && !math.IsNaN(res.SpectralRadius) && !math.IsInf(res.SpectralRadius, 0) {
		v := res.SpectralRadius
		rho = &v
	}

	return &Response{
		Method:         string(res.Method),
		N:              res.N,
		Steps:          []trace.Record{},
		Solution:       solution(res.Names, vec),
		Warnings:       nonNil(res.Warnings),
		Iterations:     res.Table,
		Converged:      &converged,
		SpectralRadius: rho,
		Note:           res.Note,
	}
}

func solution(names, vec []string) Solution {
	vars := make(map[string]string, len(vec))
	for i, v := range vec {
		vars[names[i]] = v
	}

	return Solution{Variables: vars, Vector: vec}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
