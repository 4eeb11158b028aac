// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the direct methods.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: constructors panic only on nonsensical values.
package solver

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivoting enables partial pivoting in Gauss and GaussJordan.
	DefaultPivoting = true

	// DefaultSqrtDenominator bounds the denominator of the rational
	// approximation of an irrational square root in Cholesky.
	DefaultSqrtDenominator int64 = 1_000_000_000_000
)

const panicSqrtDenominatorInvalid = "solver: WithSqrtDenominator: bound must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivoting        bool  // DefaultPivoting
	sqrtDenominator int64 // DefaultSqrtDenominator
}

// WithPivoting turns partial pivoting on or off (Gauss, GaussJordan only).
func WithPivoting(on bool) Option {
	return func(o *Options) { o.pivoting = on }
}

// WithSqrtDenominator sets the largest denominator Cholesky may use when
// approximating an irrational square root. Larger bounds give closer
// approximations and longer fractions in the trace.
//
// Panics when maxDen < 1.
func WithSqrtDenominator(maxDen int64) Option {
	if maxDen < 1 {
		panic(panicSqrtDenominatorInvalid)
	}

	return func(o *Options) { o.sqrtDenominator = maxDen }
}

// gatherOptions applies user setters over the defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivoting:        DefaultPivoting,
		sqrtDenominator: DefaultSqrtDenominator,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
