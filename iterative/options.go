// SPDX-License-Identifier: MIT

package iterative

const (
	// DefaultTolerance is the convergence threshold on every per-variable error.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 100

	// DefaultPrecision is the number of decimals kept in the iteration table.
	DefaultPrecision = 6
)

const (
	panicToleranceInvalid     = "iterative: WithTolerance: tolerance must be > 0"
	panicMaxIterationsInvalid = "iterative: WithMaxIterations: cap must be >= 1"
	panicPrecisionInvalid     = "iterative: WithPrecision: decimals must be in [0, 15]"
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of a run.
type Options struct {
	tolerance     float64
	maxIterations int
	precision     int
}

// WithTolerance sets the convergence threshold. Panics when tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations sets the iteration cap. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithPrecision sets how many decimals the table rows keep. Iterates are
// never rounded; only their recorded copies are.
func WithPrecision(decimals int) Option {
	if decimals < 0 || decimals > 15 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = decimals }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		precision:     DefaultPrecision,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
