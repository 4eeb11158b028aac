package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsys/rational"
)

// NewVectorFromInts converts integers to an exact Vector.
func NewVectorFromInts(xs ...int64) Vector {
	out := make(Vector, len(xs))
	for i, x := range xs {
		out[i] = rational.FromInt(x)
	}

	return out
}

// NewVectorFromFloats snaps each float to its closest simple fraction.
// Returns ErrNotFinite for NaN/±Inf entries.
func NewVectorFromFloats(xs []float64) (Vector, error) {
	out := make(Vector, len(xs))
	var err error
	for i, x := range xs {
		if out[i], err = rational.FromFloat64(x); err != nil {
			return nil, fmt.Errorf("NewVectorFromFloats(%d): %w", i, ErrNotFinite)
		}
	}

	return out, nil
}

// Zeros returns a length-n zero Vector.
func Zeros(n int) Vector { return make(Vector, n) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports exact element-wise equality.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !v[i].Equal(w[i]) {
			return false
		}
	}

	return true
}

// Float64s returns the nearest float64 of every entry.
func (v Vector) Float64s() []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x.Float64()
	}

	return out
}

// Dot returns Σ v[i]·w[i]. Returns ErrDimensionMismatch for different lengths.
func (v Vector) Dot(w Vector) (rational.Value, error) {
	if len(v) != len(w) {
		return rational.Zero(), fmt.Errorf("Vector.Dot: %d vs %d: %w", len(v), len(w), ErrDimensionMismatch)
	}
	acc := rational.Zero()
	for i := range v {
		acc = acc.Add(v[i].Mul(w[i]))
	}

	return acc, nil
}
