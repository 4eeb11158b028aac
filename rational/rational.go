// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultMaxDenominator is the bound FromFloat64 uses when snapping a binary
// float to its closest simple fraction.
const DefaultMaxDenominator = 1_000_000

// Value is an immutable exact fraction. The zero Value equals 0.
type Value struct {
	r *big.Rat // nil means 0; never mutated after construction
}

// Common constants.
var (
	zero = Value{}
	one  = FromInt(1)
)

// Zero returns 0.
func Zero() Value { return zero }

// One returns 1.
func One() Value { return one }

// FromInt returns the integer n as a Value.
// Complexity: O(1).
func FromInt(n int64) Value {
	return Value{r: new(big.Rat).SetInt64(n)}
}

// New returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero when den == 0.
func New(num, den int64) (Value, error) {
	if den == 0 {
		return zero, fmt.Errorf("New(%d, %d): %w", num, den, ErrDivisionByZero)
	}

	return Value{r: big.NewRat(num, den)}, nil
}

// MustNew is New for constant inputs in tests and examples; it panics on a
// zero denominator.
func MustNew(num, den int64) Value {
	v, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return v
}

// FromBig returns a Value holding a copy of r. A nil r yields 0.
func FromBig(r *big.Rat) Value {
	if r == nil {
		return zero
	}

	return Value{r: new(big.Rat).Set(r)}
}

// FromFloat64 converts f to the closest fraction whose denominator does not
// exceed DefaultMaxDenominator.
//
// Behavior highlights:
//   - 0.1 → 1/10, 0.5 → 1/2, 3.0 → 3.
//   - Values that already have a small binary denominator are exact.
//
// Errors:
//   - ErrNotFinite for NaN and ±Inf.
func FromFloat64(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return zero, fmt.Errorf("FromFloat64(%v): %w", f, ErrNotFinite)
	}
	exact := Value{r: new(big.Rat).SetFloat64(f)}

	return exact.LimitDenominator(DefaultMaxDenominator)
}

// Parse reads an integer, fraction, decimal or exponent literal exactly.
// Surrounding whitespace is ignored.
func Parse(s string) (Value, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if num, den, ok := strings.Cut(t, "/"); ok {
		d, okDen := new(big.Rat).SetString(strings.TrimSpace(den))
		if !okDen {
			return zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
		if d.Sign() == 0 {
			return zero, fmt.Errorf("Parse(%q): %w", s, ErrDivisionByZero)
		}
		n, okNum := new(big.Rat).SetString(strings.TrimSpace(num))
		if !okNum {
			return zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}

		return Value{r: n.Quo(n, d)}, nil
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return zero, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return Value{r: r}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// rat returns the underlying value for read-only use.
func (v Value) rat() *big.Rat {
	if v.r == nil {
		return new(big.Rat)
	}

	return v.r
}

// Rat returns a copy of v as *big.Rat.
func (v Value) Rat() *big.Rat { return new(big.Rat).Set(v.rat()) }

// Num returns a copy of the numerator (sign carried here).
func (v Value) Num() *big.Int { return new(big.Int).Set(v.rat().Num()) }

// Denom returns a copy of the denominator; always > 0.
func (v Value) Denom() *big.Int { return new(big.Int).Set(v.rat().Denom()) }

// Add returns v + w.
func (v Value) Add(w Value) Value { return Value{r: new(big.Rat).Add(v.rat(), w.rat())} }

// Sub returns v − w.
func (v Value) Sub(w Value) Value { return Value{r: new(big.Rat).Sub(v.rat(), w.rat())} }

// Mul returns v × w.
func (v Value) Mul(w Value) Value { return Value{r: new(big.Rat).Mul(v.rat(), w.rat())} }

// Quo returns v / w, or ErrDivisionByZero when w is 0.
func (v Value) Quo(w Value) (Value, error) {
	if w.IsZero() {
		return zero, fmt.Errorf("Quo(%s, 0): %w", v, ErrDivisionByZero)
	}

	return Value{r: new(big.Rat).Quo(v.rat(), w.rat())}, nil
}

// Neg returns −v.
func (v Value) Neg() Value { return Value{r: new(big.Rat).Neg(v.rat())} }

// Abs returns |v|.
func (v Value) Abs() Value { return Value{r: new(big.Rat).Abs(v.rat())} }

// Sign returns -1, 0 or +1.
func (v Value) Sign() int { return v.rat().Sign() }

// IsZero reports whether v == 0 exactly.
func (v Value) IsZero() bool { return v.Sign() == 0 }

// IsInt reports whether the denominator is 1.
func (v Value) IsInt() bool { return v.rat().IsInt() }

// Cmp compares v and w: -1 if v < w, 0 if equal, +1 if v > w.
func (v Value) Cmp(w Value) int { return v.rat().Cmp(w.rat()) }

// CmpAbs compares |v| and |w|.
func (v Value) CmpAbs(w Value) int { return v.Abs().Cmp(w.Abs()) }

// Equal reports exact equality.
func (v Value) Equal(w Value) bool { return v.Cmp(w) == 0 }

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	f, _ := v.rat().Float64()

	return f
}

// String renders v canonically: "n" when integral, otherwise "n/d".
func (v Value) String() string {
	r := v.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.Num().String() + "/" + r.Denom().String()
}

// Decimal renders v with prec digits after the decimal point (rounded).
func (v Value) Decimal(prec int) string { return v.rat().FloatString(prec) }

// Sum returns the exact sum of vs.
func Sum(vs ...Value) Value {
	acc := new(big.Rat)
	for _, x := range vs {
		acc.Add(acc, x.rat())
	}

	return Value{r: acc}
}
