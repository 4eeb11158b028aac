// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/predrag3141/IPSLQ/bignumber"

	"github.com/katalvlaran/linsys/rational"
)

const (
	// bigNumberPrecision is the binary precision handed to bignumber.Init.
	bigNumberPrecision = 1500

	// sqrtInputDigits is the number of decimals used to hand a rational
	// radicand to bignumber.
	sqrtInputDigits = 80
)

var (
	bigNumberOnce sync.Once
	bigNumberErr  error
)

// initBigNumber configures the bignumber package exactly once per process.
func initBigNumber() error {
	bigNumberOnce.Do(func() {
		bigNumberErr = bignumber.Init(bigNumberPrecision)
	})

	return bigNumberErr
}

// sqrtRational returns √r for r > 0.
//
// When numerator and denominator are both perfect squares the root is exact
// and exact is true. Otherwise the root is computed with bignumber at high
// precision and rounded to the closest fraction whose denominator does not
// exceed maxDen.
func sqrtRational(r rational.Value, maxDen int64) (root rational.Value, exact bool, err error) {
	if r.Sign() <= 0 {
		return rational.Zero(), false, fmt.Errorf("sqrt of %s: %w", r, ErrNotPositiveDefinite)
	}
	if v, ok := exactSqrt(r); ok {
		return v, true, nil
	}

	if err = initBigNumber(); err != nil {
		return rational.Zero(), false, fmt.Errorf("bignumber init: %w", err)
	}
	x, err := bignumber.NewFromDecimalString(r.Decimal(sqrtInputDigits))
	if err != nil {
		return rational.Zero(), false, fmt.Errorf("sqrt of %s: %w", r, err)
	}
	s, err := bignumber.NewFromInt64(0).Sqrt(x)
	if err != nil {
		return rational.Zero(), false, fmt.Errorf("sqrt of %s: %w", r, err)
	}
	q, _ := s.AsFloat().Rat(nil)
	if q == nil {
		return rational.Zero(), false, fmt.Errorf("sqrt of %s: %w", r, rational.ErrNotFinite)
	}
	root, err = rational.FromBig(q).LimitDenominator(maxDen)
	if err != nil {
		return rational.Zero(), false, fmt.Errorf("sqrt of %s: %w", r, err)
	}

	return root, false, nil
}

// exactSqrt returns √r when r = p²/q² for integers p, q.
func exactSqrt(r rational.Value) (rational.Value, bool) {
	num, den := r.Num(), r.Denom()
	p := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(p, p).Cmp(num) != 0 {
		return rational.Zero(), false
	}
	q := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(q, q).Cmp(den) != 0 {
		return rational.Zero(), false
	}

	return rational.FromBig(new(big.Rat).SetFrac(p, q)), true
}
