// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// LimitDenominator returns the fraction closest to v whose denominator is at
// most maxDen.
//
// Implementation:
//   - Stage 1: if v's denominator already fits, return v unchanged.
//   - Stage 2: walk the continued-fraction convergents p/q of v until the next
//     denominator would exceed maxDen.
//   - Stage 3: compare the last convergent with the best semiconvergent and
//     return the closer one (the convergent wins ties).
//
// Errors:
//   - ErrNegativeBound when maxDen < 1.
//
// Complexity:
//   - O(log maxDen) big-integer steps.
func (v Value) LimitDenominator(maxDen int64) (Value, error) {
	if maxDen < 1 {
		return zero, fmt.Errorf("LimitDenominator(%d): %w", maxDen, ErrNegativeBound)
	}
	limit := big.NewInt(maxDen)
	r := v.rat()
	if r.Denom().Cmp(limit) <= 0 {
		return v, nil
	}

	var (
		p0, q0 = big.NewInt(0), big.NewInt(1)
		p1, q1 = big.NewInt(1), big.NewInt(0)
		n      = new(big.Int).Set(r.Num())
		d      = new(big.Int).Set(r.Denom())
		a, q2  = new(big.Int), new(big.Int)
		tmp    = new(big.Int)
	)
	for d.Sign() != 0 {
		a.Div(n, d) // floor for d > 0
		q2.Mul(a, q1).Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}
		// (p0, q0, p1, q1) = (p1, q1, p0 + a*p1, q2)
		tmp.Mul(a, p1).Add(tmp, p0)
		p0.Set(p1)
		q0.Set(q1)
		p1.Set(tmp)
		q1.Set(q2)
		// (n, d) = (d, n - a*d)
		tmp.Mul(a, d)
		tmp.Sub(n, tmp)
		n.Set(d)
		d.Set(tmp)
	}

	// k = (maxDen - q0) / q1
	k := new(big.Int).Sub(limit, q0)
	k.Div(k, q1)

	semiNum := new(big.Int).Mul(k, p1)
	semiNum.Add(semiNum, p0)
	semiDen := new(big.Int).Mul(k, q1)
	semiDen.Add(semiDen, q0)
	semi := new(big.Rat).SetFrac(semiNum, semiDen)
	conv := new(big.Rat).SetFrac(p1, q1)

	distSemi := new(big.Rat).Sub(semi, r)
	distSemi.Abs(distSemi)
	distConv := new(big.Rat).Sub(conv, r)
	distConv.Abs(distConv)
	if distConv.Cmp(distSemi) <= 0 {
		return Value{r: conv}, nil
	}

	return Value{r: semi}, nil
}
