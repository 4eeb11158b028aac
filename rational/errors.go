// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrDivisionByZero is returned by Quo and New when the divisor or
	// denominator is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax indicates that a textual value could not be parsed as a number.
	ErrSyntax = errors.New("rational: invalid number syntax")

	// ErrNotFinite is returned by FromFloat64 for NaN and ±Inf inputs.
	ErrNotFinite = errors.New("rational: NaN or Inf has no rational value")

	// ErrNegativeBound signals a non-positive denominator bound passed to
	// LimitDenominator.
	ErrNegativeBound = errors.New("rational: denominator bound must be > 0")
)
