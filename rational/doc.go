// SPDX-License-Identifier: MIT

// Package rational provides Value, an immutable exact fraction used as the
// scalar type of every direct solver in linsys.
//
// What & Why:
//
//	Elimination-based methods are taught on small integer systems where the
//	interesting part is seeing 5/2 appear after the first row operation, not
//	2.4999999999. Value wraps math/big.Rat so numerator and denominator have
//	arbitrary precision and are always kept in lowest terms with a positive
//	denominator. Equality and ordering are exact.
//
// Semantics:
//
//   - The zero Value is 0 and is ready to use.
//   - Every arithmetic method returns a fresh Value; receivers are never mutated.
//   - Quo reports ErrDivisionByZero instead of panicking.
//   - String renders "n" for integers and "n/d" otherwise.
//
// Parsing:
//
//	Parse accepts integers ("3"), fractions ("-7/4"), decimals ("0.25") and
//	exponent forms ("1e-3"); all are converted exactly. FromFloat64 follows the
//	classical "limit denominator" policy (closest fraction with denominator
//	≤ 10⁶) so binary floating noise such as 0.1 maps back to 1/10.
//
// Complexity:
//
//	Arithmetic cost grows with the bit length of the operands; for the small
//	systems this library targets that is negligible.
package rational
