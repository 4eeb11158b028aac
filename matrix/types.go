// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the exported data types; constructors live in
// dense.go / vector.go, validation in validators.go, display in format.go.
package matrix

import "github.com/katalvlaran/linsys/rational"

// Vector is an ordered sequence of exact values (a column vector by
// convention). Vectors are plain slices; use Clone before mutating a vector
// you did not allocate.
type Vector []rational.Value

// Dense is a row-major matrix of rational values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The shape is fixed at construction.
type Dense struct {
	r, c int              // number of rows and columns
	data []rational.Value // flat backing storage, length == r*c
}
