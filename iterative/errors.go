// SPDX-License-Identifier: MIT

package iterative

import (
	"errors"
	"fmt"
)

// ErrZeroDiagonal is returned when A has a zero on its diagonal; neither
// method can divide by it.
var ErrZeroDiagonal = errors.New("iterative: zero on the diagonal")

const (
	opJacobi      = "Jacobi"
	opGaussSeidel = "GaussSeidel"
)

func iterativeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
