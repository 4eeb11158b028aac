package solver_test

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

// ExampleGauss solves a 2×2 system and prints the trace.
func ExampleGauss() {
	a, _ := matrix.NewFromInts([][]int64{{2, 1}, {1, 3}})
	b := matrix.NewVectorFromInts(4, 7)

	res, err := solver.Gauss(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Text())
	fmt.Println(res.Solution)
	fmt.Println("residual:", res.Residual)
	// Output:
	// Step 1: R2 ← R2 - 1/2·R1
	// Augmented matrix now: [[2, 1, 4],
	//  [0, 5/2, 5]]
	// Step 2: x[2]
	// Back substitution: x[2] = (5 - 0) / 5/2 = 2
	// Step 3: x[1]
	// Back substitution: x[1] = (4 - 2) / 2 = 1
	// x = 1, y = 2
	// residual: 0
}

// ExampleThomas runs the tridiagonal sweep.
func ExampleThomas() {
	ones := matrix.NewVectorFromInts(1, 1, 1)
	res, _ := solver.Thomas(ones, matrix.NewVectorFromInts(4, 4, 4, 4), ones, matrix.NewVectorFromInts(5, 6, 6, 5))
	fmt.Println(res.Solution)
	// Output: x = 1, y = 1, z = 1, w = 1
}

// ExampleLU shows that LU refuses a singular matrix.
func ExampleLU() {
	a, _ := matrix.NewFromInts([][]int64{{1, 2}, {2, 4}})
	_, err := solver.LU(a, matrix.NewVectorFromInts(3, 6))
	fmt.Println(err)
	// Output: LU: zero pivot U[2][2]: solver: singular matrix
}
