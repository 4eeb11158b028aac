// Package solver_test provides benchmarks for the direct methods on
// diagonally dominant integer systems.
package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solver"
)

var benchSizes = []int{4, 8, 16}

var sinkR *solver.Result

// dominantSystem returns a deterministic strictly diagonally dominant
// symmetric system of size n.
func dominantSystem(b *testing.B, n int, seed int64) (*matrix.Dense, matrix.Vector) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Int63n(9) - 4
			rows[i][j], rows[j][i] = v, v
		}
	}
	for i := 0; i < n; i++ {
		rows[i][i] = int64(10 * n)
	}
	a, err := matrix.NewFromInts(rows)
	if err != nil {
		b.Fatal(err)
	}
	rhs := make([]int64, n)
	for i := range rhs {
		rhs[i] = rng.Int63n(21) - 10
	}

	return a, matrix.NewVectorFromInts(rhs...)
}

func BenchmarkDirect(b *testing.B) {
	b.ReportAllocs()
	methods := []solver.Method{solver.MethodGauss, solver.MethodGaussJordan, solver.MethodLU}
	for _, m := range methods {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", m, n), func(b *testing.B) {
				a, rhs := dominantSystem(b, n, 1337)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					res, err := solver.Solve(m, a, rhs)
					if err != nil {
						b.Fatal(err)
					}
					sinkR = res
				}
			})
		}
	}
}

func BenchmarkThomas(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			sub := make([]int64, n-1)
			sup := make([]int64, n-1)
			diag := make([]int64, n)
			rhs := make([]int64, n)
			for i := range diag {
				diag[i], rhs[i] = 4, int64(i%7)
			}
			for i := range sub {
				sub[i], sup[i] = 1, -1
			}
			s, d, u, r := matrix.NewVectorFromInts(sub...), matrix.NewVectorFromInts(diag...),
				matrix.NewVectorFromInts(sup...), matrix.NewVectorFromInts(rhs...)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := solver.Thomas(s, d, u, r)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}
