package solver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/solver"
)

func TestSolve_RepeatableOnSameInput(t *testing.T) {
	pivoted := dense(t, [][]int64{{1, 1, 1}, {-3, 1, 2}, {3, 2, 1}})
	lu := dense(t, [][]int64{{4, 3}, {6, 3}})

	cases := []struct {
		name  string
		solve func() (*solver.Result, error)
	}{
		{"gauss", func() (*solver.Result, error) { return solver.Gauss(pivoted, vec(3, 0, 6)) }},
		{"lu", func() (*solver.Result, error) { return solver.LU(lu, vec(10, 12)) }},
		{"thomas", func() (*solver.Result, error) {
			return solver.Thomas(vec(1, 1, 1), vec(4, 4, 4, 4), vec(1, 1, 1), vec(5, 6, 6, 5))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := tc.solve()
			require.NoError(t, err)
			second, err := tc.solve()
			require.NoError(t, err)

			require.Equal(t, first.Solution.Vector.Strings(), second.Solution.Vector.Strings())
			require.Equal(t, first.Solution.Names, second.Solution.Names)

			// records hold big.Rat values, so compare their wire form
			a, err := json.Marshal(first.Records())
			require.NoError(t, err)
			b, err := json.Marshal(second.Records())
			require.NoError(t, err)
			require.JSONEq(t, string(a), string(b))
			require.Equal(t, first.Text(), second.Text())
		})
	}
}
