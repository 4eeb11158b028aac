// SPDX-License-Identifier: MIT

package solver

import "strconv"

var shortNames = [...]string{"x", "y", "z", "w"}

// VariableNames returns display names for n unknowns: x, y, z, w for n ≤ 4,
// otherwise x1 … xn. n ≤ 0 yields an empty slice.
func VariableNames(n int) []string {
	if n <= 0 {
		return []string{}
	}
	names := make([]string, n)
	if n <= len(shortNames) {
		copy(names, shortNames[:n])
		return names
	}
	for i := range names {
		names[i] = "x" + strconv.Itoa(i+1)
	}

	return names
}
