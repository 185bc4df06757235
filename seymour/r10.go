package seymour

import "github.com/katalvlaran/seymour/ternary"

// r10Pattern is the binary support of the 5x5 R10 matrix from spec.md §9's
// worked example 3.
var r10Pattern = [5][5]int8{
	{1, 0, 0, 1, 1},
	{1, 1, 0, 0, 1},
	{0, 1, 1, 0, 1},
	{0, 0, 1, 1, 1},
	{1, 1, 1, 1, 1},
}

// isR10 reports whether m's binary support is isomorphic to r10Pattern
// under some row and column permutation. R10 has exactly 17 nonzeros in a
// 5x5 matrix, small enough that a brute-force search over both
// permutation groups (120 x 120) is cheap and exact rather than an
// approximate structural heuristic.
func isR10(m *ternary.Matrix) bool {
	if m.NumRows() != 5 || m.NumCols() != 5 {
		return false
	}

	support := [5][5]int8{}
	dense := m.Dense()
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if dense[i][j] != 0 {
				support[i][j] = 1
			}
		}
	}

	rowPerms := permutations(5)
	colPerms := rowPerms
	for _, rp := range rowPerms {
		for _, cp := range colPerms {
			if matchesPattern(support, rp, cp) {
				return true
			}
		}
	}

	return false
}

func matchesPattern(support [5][5]int8, rp, cp []int) bool {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if support[rp[i]][cp[j]] != r10Pattern[i][j] {
				return false
			}
		}
	}

	return true
}

// permutations returns every permutation of [0, n).
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			out = append(out, append([]int(nil), idx...))

			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)

	return out
}
