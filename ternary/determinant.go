package ternary

// Determinant computes the determinant of a square Matrix using fraction-free
// (Bareiss) Gaussian elimination, so every intermediate value stays an exact
// integer rather than accumulating floating-point error. Accumulators are
// int64; Bareiss' theorem bounds intermediate entries by the largest minor of
// the input, which for a matrix with ternary entries and at most m+n rows and
// columns never approaches int64 range in any realistic certificate
// submatrix, but the overflow is still detected and reported rather than
// silently wrapping.
func Determinant(m *Matrix) (int64, error) {
	if m.numRows != m.numCols {
		return 0, ErrNonSquare
	}
	n := m.numRows
	grid := m.Dense()

	a := make([][]int64, n)
	for i := range a {
		a[i] = make([]int64, n)
		for j := range a[i] {
			a[i][j] = int64(grid[i][j])
		}
	}

	var prevPivot int64 = 1
	sign := int64(1)
	for k := 0; k < n-1; k++ {
		if a[k][k] == 0 {
			swapped := false
			for i := k + 1; i < n; i++ {
				if a[i][k] != 0 {
					a[k], a[i] = a[i], a[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return 0, nil
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num, overflow := mulSub(a[i][j], a[k][k], a[i][k], a[k][j])
				if overflow {
					return 0, ErrOverflow
				}
				if prevPivot != 0 {
					if num%prevPivot != 0 {
						return 0, ErrOverflow
					}
					a[i][j] = num / prevPivot
				}
			}
		}
		prevPivot = a[k][k]
	}

	return sign * a[n-1][n-1], nil
}

// mulSub computes x*y - u*v, reporting whether either product overflowed a
// safe int64 range.
func mulSub(x, y, u, v int64) (int64, bool) {
	const limit = 1 << 31
	if abs64(x) > limit || abs64(y) > limit || abs64(u) > limit || abs64(v) > limit {
		return 0, true
	}

	return x*y - u*v, false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
