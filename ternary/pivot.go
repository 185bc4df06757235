package ternary

// BinaryPivot performs a GF(2) pivot on M[r,c], which must equal 1. For each
// other row i with M[i,c]=1 and each other column j with M[r,j]=1, the entry
// M[i,j] is toggled mod 2; the pivot row (excluding c) and pivot column
// (excluding r) are complemented per the standard binary exchange rule.
func BinaryPivot(m *Matrix, r, c int) (*Matrix, error) {
	if r < 0 || r >= m.numRows || c < 0 || c >= m.numCols {
		return nil, ErrOutOfRange
	}
	pivotVal, _ := m.At(r, c)
	if pivotVal != 1 {
		return nil, ErrPivotZero
	}

	grid := m.Dense()
	for v := range grid {
		for w := range grid[v] {
			if grid[v][w] < 0 || grid[v][w] > 1 {
				return nil, ErrNotBinary
			}
		}
	}

	out := make([][]int8, m.numRows)
	for i := range out {
		out[i] = append([]int8(nil), grid[i]...)
	}

	for i := 0; i < m.numRows; i++ {
		if i == r || grid[i][c] != 1 {
			continue
		}
		for j := 0; j < m.numCols; j++ {
			if j == c || grid[r][j] != 1 {
				continue
			}
			out[i][j] ^= 1
		}
	}
	for j := 0; j < m.numCols; j++ {
		if j != c {
			out[r][j] = 1 - grid[r][j]
		}
	}
	for i := 0; i < m.numRows; i++ {
		if i != r {
			out[i][c] = 1 - grid[i][c]
		}
	}
	out[r][c] = 1

	return NewFromDense(out)
}

// TernaryPivot performs the ternary exchange pivot on M[r,c], which must be
// +1 or -1. It returns ErrBadEntry together with the 2x2 violator submatrix
// if the resulting entries leave {-1,0,1}.
func TernaryPivot(m *Matrix, r, c int) (*Matrix, *Submatrix, error) {
	if r < 0 || r >= m.numRows || c < 0 || c >= m.numCols {
		return nil, nil, ErrOutOfRange
	}
	pivotVal, _ := m.At(r, c)
	if pivotVal != 1 && pivotVal != -1 {
		return nil, nil, ErrPivotZero
	}

	grid := m.Dense()
	out := make([][]int8, m.numRows)
	for i := range out {
		out[i] = make([]int8, m.numCols)
	}

	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			var val int
			switch {
			case i == r && j == c:
				val = int(pivotVal)
			case i == r:
				val = -int(grid[r][j]) * int(pivotVal)
			case j == c:
				val = -int(grid[i][c]) * int(pivotVal)
			default:
				val = int(grid[i][j]) - int(grid[i][c])*int(grid[r][j])*int(pivotVal)
			}
			if val < -1 || val > 1 {
				sub, _ := NewSubmatrix(m.numRows, m.numCols, sortedPair(r, i), sortedPair(c, j))

				return nil, sub, ErrBadEntry
			}
			out[i][j] = int8(val)
		}
	}

	res, err := NewFromDense(out)

	return res, nil, err
}

func sortedPair(a, b int) []int {
	if a == b {
		return []int{a}
	}
	if a < b {
		return []int{a, b}
	}

	return []int{b, a}
}

// MultiPivot applies a sequence of ternary pivots in order. Rows/cols are
// expressed in terms of the current (post-previous-pivot) matrix indices; it
// aborts on the first pivot that would leave the ternary range, returning the
// step index and the violator submatrix.
func MultiPivot(m *Matrix, rows, cols []int) (*Matrix, int, *Submatrix, error) {
	if len(rows) != len(cols) {
		return nil, -1, nil, ErrDimensionMismatch
	}

	cur := m
	for step := range rows {
		next, violator, err := TernaryPivot(cur, rows[step], cols[step])
		if err != nil {
			return nil, step, violator, err
		}
		cur = next
	}

	return cur, -1, nil, nil
}
