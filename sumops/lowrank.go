package sumops

import "github.com/katalvlaran/seymour/ternary"

// composeLowRank builds the rank-k generalization of ComposeTwoSum: a's last
// k rows and b's first k columns are the generating vectors of a rank-k
// cross block Σ_t colGen[t] ⊗ rowGen[t], rather than a single rank-1 term.
// Δ-sum (k=2) and 3-sum (k=3) are both instances of this shape; only the
// value of k and the semantics attached to it by the caller differ.
func composeLowRank(a, b *ternary.Matrix, k int) (*ternary.Matrix, error) {
	m1, n1 := a.NumRows(), a.NumCols()
	m2, n2 := b.NumRows(), b.NumCols()
	if m1 <= k || n2 <= k {
		return nil, ErrStructure
	}

	rowGen := make([][]int8, k)
	for t := 0; t < k; t++ {
		rowGen[t] = make([]int8, n1)
		cols, vals := a.RowNonzeros(m1 - k + t)
		for idx, c := range cols {
			rowGen[t][c] = vals[idx]
		}
	}
	colGen := make([][]int8, k)
	bT := b.Transpose()
	for t := 0; t < k; t++ {
		colGen[t] = make([]int8, m2)
		rows, vals := bT.RowNonzeros(t)
		for idx, r := range rows {
			colGen[t][r] = vals[idx]
		}
	}

	var triplets []ternary.Triplet
	for r := 0; r < m1-k; r++ {
		cols, vals := a.RowNonzeros(r)
		for idx, c := range cols {
			triplets = append(triplets, ternary.Triplet{Row: r, Col: c, Value: vals[idx]})
		}
	}
	for r := 0; r < m2; r++ {
		cols, vals := b.RowNonzeros(r)
		for idx, c := range cols {
			if c < k {
				continue
			}
			triplets = append(triplets, ternary.Triplet{Row: m1 - k + r, Col: n1 + c - k, Value: vals[idx]})
		}
	}
	for i := 0; i < m2; i++ {
		for j := 0; j < n1; j++ {
			var sum int8
			for t := 0; t < k; t++ {
				sum += colGen[t][i] * rowGen[t][j]
			}
			if sum != 0 {
				triplets = append(triplets, ternary.Triplet{Row: m1 - k + i, Col: j, Value: sum})
			}
		}
	}

	return ternary.NewFromTriplets(m1-k+m2, n1+n2-k, triplets)
}

// lowRankResult is the pair of children extracted by decomposeLowRank.
type lowRankResult struct {
	A, B *ternary.Matrix
}

// decomposeLowRank is the inverse of composeLowRank. The cross block's top-
// left k x k submatrix K must have determinant ±1 (the "each square
// determinant well-defined" requirement spec.md §4.8 states for Δ-sum and
// 3-sum); given that, the k row generators are recovered in closed form as
// invK * cross (K's inverse is exact because det(K) = ±1 keeps the adjugate
// integral), and the k column generators are the cross block's first k
// columns. Derivation: the cross block is C·R (C the column generators, R
// the row generators), so its first k columns are C·R_k and K = C_k·R_k,
// where R_k is R's first k columns and C_k is C's first k rows; then
// (C·R_k)·invK·(C_k·R) = C·R, and the recovered generators equal the
// composer's inputs exactly when R_k is the identity.
func decomposeLowRank(m *ternary.Matrix, splitRow, splitCol, k int) (*lowRankResult, error) {
	rows, cols := m.NumRows(), m.NumCols()
	if splitRow <= 0 || splitRow >= rows || splitCol < k || splitCol >= cols {
		return nil, ErrStructure
	}
	crossRows := rows - splitRow
	if crossRows < k {
		return nil, ErrStructure
	}

	dense := m.Dense()
	for r := 0; r < splitRow; r++ {
		for c := splitCol; c < cols; c++ {
			if dense[r][c] != 0 {
				return nil, ErrStructure
			}
		}
	}

	kMat := make([][]int64, k)
	for i := 0; i < k; i++ {
		kMat[i] = make([]int64, k)
		for t := 0; t < k; t++ {
			kMat[i][t] = int64(dense[splitRow+i][t])
		}
	}
	det := intDet(kMat)
	if det != 1 && det != -1 {
		return nil, ErrStructure
	}
	adj := intAdjugate(kMat)
	invK := make([][]int64, k)
	for t := 0; t < k; t++ {
		invK[t] = make([]int64, k)
		for i := 0; i < k; i++ {
			invK[t][i] = adj[t][i] * det
		}
	}

	rowGen := make([][]int8, k)
	for t := 0; t < k; t++ {
		rowGen[t] = make([]int8, splitCol)
		for j := 0; j < splitCol; j++ {
			var sum int64
			for i := 0; i < k; i++ {
				sum += invK[t][i] * int64(dense[splitRow+i][j])
			}
			rowGen[t][j] = int8(sum)
		}
	}

	colGen := make([][]int8, k)
	for t := 0; t < k; t++ {
		colGen[t] = make([]int8, crossRows)
		for i := 0; i < crossRows; i++ {
			colGen[t][i] = dense[splitRow+i][t]
		}
	}

	for i := 0; i < crossRows; i++ {
		for j := 0; j < splitCol; j++ {
			var sum int8
			for t := 0; t < k; t++ {
				sum += colGen[t][i] * rowGen[t][j]
			}
			if sum != dense[splitRow+i][j] {
				return nil, ErrStructure
			}
		}
	}

	var aTriplets []ternary.Triplet
	for r := 0; r < splitRow; r++ {
		for c := 0; c < splitCol; c++ {
			if dense[r][c] != 0 {
				aTriplets = append(aTriplets, ternary.Triplet{Row: r, Col: c, Value: dense[r][c]})
			}
		}
	}
	for t := 0; t < k; t++ {
		for j := 0; j < splitCol; j++ {
			if rowGen[t][j] != 0 {
				aTriplets = append(aTriplets, ternary.Triplet{Row: splitRow + t, Col: j, Value: rowGen[t][j]})
			}
		}
	}
	a, err := ternary.NewFromTriplets(splitRow+k, splitCol, aTriplets)
	if err != nil {
		return nil, err
	}

	var bTriplets []ternary.Triplet
	for t := 0; t < k; t++ {
		for i := 0; i < crossRows; i++ {
			if colGen[t][i] != 0 {
				bTriplets = append(bTriplets, ternary.Triplet{Row: i, Col: t, Value: colGen[t][i]})
			}
		}
	}
	for r := 0; r < crossRows; r++ {
		for c := splitCol; c < cols; c++ {
			if dense[splitRow+r][c] != 0 {
				bTriplets = append(bTriplets, ternary.Triplet{Row: r, Col: c - splitCol + k, Value: dense[splitRow+r][c]})
			}
		}
	}
	b, err := ternary.NewFromTriplets(crossRows, cols-splitCol+k, bTriplets)
	if err != nil {
		return nil, err
	}

	return &lowRankResult{A: a, B: b}, nil
}

// intDet computes the determinant of a small (k<=3 in this package's use)
// integer matrix via recursive cofactor expansion along the first row.
func intDet(a [][]int64) int64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	var det int64
	sign := int64(1)
	for col := 0; col < n; col++ {
		det += sign * a[0][col] * intDet(minor(a, 0, col))
		sign = -sign
	}

	return det
}

// intAdjugate returns the transpose of the cofactor matrix of a, such that
// a * adjugate = det(a) * I.
func intAdjugate(a [][]int64) [][]int64 {
	n := len(a)
	adj := make([][]int64, n)
	for i := range adj {
		adj[i] = make([]int64, n)
	}
	if n == 1 {
		adj[0][0] = 1

		return adj
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sign := int64(1)
			if (i+j)%2 != 0 {
				sign = -1
			}
			cof := sign * intDet(minor(a, i, j))
			adj[j][i] = cof // transpose: cofactor(i,j) goes to adj[j][i]
		}
	}

	return adj
}

func minor(a [][]int64, skipRow, skipCol int) [][]int64 {
	n := len(a)
	m := make([][]int64, 0, n-1)
	for i := 0; i < n; i++ {
		if i == skipRow {
			continue
		}
		row := make([]int64, 0, n-1)
		for j := 0; j < n; j++ {
			if j == skipCol {
				continue
			}
			row = append(row, a[i][j])
		}
		m = append(m, row)
	}

	return m
}
