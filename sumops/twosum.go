package sumops

import "github.com/katalvlaran/seymour/ternary"

// TwoSumResult is the pair of children extracted by DecomposeTwoSum.
type TwoSumResult struct {
	A, B *ternary.Matrix
}

// ComposeTwoSum builds the 2-sum of a (m1 x n1) and b (m2 x n2): a's last
// row and b's first column are the distinguished bridge elements. The
// result is (m1-1+m2) x (n1+n2-1):
//
//	[ A'          0  ]
//	[ sign*col·rowᵀ  B' ]
//
// where A' is a without its last row, B' is b without its first column,
// row is a's last row (length n1) and col is b's first column (length m2).
func ComposeTwoSum(a, b *ternary.Matrix, sign int8) (*ternary.Matrix, error) {
	m1, n1 := a.NumRows(), a.NumCols()
	m2, n2 := b.NumRows(), b.NumCols()
	if m1 < 2 || n2 < 2 {
		return nil, ErrStructure
	}

	row := make([]int8, n1)
	cols, vals := a.RowNonzeros(m1 - 1)
	for k, c := range cols {
		row[c] = vals[k]
	}
	col := make([]int8, m2)
	bT := b.Transpose()
	rows0, vals0 := bT.RowNonzeros(0)
	for k, r := range rows0 {
		col[r] = vals0[k]
	}

	var triplets []ternary.Triplet
	// A' block: rows 0..m1-2 of a, all columns.
	for r := 0; r < m1-1; r++ {
		c, v := a.RowNonzeros(r)
		for k, col0 := range c {
			triplets = append(triplets, ternary.Triplet{Row: r, Col: col0, Value: v[k]})
		}
	}
	// B' block: rows 0..m2-1 of b, columns 1..n2-1, shifted into the
	// composite at row offset m1-1 and column offset n1-1.
	for r := 0; r < m2; r++ {
		c, v := b.RowNonzeros(r)
		for k, col0 := range c {
			if col0 == 0 {
				continue
			}
			triplets = append(triplets, ternary.Triplet{Row: m1 - 1 + r, Col: n1 - 1 + col0, Value: v[k]})
		}
	}
	// Cross block: sign * outer(col, row), at row offset m1-1.
	for i := 0; i < m2; i++ {
		if col[i] == 0 {
			continue
		}
		for j := 0; j < n1; j++ {
			if row[j] == 0 {
				continue
			}
			triplets = append(triplets, ternary.Triplet{Row: m1 - 1 + i, Col: j, Value: sign * col[i] * row[j]})
		}
	}

	return ternary.NewFromTriplets(m1-1+m2, n1+n2-1, triplets)
}

// DecomposeTwoSum is the inverse of ComposeTwoSum: given the composite and
// the row/column counts of the first child's shrunken block (splitRow =
// m1-1, splitCol = n1), it recovers A and B up to the sign/vector
// factorization ambiguity documented in doc.go — the cross block's
// generating vectors are normalized so the first nonzero row of the cross
// block fixes its own sign to +1, which the returned A/B reproduce exactly
// under ComposeTwoSum(A, B, 1).
func DecomposeTwoSum(m *ternary.Matrix, splitRow, splitCol int) (*TwoSumResult, error) {
	rows, cols := m.NumRows(), m.NumCols()
	if splitRow <= 0 || splitRow >= rows || splitCol <= 0 || splitCol >= cols {
		return nil, ErrStructure
	}

	dense := m.Dense()

	// Top-right block must be zero.
	for r := 0; r < splitRow; r++ {
		for c := splitCol; c < cols; c++ {
			if dense[r][c] != 0 {
				return nil, ErrStructure
			}
		}
	}

	// Find a nonzero row of the cross block to serve as the row generator.
	crossRows := rows - splitRow
	rowGen := make([]int8, splitCol)
	anchor := -1
	for i := 0; i < crossRows; i++ {
		nonzero := false
		for j := 0; j < splitCol; j++ {
			if dense[splitRow+i][j] != 0 {
				nonzero = true
				break
			}
		}
		if nonzero {
			anchor = i
			copy(rowGen, dense[splitRow+i][:splitCol])

			break
		}
	}
	if anchor == -1 {
		return nil, ErrStructure
	}

	colGen := make([]int8, crossRows)
	colGen[anchor] = 1
	anchorCol := -1
	for j := 0; j < splitCol; j++ {
		if rowGen[j] != 0 {
			anchorCol = j

			break
		}
	}
	for i := 0; i < crossRows; i++ {
		if i == anchor {
			continue
		}
		entry := dense[splitRow+i][anchorCol]
		if entry%rowGen[anchorCol] != 0 {
			return nil, ErrStructure
		}
		colGen[i] = entry / rowGen[anchorCol]
		for j := 0; j < splitCol; j++ {
			if dense[splitRow+i][j] != colGen[i]*rowGen[j] {
				return nil, ErrStructure
			}
		}
	}

	aTriplets := make([]ternary.Triplet, 0)
	for r := 0; r < splitRow; r++ {
		for c := 0; c < splitCol; c++ {
			if dense[r][c] != 0 {
				aTriplets = append(aTriplets, ternary.Triplet{Row: r, Col: c, Value: dense[r][c]})
			}
		}
	}
	for j := 0; j < splitCol; j++ {
		if rowGen[j] != 0 {
			aTriplets = append(aTriplets, ternary.Triplet{Row: splitRow, Col: j, Value: rowGen[j]})
		}
	}
	a, err := ternary.NewFromTriplets(splitRow+1, splitCol, aTriplets)
	if err != nil {
		return nil, err
	}

	bTriplets := make([]ternary.Triplet, 0)
	for i := 0; i < crossRows; i++ {
		if colGen[i] != 0 {
			bTriplets = append(bTriplets, ternary.Triplet{Row: i, Col: 0, Value: colGen[i]})
		}
	}
	for r := 0; r < crossRows; r++ {
		for c := splitCol; c < cols; c++ {
			if dense[splitRow+r][c] != 0 {
				bTriplets = append(bTriplets, ternary.Triplet{Row: r, Col: c - splitCol + 1, Value: dense[splitRow+r][c]})
			}
		}
	}
	b, err := ternary.NewFromTriplets(crossRows, cols-splitCol+1, bTriplets)
	if err != nil {
		return nil, err
	}

	return &TwoSumResult{A: a, B: b}, nil
}
