package ternary

// Submatrix is an ordered pair of strictly increasing index sequences into a
// host Matrix: the rows and columns selected from the host.
type Submatrix struct {
	Rows []int
	Cols []int
}

func strictlyIncreasing(idx []int, bound int) error {
	for i, v := range idx {
		if v < 0 || v >= bound {
			return ErrOutOfRange
		}
		if i > 0 && idx[i-1] >= v {
			return ErrUnsortedIndices
		}
	}

	return nil
}

// NewSubmatrix validates rows/cols against a host of the given shape.
func NewSubmatrix(hostRows, hostCols int, rows, cols []int) (*Submatrix, error) {
	if err := strictlyIncreasing(rows, hostRows); err != nil {
		return nil, err
	}
	if err := strictlyIncreasing(cols, hostCols); err != nil {
		return nil, err
	}

	return &Submatrix{Rows: rows, Cols: cols}, nil
}

// Filter materialises the explicit submatrix described by sub from host.
func Filter(host *Matrix, sub *Submatrix) (*Matrix, error) {
	if err := strictlyIncreasing(sub.Rows, host.numRows); err != nil {
		return nil, err
	}
	if err := strictlyIncreasing(sub.Cols, host.numCols); err != nil {
		return nil, err
	}

	colPos := make(map[int]int, len(sub.Cols))
	for i, c := range sub.Cols {
		colPos[c] = i
	}

	var triplets []Triplet
	for newRow, r := range sub.Rows {
		cols, vals := host.RowNonzeros(r)
		for i, c := range cols {
			if newCol, ok := colPos[c]; ok {
				triplets = append(triplets, Triplet{newRow, newCol, vals[i]})
			}
		}
	}

	return NewFromTriplets(len(sub.Rows), len(sub.Cols), triplets)
}

// Permute applies bijections rowPerm/colPerm (newIndex -> oldIndex) to m,
// returning the matrix with M'[i,j] = M[rowPerm[i], colPerm[j]].
func Permute(m *Matrix, rowPerm, colPerm []int) (*Matrix, error) {
	if len(rowPerm) != m.numRows || len(colPerm) != m.numCols {
		return nil, ErrDimensionMismatch
	}

	colPos := make(map[int]int, len(colPerm))
	for newCol, oldCol := range colPerm {
		colPos[oldCol] = newCol
	}

	var triplets []Triplet
	for newRow, oldRow := range rowPerm {
		if oldRow < 0 || oldRow >= m.numRows {
			return nil, ErrOutOfRange
		}
		cols, vals := m.RowNonzeros(oldRow)
		for i, c := range cols {
			newCol, ok := colPos[c]
			if !ok {
				return nil, ErrDimensionMismatch
			}
			triplets = append(triplets, Triplet{newRow, newCol, vals[i]})
		}
	}

	return NewFromTriplets(m.numRows, m.numCols, triplets)
}
