package sumops

import (
	"github.com/katalvlaran/seymour/onesum"
	"github.com/katalvlaran/seymour/ternary"
)

// ComposeOneSum stacks blocks block-diagonally: the result has
// sum(rows) x sum(cols) shape with each block occupying its own disjoint
// rows and columns and every cross-block entry zero.
func ComposeOneSum(blocks []*ternary.Matrix) (*ternary.Matrix, error) {
	var totalRows, totalCols int
	for _, b := range blocks {
		totalRows += b.NumRows()
		totalCols += b.NumCols()
	}

	var triplets []ternary.Triplet
	rowOffset, colOffset := 0, 0
	for _, b := range blocks {
		for r := 0; r < b.NumRows(); r++ {
			cols, vals := b.RowNonzeros(r)
			for k, c := range cols {
				triplets = append(triplets, ternary.Triplet{Row: rowOffset + r, Col: colOffset + c, Value: vals[k]})
			}
		}
		rowOffset += b.NumRows()
		colOffset += b.NumCols()
	}

	return ternary.NewFromTriplets(totalRows, totalCols, triplets)
}

// DecomposeOneSum splits m into its connected components, delegating to
// onesum.Split (spec.md §4.7 step 2 uses the same split to detect when a
// node should become a 1-sum).
func DecomposeOneSum(m *ternary.Matrix) []onesum.Component {
	return onesum.Split(m)
}
