package nestedminor

import "github.com/katalvlaran/seymour/ternary"

// SeparationType distinguishes the two shapes a simple 3-separation can take.
type SeparationType int

const (
	// DistributedRanks: a 2x2 block {row1,row2}x{col1,col2} where row1 and
	// col1 each have exactly 2 nonzeros overall.
	DistributedRanks SeparationType = iota
	// ConcentratedRank: one row with 2 nonzeros whose columns become
	// duplicates of a third column once one entry is zeroed out.
	ConcentratedRank
)

// Separation is a simple 3-separation of a matrix into a small "first" part
// (2 rows and 2 columns, or 1 row and 3 columns) and everything else.
type Separation struct {
	Type                  SeparationType
	RowsFirst, RowsSecond []int
	ColsFirst, ColsSecond []int
}

// Result is the outcome of searching a matrix for a simple 3-separation.
type Result struct {
	Found     bool
	Separation *Separation
	// Violator is set when the candidate block is ternary-inconsistent:
	// a 2x2 bad-determinant certificate rather than a usable separation.
	Violator *ternary.Submatrix
}
