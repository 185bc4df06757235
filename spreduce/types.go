package spreduce

import "github.com/katalvlaran/seymour/ternary"

// Element names a row or column of the matrix a Result was computed from.
type Element struct {
	IsRow bool
	Index int
}

// Reduction records one eliminated row or column and, if any, the mate it
// was reduced against: the column a unit row's sole nonzero fell in, or the
// other row/column it duplicated (spec.md §4.5).
type Reduction struct {
	Element Element
	HasMate bool
	Mate    Element
}

// Outcome is the terminal classification of a series-parallel reduction.
type Outcome int

const (
	// OutcomeSeriesParallel means the whole matrix reduced away: it is
	// both graphic and cographic.
	OutcomeSeriesParallel Outcome = iota
	// OutcomeWheel means the residual contains a wheel (W_k) minor,
	// certified by Violator naming its rows and columns.
	OutcomeWheel
	// OutcomeTwoSeparation means the residual's row/column nonzero graph
	// has a cut vertex, certified by Separation.
	OutcomeTwoSeparation
)

// Separation describes a 2-separation of the residual matrix into two
// parts along a cut vertex of its row/column nonzero graph.
type Separation struct {
	RowsFirst, RowsSecond []int
	ColsFirst, ColsSecond []int
}

// Result is the outcome of running Reduce on a matrix.
type Result struct {
	Reductions   []Reduction
	Residual     *ternary.Matrix // nil when every row or every column was reduced away
	ResidualRows []int // residual row index -> original row index
	ResidualCols []int // residual column index -> original column index
	Outcome      Outcome
	Violator     *ternary.Submatrix // set for OutcomeWheel, and for a ternary 2x2 bad-determinant find
	BadDeterminant bool             // true if Violator is a 2x2 sign inconsistency, not a wheel
	Separation   *Separation
}
