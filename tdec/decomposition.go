package tdec

// Decomposition accumulates a {0,1} matrix one column at a time and reports,
// after each addition, whether the matrix seen so far is still graphic
// (spec.md §4.4's AddColumnCheck / AddColumnApply split). Internally it
// re-derives a realisation from scratch on every check rather than
// maintaining the member forest incrementally; see the package doc comment
// and DESIGN.md for why.
type Decomposition struct {
	numRows int
	columns [][]int
}

// New starts a decomposition over a matrix with the given number of rows.
func New(numRows int) *Decomposition {
	return &Decomposition{numRows: numRows}
}

// AddColumnCheck reports whether appending a column with 1s at the given
// rows would keep the matrix graphic, without committing the column.
func (d *Decomposition) AddColumnCheck(rows []int) (bool, error) {
	trial := append(append([][]int(nil), d.columns...), rows)
	ok, _, err := testGraphicColumns(d.numRows, trial)

	return ok, err
}

// AddColumnApply commits a column previously approved by AddColumnCheck.
// Callers that skip the check run the same risk as calling it with a
// rejected column: the decomposition silently stops being graphic.
func (d *Decomposition) AddColumnApply(rows []int) {
	d.columns = append(d.columns, append([]int(nil), rows...))
}

// Realize runs the full graphicness test over every column added so far and,
// on success, returns the realising graph.
func (d *Decomposition) Realize() (bool, *Realization, error) {
	return testGraphicColumns(d.numRows, d.columns)
}
