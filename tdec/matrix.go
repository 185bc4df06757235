package tdec

import "github.com/katalvlaran/seymour/ternary"

// TestGraphicMatrix adapts TestGraphic to ternary.Matrix, the representation
// used everywhere else in this module. m must be binary ({0,1} entries);
// ErrNotBinary is returned otherwise.
func TestGraphicMatrix(m *ternary.Matrix) (bool, *Realization, error) {
	if !m.IsBinary() {
		return false, nil, ErrNotBinary
	}

	dense := m.Dense()
	isOne := func(row, col int) bool { return dense[row][col] != 0 }

	return TestGraphic(len(dense), m.NumCols(), isOne)
}
