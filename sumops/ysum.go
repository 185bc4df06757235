package sumops

import "github.com/katalvlaran/seymour/ternary"

// YSumResult is the pair of children extracted by DecomposeYSum.
type YSumResult struct {
	A, B *ternary.Matrix
}

// ComposeYSum builds the Y-sum of a and b. spec.md §4.8 describes Y-sum as
// the dual of Δ-sum: where Δ-sum's bridge is generated by a's last two
// ROWS and b's first two COLUMNS, Y-sum's bridge is generated by a's last
// two COLUMNS and b's first two ROWS. That is exactly ComposeDeltaSum
// applied to the transposed, role-swapped inputs and transposed back, so
// this package builds Y-sum on top of Δ-sum's machinery instead of
// duplicating it.
func ComposeYSum(a, b *ternary.Matrix) (*ternary.Matrix, error) {
	composite, err := composeLowRank(a.Transpose(), b.Transpose(), 2)
	if err != nil {
		return nil, err
	}

	return composite.Transpose(), nil
}

// DecomposeYSum is the inverse of ComposeYSum. aRows and aCols are a's full
// row and column counts (including its two generator columns); internally
// this transposes m and delegates to decomposeLowRank with the matching
// Δ-sum-space coordinates (aCols-2, aRows), then transposes the recovered
// children back.
func DecomposeYSum(m *ternary.Matrix, aRows, aCols int) (*YSumResult, error) {
	res, err := decomposeLowRank(m.Transpose(), aCols-2, aRows, 2)
	if err != nil {
		return nil, err
	}

	return &YSumResult{A: res.A.Transpose(), B: res.B.Transpose()}, nil
}
