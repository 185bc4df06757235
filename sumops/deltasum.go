package sumops

import "github.com/katalvlaran/seymour/ternary"

// DeltaSumResult is the pair of children extracted by DecomposeDeltaSum.
type DeltaSumResult struct {
	A, B *ternary.Matrix
}

// ComposeDeltaSum builds the Δ-sum of a and b (spec.md §4.8): a's last two
// rows and b's first two columns are the two generator pairs of a rank-2
// cross block, the k=2 instance of the pattern composeLowRank implements
// (lowrank.go). Unlike the 2-sum's single rank-1 bridge, the Δ-sum's bridge
// is rank 2, which is what lets it connect across a distributed-rank
// 3-separation rather than a 2-separation.
func ComposeDeltaSum(a, b *ternary.Matrix) (*ternary.Matrix, error) {
	return composeLowRank(a, b, 2)
}

// DecomposeDeltaSum is the inverse of ComposeDeltaSum. splitRow and splitCol
// name the composite coordinates of a's shrunken block, exactly as
// DecomposeTwoSum's parameters do; the top-left 2x2 submatrix of the cross
// block must have determinant ±1 for the generators to be recoverable
// (ErrStructure otherwise), matching spec.md's "making each square
// determinant well-defined" requirement for this sum.
func DecomposeDeltaSum(m *ternary.Matrix, splitRow, splitCol int) (*DeltaSumResult, error) {
	res, err := decomposeLowRank(m, splitRow, splitCol, 2)
	if err != nil {
		return nil, err
	}

	return &DeltaSumResult{A: res.A, B: res.B}, nil
}
