package sumops

import "github.com/katalvlaran/seymour/ternary"

// ThreeSumResult is the pair of children extracted by DecomposeThreeSum.
type ThreeSumResult struct {
	A, B *ternary.Matrix
}

// ComposeThreeSum builds the 3-sum of a and b (spec.md §4.8): a's last
// three rows and b's first three columns are the three generator pairs of
// a rank-3 cross block, the k=3 instance of composeLowRank (lowrank.go).
func ComposeThreeSum(a, b *ternary.Matrix) (*ternary.Matrix, error) {
	return composeLowRank(a, b, 3)
}

// DecomposeThreeSum is the inverse of ComposeThreeSum. The top-left 3x3
// submatrix of the cross block must have determinant ±1, same requirement
// as DecomposeDeltaSum generalized to k=3.
func DecomposeThreeSum(m *ternary.Matrix, splitRow, splitCol int) (*ThreeSumResult, error) {
	res, err := decomposeLowRank(m, splitRow, splitCol, 3)
	if err != nil {
		return nil, err
	}

	return &ThreeSumResult{A: res.A, B: res.B}, nil
}

// SearchThreeSumSigns resolves the β, γ ∈ {-1,+1} ambiguity spec.md's 3-sum
// Open Question calls out: given candidate children a and b whose third
// generator row and column (the last row of a and the third column of b,
// index 2) have an undetermined overall sign, it tries all four sign
// combinations and returns the first whose composite is ternary. A's
// NewFromTriplets rejects any out-of-range entry, so "composeLowRank
// returned without error" already certifies ternariness — no separate
// range check is needed. At most one combination is expected to produce a
// ternary composite when the rest of the connecting structure genuinely
// comes from a 3-separation.
func SearchThreeSumSigns(a, b *ternary.Matrix) (composite *ternary.Matrix, beta, gamma int8, err error) {
	for _, beta = range []int8{1, -1} {
		for _, gamma = range []int8{1, -1} {
			signedA, aerr := negateRow(a, a.NumRows()-1, beta)
			if aerr != nil {
				continue
			}
			signedB, berr := negateCol(b, 2, gamma)
			if berr != nil {
				continue
			}

			composite, err = composeLowRank(signedA, signedB, 3)
			if err == nil {
				return composite, beta, gamma, nil
			}
		}
	}

	return nil, 0, 0, ErrStructure
}

func negateRow(m *ternary.Matrix, row int, sign int8) (*ternary.Matrix, error) {
	dense := m.Dense()
	if sign == -1 {
		for j := range dense[row] {
			dense[row][j] = -dense[row][j]
		}
	}

	return ternary.NewFromDense(dense)
}

func negateCol(m *ternary.Matrix, col int, sign int8) (*ternary.Matrix, error) {
	dense := m.Dense()
	if sign == -1 {
		for i := range dense {
			dense[i][col] = -dense[i][col]
		}
	}

	return ternary.NewFromDense(dense)
}
