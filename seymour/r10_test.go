package seymour

import (
	"testing"

	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestIsR10DetectsCanonicalPattern(t *testing.T) {
	dense := make([][]int8, 5)
	for i := range dense {
		dense[i] = append([]int8(nil), r10Pattern[i][:]...)
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	require.True(t, isR10(m))
}

func TestIsR10DetectsRowAndColumnPermutedCopy(t *testing.T) {
	// Swap rows 0/1 and columns 3/4 of the canonical pattern; the result is
	// still R10 up to relabeling, which isR10's permutation search must find.
	dense := make([][]int8, 5)
	for i := range dense {
		dense[i] = append([]int8(nil), r10Pattern[i][:]...)
	}
	dense[0], dense[1] = dense[1], dense[0]
	for i := range dense {
		dense[i][3], dense[i][4] = dense[i][4], dense[i][3]
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	require.True(t, isR10(m))
}

func TestIsR10RejectsWrongShape(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{{1, 0}, {0, 1}})
	require.NoError(t, err)

	require.False(t, isR10(m))
}

func TestIsR10RejectsAllOnesPattern(t *testing.T) {
	// Same shape as R10 (5x5) but with 25 nonzeros instead of 17: no
	// permutation of the all-ones matrix can match r10Pattern's support.
	dense := make([][]int8, 5)
	for i := range dense {
		dense[i] = make([]int8, 5)
		for j := range dense[i] {
			dense[i][j] = 1
		}
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	require.False(t, isR10(m))
}

func TestPermutationsGeneratesAllOrderings(t *testing.T) {
	perms := permutations(3)
	require.Len(t, perms, 6)

	seen := map[string]bool{}
	for _, p := range perms {
		require.Len(t, p, 3)
		key := ""
		for _, v := range p {
			key += string(rune('0' + v))
		}
		seen[key] = true
	}
	require.Len(t, seen, 6)
}
