package sumops_test

import (
	"testing"

	"github.com/katalvlaran/seymour/sumops"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestComposeDeltaSumBuildsRankTwoCrossBlock(t *testing.T) {
	a, err := ternary.NewFromDense([][]int8{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	b, err := ternary.NewFromDense([][]int8{
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	composite, err := sumops.ComposeDeltaSum(a, b)
	require.NoError(t, err)

	want := [][]int8{
		{1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 0, 0, 1, 0},
		{0, 1, 0, 0, 1},
		{1, 1, 0, 1, 1},
	}
	require.Equal(t, want, composite.Dense())
}

func TestDecomposeDeltaSumRecoversChildren(t *testing.T) {
	a, err := ternary.NewFromDense([][]int8{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	require.NoError(t, err)
	b, err := ternary.NewFromDense([][]int8{
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	composite, err := sumops.ComposeDeltaSum(a, b)
	require.NoError(t, err)

	res, err := sumops.DecomposeDeltaSum(composite, 2, 3)
	require.NoError(t, err)
	require.Equal(t, a.Dense(), res.A.Dense())
	require.Equal(t, b.Dense(), res.B.Dense())
}

func TestDecomposeDeltaSumRejectsSingularConnectingMatrix(t *testing.T) {
	bad, err := ternary.NewFromDense([][]int8{
		{1, 0, 1, 0, 0},
		{0, 1, 0, 0, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 0, 1},
	})
	require.NoError(t, err)

	_, err = sumops.DecomposeDeltaSum(bad, 2, 3)
	require.ErrorIs(t, err, sumops.ErrStructure)
}
