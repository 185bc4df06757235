package seymour_test

import (
	"testing"

	"github.com/katalvlaran/seymour/seymour"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestDecomposeSplitsOneSumIntoSeriesParallelLeaves(t *testing.T) {
	// Block-diagonal 2x2: two disjoint unit entries, no row/column shared
	// between them, so onesum.Split must find two 1x1 components before SP
	// reduction or 3-separation search ever run.
	m, err := ternary.NewFromDense([][]int8{{1, 0}, {0, 1}})
	require.NoError(t, err)

	root := seymour.NewNode(m)
	stats, err := seymour.Decompose(root, nil)
	require.NoError(t, err)

	require.Equal(t, seymour.TagOneSum, root.Tag)
	require.Len(t, root.Children, 2)
	for _, c := range root.Children {
		require.Equal(t, seymour.TagSeriesParallel, c.Tag)
		require.Equal(t, seymour.FlagYes, c.Regularity)
	}
	require.Equal(t, seymour.FlagYes, stats.Regularity)
	require.Equal(t, 3, stats.NodesProcessed)
	require.Equal(t, 0, stats.Pivots)
}

func TestDecomposeResolvesDistributedRankSeparationAsYSum(t *testing.T) {
	// The 3x3 cycle {row,col} support has every row/column at degree 2, so
	// spreduce.Reduce leaves the whole matrix as a wheel residual (no row or
	// column ever drops to degree <= 1, and no two rows/columns share an
	// identical support signature), after which nestedminor.Find locates a
	// distributed-rank 3-separation on rows {0,1} x columns {0,2}. The
	// default DecomposeStrategy prefers DistributedYSum, so the node becomes
	// a Y-sum split into a 2x2 block (rows 0,1 x cols 0,2) and a 1x1 block
	// (row 2 x col 1); both reduce away completely under SP.
	dense := [][]int8{
		{1, 0, 1},
		{1, 1, 0},
		{0, 1, 1},
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	root := seymour.NewNode(m)
	stats, err := seymour.Decompose(root, nil)
	require.NoError(t, err)

	require.Equal(t, seymour.TagYSum, root.Tag)
	require.Len(t, root.Children, 2)
	require.Equal(t, 2, root.Children[0].Matrix.NumRows())
	require.Equal(t, 2, root.Children[0].Matrix.NumCols())
	require.Equal(t, 1, root.Children[1].Matrix.NumRows())
	require.Equal(t, 1, root.Children[1].Matrix.NumCols())
	for _, c := range root.Children {
		require.Equal(t, seymour.TagSeriesParallel, c.Tag)
		require.Equal(t, seymour.FlagYes, c.Regularity)
	}
	require.Equal(t, seymour.FlagYes, stats.Regularity)
}

func TestDecomposeFlagsBadDeterminantAsIrregularSubmatrix(t *testing.T) {
	// Two rows share column support {0,1} but disagree on sign (neither row
	// is a signed multiple of the other): spreduce.Reduce's own
	// bad-determinant case, the same 2x2 fixture spreduce's tests use.
	m, err := ternary.NewFromDense([][]int8{{1, 1}, {1, -1}})
	require.NoError(t, err)

	root := seymour.NewNode(m)
	stats, err := seymour.Decompose(root, nil)
	require.NoError(t, err)

	require.Equal(t, seymour.TagSubmatrix, root.Tag)
	require.Equal(t, seymour.FlagNo, root.Regularity)
	require.NotNil(t, root.Violator)
	require.Equal(t, seymour.FlagNo, stats.Regularity)
}

func TestDecomposeStopsAtFirstIrregularNodeByDefault(t *testing.T) {
	// StopWhenIrregular defaults to true: Decompose must return as soon as
	// the bad-determinant node is classified, without raising an error.
	m, err := ternary.NewFromDense([][]int8{{1, 1}, {1, -1}})
	require.NoError(t, err)

	params := seymour.DefaultParams()
	require.True(t, params.StopWhenIrregular)

	root := seymour.NewNode(m)
	_, err = seymour.Decompose(root, params)
	require.NoError(t, err)
	require.Equal(t, seymour.TagSubmatrix, root.Tag)
}
