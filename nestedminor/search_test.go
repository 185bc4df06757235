package nestedminor_test

import (
	"testing"

	"github.com/katalvlaran/seymour/nestedminor"
	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestFindDistributedRankSeparation(t *testing.T) {
	// row0 and col0 both have exactly 2 nonzeros: a textbook distributed-rank
	// 3-separation on {row0,row1}x{col0,col1}, with the rest of the matrix
	// untouched by either.
	dense := [][]int8{
		{1, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	res, err := nestedminor.Find(m)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Nil(t, res.Violator)
	require.NotNil(t, res.Separation)
	require.Equal(t, nestedminor.DistributedRanks, res.Separation.Type)
	require.Len(t, res.Separation.RowsFirst, 2)
	require.Len(t, res.Separation.ColsFirst, 2)
}

func TestFindConcentratedRankSeparation(t *testing.T) {
	// row0 has exactly 2 nonzeros (col0, col1), and neither column has
	// degree 2 (both have degree 3), so the distributed-rank situation never
	// fires. Removing row0 from col0's support leaves {row1,row2}, which
	// matches col2's support {row1,row2} exactly: a concentrated-rank
	// 3-separation on {row0}x{col0,col1,col2}.
	dense := [][]int8{
		{1, 1, 0},
		{1, 1, 1},
		{1, 1, 1},
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	res, err := nestedminor.Find(m)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Nil(t, res.Violator)
	require.NotNil(t, res.Separation)
	require.Equal(t, nestedminor.ConcentratedRank, res.Separation.Type)
	require.Len(t, res.Separation.RowsFirst, 1)
	require.Len(t, res.Separation.ColsFirst, 3)
}

func TestFindReportsNoSeparationOnFullyConnectedMatrix(t *testing.T) {
	// Every row and column has 3+ nonzeros, so neither situation applies.
	dense := [][]int8{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	m, err := ternary.NewFromDense(dense)
	require.NoError(t, err)

	res, err := nestedminor.Find(m)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Separation)
	require.Nil(t, res.Violator)
}
