package ternary_test

import (
	"testing"

	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestDeterminantIdentity(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)

	det, err := ternary.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, int64(1), det)
}

func TestDeterminantFanoSubmatrixIsTwo(t *testing.T) {
	// Fano (F7) 3x3 submatrix from spec.md scenario 4, det = 2.
	m, err := ternary.NewFromDense([][]int8{
		{1, 1, 0},
		{0, 1, 1},
		{1, 0, 1},
	})
	require.NoError(t, err)

	det, err := ternary.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, int64(2), absInt64(det))
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

func TestDeterminantSingular(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	det, err := ternary.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, int64(0), det)
}

func TestDeterminantNonSquare(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0, -1},
	})
	require.NoError(t, err)

	_, err = ternary.Determinant(m)
	require.ErrorIs(t, err, ternary.ErrNonSquare)
}
