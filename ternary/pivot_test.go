package ternary_test

import (
	"testing"

	"github.com/katalvlaran/seymour/ternary"
	"github.com/stretchr/testify/require"
)

func TestTernaryPivotSimple(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, 1},
	})
	require.NoError(t, err)

	out, violator, err := ternary.TernaryPivot(m, 0, 0)
	require.NoError(t, err)
	require.Nil(t, violator)
	want, _ := ternary.NewFromDense([][]int8{
		{1, -1},
		{-1, 0},
	})
	require.True(t, ternary.Equal(out, want))
}

func TestTernaryPivotOverflowsToBadEntry(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 1},
		{1, -1},
	})
	require.NoError(t, err)

	_, violator, err := ternary.TernaryPivot(m, 0, 0)
	require.ErrorIs(t, err, ternary.ErrBadEntry)
	require.NotNil(t, violator)
	require.Equal(t, []int{0, 1}, violator.Rows)
	require.Equal(t, []int{0, 1}, violator.Cols)
}

func TestBinaryPivotRequiresOne(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{0, 1},
		{1, 1},
	})
	require.NoError(t, err)

	_, err = ternary.BinaryPivot(m, 0, 0)
	require.ErrorIs(t, err, ternary.ErrPivotZero)

	out, err := ternary.BinaryPivot(m, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 2, out.NumRows())
}

func TestMultiPivotSequential(t *testing.T) {
	m, err := ternary.NewFromDense([][]int8{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	out, failStep, violator, err := ternary.MultiPivot(m, []int{0, 1}, []int{0, 1})
	require.NoError(t, err)
	require.Equal(t, -1, failStep)
	require.Nil(t, violator)
	require.NotNil(t, out)
}
