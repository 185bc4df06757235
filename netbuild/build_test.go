package netbuild_test

import (
	"testing"

	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/netbuild"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrixTriangleBinary(t *testing.T) {
	g := cmrgraph.New(false)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	g.AddEdge(a, c)

	res, err := netbuild.BuildMatrix(g, map[cmrgraph.Edge]bool{e1: true, e2: true}, false)
	require.NoError(t, err)
	require.True(t, res.BasisCorrect)
	require.Equal(t, 2, res.Matrix.NumRows())
	require.Equal(t, 1, res.Matrix.NumCols())

	v0, err := res.Matrix.At(0, 0)
	require.NoError(t, err)
	v1, err := res.Matrix.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int8(1), v0)
	require.Equal(t, int8(1), v1)
}

func TestBuildMatrixSignedTriangle(t *testing.T) {
	g := cmrgraph.New(true)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	g.AddEdge(a, c)

	res, err := netbuild.BuildMatrix(g, map[cmrgraph.Edge]bool{e1: true, e2: true}, true)
	require.NoError(t, err)
	v0, err := res.Matrix.At(0, 0)
	require.NoError(t, err)
	v1, err := res.Matrix.At(1, 0)
	require.NoError(t, err)
	require.Contains(t, []int8{1, -1}, v0)
	require.Contains(t, []int8{1, -1}, v1)
}
