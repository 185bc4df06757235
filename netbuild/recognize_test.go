package netbuild_test

import (
	"testing"

	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/netbuild"
	"github.com/stretchr/testify/require"
)

func TestTestNetworkMatrixRoundTrip(t *testing.T) {
	g := cmrgraph.New(true)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	g.AddEdge(a, c)

	built, err := netbuild.BuildMatrix(g, map[cmrgraph.Edge]bool{e1: true, e2: true}, true)
	require.NoError(t, err)

	ok, real, err := netbuild.TestNetworkMatrix(built.Matrix)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, real)
}

func TestTestConetworkMatrixIsTransposeNetwork(t *testing.T) {
	g := cmrgraph.New(true)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	g.AddEdge(a, c)

	built, err := netbuild.BuildMatrix(g, map[cmrgraph.Edge]bool{e1: true, e2: true}, true)
	require.NoError(t, err)

	ok, _, err := netbuild.TestConetworkMatrix(built.Matrix.Transpose())
	require.NoError(t, err)
	require.True(t, ok)
}
