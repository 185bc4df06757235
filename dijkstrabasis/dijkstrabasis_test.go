package dijkstrabasis_test

import (
	"testing"

	"github.com/katalvlaran/seymour/cmrgraph"
	"github.com/katalvlaran/seymour/dijkstrabasis"
	"github.com/stretchr/testify/require"
)

func TestRootSpansPathGraph(t *testing.T) {
	g := cmrgraph.New(false)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)

	res := dijkstrabasis.Root(g, map[cmrgraph.Edge]bool{e1: true, e2: true})
	require.True(t, res.BasisCorrect)
	require.Equal(t, 0, res.Distance[a])
	require.Equal(t, 1, res.Distance[b])
	require.Equal(t, 2, res.Distance[c])
}

func TestRootDetectsIncorrectBasis(t *testing.T) {
	g := cmrgraph.New(false)
	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(b, c)
	e3 := g.AddEdge(a, c)

	// Hint a triangle (a cycle, not a forest): one hinted edge cannot be basic.
	res := dijkstrabasis.Root(g, map[cmrgraph.Edge]bool{e1: true, e2: true, e3: true})
	require.False(t, res.BasisCorrect)
}
