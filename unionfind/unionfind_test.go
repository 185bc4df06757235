package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/seymour/unionfind"
	"github.com/stretchr/testify/require"
)

func TestUnionFind(t *testing.T) {
	d := unionfind.New(5)
	require.False(t, d.Connected(0, 1))
	require.True(t, d.Union(0, 1))
	require.True(t, d.Connected(0, 1))
	require.False(t, d.Union(0, 1))

	d.Union(2, 3)
	d.Union(1, 2)
	require.True(t, d.Connected(0, 3))
	require.False(t, d.Connected(0, 4))
}
