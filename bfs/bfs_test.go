// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/bfs"
	"github.com/katalvlaran/symgraph/builder"
	"github.com/katalvlaran/symgraph/core"
)

func chain(t *testing.T, ids ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1])
		require.NoError(t, err)
	}

	return g
}

func TestBFSOrderAndPath(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	require.Equal(t, 3, res.Depth["D"])

	path, err := res.PathTo("D")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, path)
}

func TestBFSErrors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(t, "A", "B")
	_, err = bfs.BFS(g, "Z")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestMaxDepth(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, res.Order)
	_, err = res.PathTo("D")
	require.Error(t, err)
}

func TestDiameter(t *testing.T) {
	ctx := context.Background()

	g := chain(t, "A", "B", "C", "D")
	d, err := bfs.Diameter(ctx, g)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	require.NoError(t, g.AddVertex("lonely"))
	ok, err := bfs.Connected(ctx, g)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = bfs.Diameter(ctx, g)
	require.ErrorIs(t, err, bfs.ErrDisconnected)
}

func TestW33Distances(t *testing.T) {
	ctx := context.Background()
	g, err := builder.BuildGraph(nil, builder.W33())
	require.NoError(t, err)

	d, err := bfs.Diameter(ctx, g)
	require.NoError(t, err)
	require.Equal(t, 2, d)

	prof, err := bfs.DistanceProfile(ctx, g)
	require.NoError(t, err)
	require.Len(t, prof, 40)
	for _, counts := range prof {
		require.Equal(t, []int{1, 12, 27}, counts)
	}
}
