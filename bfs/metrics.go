// SPDX-License-Identifier: MIT
// Package bfs: distance metrics built from repeated BFS runs.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// Eccentricity returns the largest distance from id to any vertex.
// Returns ErrDisconnected if some vertex is unreachable from id.
func Eccentricity(ctx context.Context, g *core.Graph, id string) (int, error) {
	res, err := BFS(g, id, WithContext(ctx))
	if err != nil {
		return 0, err
	}
	if len(res.Order) != g.VertexCount() {
		return 0, fmt.Errorf("Eccentricity(%q): reached %d of %d: %w", id, len(res.Order), g.VertexCount(), ErrDisconnected)
	}

	return res.MaxDepth(), nil
}

// Connected reports whether every vertex is reachable from the first one.
// The empty graph is connected.
func Connected(ctx context.Context, g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	res, err := BFS(g, vs[0], WithContext(ctx))
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(vs), nil
}

// Diameter returns the maximum eccentricity over all vertices.
// Complexity: O(V·(V + E)).
func Diameter(ctx context.Context, g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	diam := 0
	for _, id := range g.Vertices() {
		e, err := Eccentricity(ctx, g, id)
		if err != nil {
			return 0, fmt.Errorf("Diameter: %w", err)
		}
		if e > diam {
			diam = e
		}
	}

	return diam, nil
}

// DistanceProfile returns, for each vertex, counts[d] = number of vertices
// at distance d (counts[0] == 1). Unreachable vertices are not counted.
// A distance-regular graph has identical profiles for every vertex.
func DistanceProfile(ctx context.Context, g *core.Graph) (map[string][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := make(map[string][]int, g.VertexCount())
	for _, id := range g.Vertices() {
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("DistanceProfile: %w", err)
		}
		counts := make([]int, res.MaxDepth()+1)
		for _, d := range res.Depth {
			counts[d]++
		}
		out[id] = counts
	}

	return out, nil
}
