// SPDX-License-Identifier: MIT
// Package: symgraph/automorphism
//
// group.go — public entry points: GroupOrder, Analyze, Find, Isomorphism,
// IsAutomorphism.

package automorphism

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/symgraph/core"
)

// Permutation maps vertex index i (core.Graph insertion order) to p[i].
type Permutation []int

// IsIdentity reports whether p fixes every point.
func (p Permutation) IsIdentity() bool {
	for i, x := range p {
		if i != x {
			return false
		}
	}

	return true
}

// IDs renders p as a vertex-ID mapping for g.
func (p Permutation) IDs(g *core.Graph) map[string]string {
	ids := g.Vertices()
	out := make(map[string]string, len(p))
	for i, x := range p {
		out[ids[i]] = ids[x]
	}

	return out
}

// Group summarises Aut(G) as computed along an individualisation base.
type Group struct {
	// Order is |Aut(G)|.
	Order *big.Int
	// Base lists the individualised vertex IDs in order.
	Base []string
	// OrbitSizes[i] is the orbit size of Base[i] under the pointwise
	// stabiliser of Base[:i].
	OrbitSizes []int
	// Generators generate Aut(G); each is a verified automorphism.
	Generators []Permutation
	// Nodes counts refinement nodes visited.
	Nodes int
}

// level is one step of the individualisation base.
type level struct {
	colouring []int
	point     int
	cell      []int
}

// GroupOrder returns |Aut(g)|.
func GroupOrder(ctx context.Context, g *core.Graph, opts ...Option) (*big.Int, error) {
	grp, err := Analyze(ctx, g, opts...)
	if err != nil {
		return nil, err
	}

	return grp.Order, nil
}

// Analyze computes the base, orbit sizes, generators and order of Aut(g).
//
// Stage 1 (Base):   refine; repeatedly individualise the lowest vertex of
// the target cell until the colouring is discrete.
// Stage 2 (Orbits): from the deepest level up, grow the orbit of each base
// point inside its cell, closing under generators and searching only for
// candidates not yet classified.
// Stage 3 (Order):  multiply the orbit sizes.
func Analyze(ctx context.Context, g *core.Graph, opts ...Option) (*Group, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	gv := snapshot(g)
	s := &searcher{ctx: ctx, ga: gv, gb: gv, maxNodes: o.maxNodes}

	c, _, _ := refine(gv, gv, make([]int, gv.order()), make([]int, gv.order()))
	var levels []level
	for col := targetCell(c); col >= 0; col = targetCell(c) {
		cell := members(c, col)
		levels = append(levels, level{colouring: c, point: cell[0], cell: cell})
		c, _, _ = refine(gv, gv, individualize(c, cell[0]), individualize(c, cell[0]))
	}

	grp := &Group{
		Order:      big.NewInt(1),
		Base:       make([]string, len(levels)),
		OrbitSizes: make([]int, len(levels)),
	}
	var gens []Permutation
	for i := len(levels) - 1; i >= 0; i-- {
		lv := levels[i]
		orbit := closure([]int{lv.point}, gens, gv.order())
		excluded := make([]bool, gv.order())
		for _, w := range lv.cell {
			if orbit[w] || excluded[w] {
				continue
			}
			p, err := s.extend(individualize(lv.colouring, lv.point), individualize(lv.colouring, w))
			if err != nil {
				return nil, fmt.Errorf("Analyze: level %d: %w", i, err)
			}
			if p == nil {
				for x, in := range closure([]int{w}, gens, gv.order()) {
					excluded[x] = excluded[x] || in
				}
				continue
			}
			gens = append(gens, Permutation(p))
			orbit = closure(trueIndices(orbit), gens, gv.order())
		}

		size := len(trueIndices(orbit))
		grp.Base[i] = gv.ids[lv.point]
		grp.OrbitSizes[i] = size
		grp.Order.Mul(grp.Order, big.NewInt(int64(size)))
	}
	grp.Generators = gens
	grp.Nodes = s.nodes

	return grp, nil
}

// closure returns the membership mask of the smallest gens-invariant set
// containing seed.
func closure(seed []int, gens []Permutation, n int) []bool {
	in := make([]bool, n)
	queue := make([]int, 0, n)
	for _, x := range seed {
		if !in[x] {
			in[x] = true
			queue = append(queue, x)
		}
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, p := range gens {
			if y := p[x]; !in[y] {
				in[y] = true
				queue = append(queue, y)
			}
		}
	}

	return in
}

func trueIndices(mask []bool) []int {
	var out []int
	for i, ok := range mask {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Find returns an automorphism of g mapping from[i] to to[i] for every i.
// Returns ErrNoAutomorphism if none exists.
func Find(ctx context.Context, g *core.Graph, from, to []string, opts ...Option) (Permutation, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(from) != len(to) {
		return nil, fmt.Errorf("Find: %d sources, %d targets: %w", len(from), len(to), ErrNoAutomorphism)
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	gv := snapshot(g)
	a, b := make([]int, gv.order()), make([]int, gv.order())
	for i := range from {
		u, err := g.Index(from[i])
		if err != nil {
			return nil, fmt.Errorf("Find: %q: %w", from[i], ErrVertexNotFound)
		}
		w, err := g.Index(to[i])
		if err != nil {
			return nil, fmt.Errorf("Find: %q: %w", to[i], ErrVertexNotFound)
		}
		if a[u] != 0 || b[w] != 0 {
			// Repeated source or target: must repeat consistently.
			if a[u] != b[w] {
				return nil, fmt.Errorf("Find: inconsistent pin %q→%q: %w", from[i], to[i], ErrNoAutomorphism)
			}
			continue
		}
		a[u], b[w] = i+1, i+1
	}

	s := &searcher{ctx: ctx, ga: gv, gb: gv, maxNodes: o.maxNodes}
	p, err := s.extend(a, b)
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	if p == nil {
		return nil, ErrNoAutomorphism
	}

	return Permutation(p), nil
}

// Isomorphism returns a vertex-ID bijection from g to h preserving
// adjacency, or ErrNotIsomorphic.
func Isomorphism(ctx context.Context, g, h *core.Graph, opts ...Option) (map[string]string, error) {
	if g == nil || h == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	ga, gb := snapshot(g), snapshot(h)
	if ga.order() != gb.order() || ga.edges != gb.edges {
		return nil, ErrNotIsomorphic
	}
	s := &searcher{ctx: ctx, ga: ga, gb: gb, maxNodes: o.maxNodes}
	p, err := s.extend(make([]int, ga.order()), make([]int, gb.order()))
	if err != nil {
		return nil, fmt.Errorf("Isomorphism: %w", err)
	}
	if p == nil {
		return nil, ErrNotIsomorphic
	}
	out := make(map[string]string, len(p))
	for i, x := range p {
		out[ga.ids[i]] = gb.ids[x]
	}

	return out, nil
}

// IsAutomorphism reports whether p is a permutation of g's vertex indices
// that maps edges to edges.
func IsAutomorphism(g *core.Graph, p Permutation) bool {
	if g == nil || len(p) != g.VertexCount() {
		return false
	}
	seen := make([]bool, len(p))
	for _, x := range p {
		if x < 0 || x >= len(p) || seen[x] {
			return false
		}
		seen[x] = true
	}
	gv := snapshot(g)

	return preserves(gv, gv, p)
}
