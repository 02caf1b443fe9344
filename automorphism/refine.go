// SPDX-License-Identifier: MIT
// Package: symgraph/automorphism
//
// refine.go — joint colour refinement over index-based graph views.

package automorphism

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/symgraph/core"
)

// view is a read-only index snapshot of a core.Graph.
type view struct {
	ids   []string
	nbrs  [][]int
	adj   [][]bool
	edges int
}

func snapshot(g *core.Graph) view {
	return view{
		ids:   g.Vertices(),
		nbrs:  g.NeighborLists(),
		adj:   g.AdjacencyBits(),
		edges: g.EdgeCount(),
	}
}

func (v view) order() int { return len(v.ids) }

// signatures encodes (colour, sorted neighbour colours) per vertex.
func signatures(g view, c []int) []string {
	out := make([]string, len(c))
	buf := make([]int, 0, 16)
	var sb strings.Builder
	for v := range c {
		buf = buf[:0]
		for _, u := range g.nbrs[v] {
			buf = append(buf, c[u])
		}
		sort.Ints(buf)

		sb.Reset()
		sb.WriteString(strconv.Itoa(c[v]))
		sb.WriteByte('|')
		for i, x := range buf {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(x))
		}
		out[v] = sb.String()
	}

	return out
}

// refine refines colourings a (over ga) and b (over gb) to their joint
// stable partition. Colours are renumbered 0..k-1 by sorted signature, so
// equal colours on both sides mean equal refinement history. ok is false as
// soon as the two colour histograms differ.
func refine(ga, gb view, a, b []int) (ra, rb []int, ok bool) {
	classes := -1
	for {
		sa, sb := signatures(ga, a), signatures(gb, b)

		seen := make(map[string]struct{}, len(sa))
		keys := make([]string, 0, len(sa))
		for _, s := range append(append([]string(nil), sa...), sb...) {
			if _, dup := seen[s]; !dup {
				seen[s] = struct{}{}
				keys = append(keys, s)
			}
		}
		sort.Strings(keys)
		colour := make(map[string]int, len(keys))
		for i, k := range keys {
			colour[k] = i
		}

		na, nb := make([]int, len(a)), make([]int, len(b))
		hist := make([]int, len(keys))
		for v, s := range sa {
			na[v] = colour[s]
			hist[na[v]]++
		}
		for v, s := range sb {
			nb[v] = colour[s]
			hist[nb[v]]--
		}
		for _, h := range hist {
			if h != 0 {
				return nil, nil, false
			}
		}

		a, b = na, nb
		if len(keys) == classes {
			return a, b, true
		}
		classes = len(keys)
	}
}

// individualize gives v a colour no other vertex carries.
func individualize(c []int, v int) []int {
	out := make([]int, len(c))
	fresh := 0
	for i, x := range c {
		out[i] = x
		if x >= fresh {
			fresh = x + 1
		}
	}
	out[v] = fresh

	return out
}

// targetCell returns the colour of the smallest non-singleton cell (lowest
// colour on ties), or -1 if the colouring is discrete.
func targetCell(c []int) int {
	size := make(map[int]int, len(c))
	for _, x := range c {
		size[x]++
	}
	best, bestSize := -1, 0
	for col, s := range size {
		if s < 2 {
			continue
		}
		if best < 0 || s < bestSize || (s == bestSize && col < best) {
			best, bestSize = col, s
		}
	}

	return best
}

// members lists the vertices of colour col in ascending order.
func members(c []int, col int) []int {
	var out []int
	for v, x := range c {
		if x == col {
			out = append(out, v)
		}
	}

	return out
}
