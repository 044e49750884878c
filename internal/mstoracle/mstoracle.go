// Package mstoracle is an independent correctness oracle for slink.Cluster.
//
// A classical result (Gower & Ross, 1969) is that the single-linkage
// dendrogram's merge heights are exactly the edge weights of a minimum
// spanning tree of the complete distance graph, sorted ascending. This
// package computes that MST directly — by Kruskal's algorithm over the
// complete graph of pairwise distances, using a disjoint-set union with
// path compression and union by rank — and exposes its sorted edge
// weights so tests can cross-check slink.Cluster's lambda values against
// a second, independently-derived algorithm rather than trusting SLINK's
// own stage-3 recurrence to check itself.
package mstoracle

import (
	"sort"

	"github.com/slink-go/slink/data"
	"github.com/slink-go/slink/kernel"
)

// MergeHeights returns the n-1 MST edge weights of points's complete
// distance graph, sorted ascending. For n <= 1 it returns an empty slice.
// dist is the distance kernel used to weight edges (callers typically
// pass kernel.Select(kind) so the oracle and slink.Cluster agree on the
// metric being verified).
func MergeHeights(points data.Points, dist kernel.DistanceFunc) []float64 {
	n := points.Len()
	if n <= 1 {
		return nil
	}

	type edge struct {
		u, v   int
		weight float64
	}
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		pi := points.PointPadded(i)
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{i, j, dist(pi, points.PointPadded(j))})
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].weight < edges[b].weight
	})

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	heights := make([]float64, 0, n-1)
	for _, e := range edges {
		if find(e.u) != find(e.v) {
			union(e.u, e.v)
			heights = append(heights, e.weight)
			if len(heights) == n-1 {
				break
			}
		}
	}
	return heights
}
