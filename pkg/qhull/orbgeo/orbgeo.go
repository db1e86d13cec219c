// Package orbgeo bridges qhull computations to the geometry types of
// github.com/paulmach/orb for callers working with GeoJSON-style data.
package orbgeo

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/hullworks/qhull-go/pkg/qhull"
)

// ConvexHull computes the planar convex hull of points and returns it
// as a closed, counterclockwise orb.Ring.
func ConvexHull(points orb.MultiPoint) (orb.Ring, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("orbgeo: convex hull needs at least 3 points, got %d", len(points))
	}

	b := qhull.New(2)
	for _, p := range points {
		b.AddPoint(p[0], p[1])
	}
	h, err := b.Compute()
	if err != nil {
		return nil, err
	}
	defer h.Close()

	coords := map[int]orb.Point{}
	for v := range h.Vertices() {
		p := v.Point()
		coords[v.ID()] = orb.Point{p[0], p[1]}
	}

	var edges [][2]int
	for f := range h.Facets() {
		vs, err := f.Vertices()
		if err != nil {
			return nil, err
		}
		var edge []int
		for v := range vs {
			edge = append(edge, v.ID())
		}
		if len(edge) != 2 {
			return nil, fmt.Errorf("orbgeo: facet %d has %d vertices, want 2", f.ID(), len(edge))
		}
		edges = append(edges, [2]int{edge[0], edge[1]})
	}

	ring, err := assembleRing(edges, coords)
	if err != nil {
		return nil, err
	}
	if ring.Orientation() == orb.CW {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	return ring, nil
}

// assembleRing orders hull edges into one closed loop. Each vertex id
// must appear in exactly two edges.
func assembleRing(edges [][2]int, coords map[int]orb.Point) (orb.Ring, error) {
	if len(edges) < 3 {
		return nil, fmt.Errorf("orbgeo: %d edges cannot form a ring", len(edges))
	}

	adj := map[int][]int{}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for id, ns := range adj {
		if len(ns) != 2 {
			return nil, fmt.Errorf("orbgeo: vertex %d is on %d edges, want 2", id, len(ns))
		}
	}

	start := edges[0][0]
	ring := orb.Ring{}
	prev, cur := -1, start
	for {
		p, ok := coords[cur]
		if !ok {
			return nil, fmt.Errorf("orbgeo: edge references unknown vertex %d", cur)
		}
		ring = append(ring, p)

		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
		if cur == start {
			break
		}
		if len(ring) > len(edges) {
			return nil, fmt.Errorf("orbgeo: edges do not close into a single ring")
		}
	}
	if len(ring) != len(edges) {
		return nil, fmt.Errorf("orbgeo: ring covers %d of %d vertices", len(ring), len(edges))
	}

	ring = append(ring, ring[0])
	return ring, nil
}
