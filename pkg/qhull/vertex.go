package qhull

import "github.com/hullworks/qhull-go/internal/bindings"

// Vertex is a view over one input point that ended up on the hull. It
// is valid only while the owning Hull is open.
type Vertex struct {
	h   *Hull
	ptr bindings.Vertex
	id  int
}

// ID returns the vertex's identifier. IDs are stable within one Hull's
// lifetime but not across separate computations on equal inputs.
func (v Vertex) ID() int { return v.id }

// Point returns the vertex's input coordinates. For lifted Delaunay
// and Voronoi computations the paraboloid coordinate is trimmed off,
// so the result always has the declared input dimension.
func (v Vertex) Point() []float64 {
	v.h.live()
	p := v.h.ctx.VertexPoint(v.ptr, v.h.hullDim)
	if v.h.lifted && len(p) == v.h.hullDim {
		return p[:v.h.dim]
	}
	return p
}
