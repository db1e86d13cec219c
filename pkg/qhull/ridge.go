package qhull

import (
	"iter"

	"github.com/hullworks/qhull-go/internal/bindings"
)

// Ridge is a view over the shared boundary between two adjacent
// facets. It is valid only while the owning Hull is open.
type Ridge struct {
	h   *Hull
	ptr bindings.Ridge
	id  int
}

// ID returns the ridge's identifier, stable within one Hull's
// lifetime.
func (r Ridge) ID() int { return r.id }

// Vertices returns the vertices shared by the two facets the ridge
// separates.
func (r Ridge) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		r.h.live()
		for _, p := range r.h.ctx.RidgeVertices(r.ptr) {
			if !yield(Vertex{h: r.h, ptr: p, id: r.h.ctx.VertexID(p)}) {
				return
			}
		}
	}
}

// Top returns the facet above the ridge.
func (r Ridge) Top() Facet {
	r.h.live()
	p := r.h.ctx.RidgeTop(r.ptr)
	return Facet{h: r.h, ptr: p, id: r.h.ctx.FacetID(p)}
}

// Bottom returns the facet below the ridge.
func (r Ridge) Bottom() Facet {
	r.h.live()
	p := r.h.ctx.RidgeBottom(r.ptr)
	return Facet{h: r.h, ptr: p, id: r.h.ctx.FacetID(p)}
}
