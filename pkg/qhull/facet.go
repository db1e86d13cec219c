package qhull

import (
	"iter"

	"github.com/hullworks/qhull-go/internal/bindings"
)

// Facet is a view over one maximal face of the computed hull graph. It
// is valid only while the owning Hull is open.
type Facet struct {
	h   *Hull
	ptr bindings.Facet
	id  int
}

// ID returns the facet's identifier. IDs are stable within one Hull's
// lifetime but not across separate computations on equal inputs.
func (f Facet) ID() int { return f.id }

// IsSimplicial reports whether the facet has exactly dim vertices.
func (f Facet) IsSimplicial() bool {
	f.h.live()
	return f.h.ctx.FacetSimplicial(f.ptr)
}

// IsUpperDelaunay reports whether the facet belongs to the upper
// envelope of a lifted Delaunay computation.
func (f Facet) IsUpperDelaunay() bool {
	f.h.live()
	return f.h.ctx.FacetUpperDelaunay(f.ptr)
}

// IsGood reports whether the facet was marked good by the active
// option set.
func (f Facet) IsGood() bool {
	f.h.live()
	return f.h.ctx.FacetGood(f.ptr)
}

// Normal returns the facet's unit normal, or nil when none was
// computed.
func (f Facet) Normal() []float64 {
	f.h.live()
	return f.h.ctx.FacetNormal(f.ptr, f.h.hullDim)
}

// Offset returns the offset of the facet's hyperplane.
func (f Facet) Offset() float64 {
	f.h.live()
	return f.h.ctx.FacetOffset(f.ptr)
}

// Center returns the facet's center. In Voronoi mode this is the
// Voronoi vertex dual to the facet. ErrMissingData when no center was
// computed under the active options.
func (f Facet) Center() ([]float64, error) {
	f.h.live()
	n := f.h.hullDim
	if f.h.voronoi {
		n = f.h.dim
	}
	center := f.h.ctx.FacetCenter(f.ptr, n)
	if center == nil {
		return nil, ErrMissingData
	}
	return center, nil
}

// Vertices returns the facet's vertices, ordered for simplicial
// facets. ErrMissingData when the vertex set was not populated under
// the active options.
func (f Facet) Vertices() (iter.Seq[Vertex], error) {
	f.h.live()
	vs := f.h.ctx.FacetVertices(f.ptr)
	if vs == nil {
		return nil, ErrMissingData
	}
	return func(yield func(Vertex) bool) {
		f.h.live()
		for _, p := range vs {
			if !yield(Vertex{h: f.h, ptr: p, id: f.h.ctx.VertexID(p)}) {
				return
			}
		}
	}, nil
}

// Ridges returns the facet's ridges. Simplicial facets usually carry
// no explicit ridge sets; ErrMissingData in that case.
func (f Facet) Ridges() (iter.Seq[Ridge], error) {
	f.h.live()
	rs := f.h.ctx.FacetRidges(f.ptr)
	if rs == nil {
		return nil, ErrMissingData
	}
	return func(yield func(Ridge) bool) {
		f.h.live()
		for _, p := range rs {
			if !yield(Ridge{h: f.h, ptr: p, id: f.h.ctx.RidgeID(p)}) {
				return
			}
		}
	}, nil
}

// Neighbors returns the facets adjacent to this one. ErrMissingData
// when the neighbor set was not populated.
func (f Facet) Neighbors() (iter.Seq[Facet], error) {
	f.h.live()
	ns := f.h.ctx.FacetNeighbors(f.ptr)
	if ns == nil {
		return nil, ErrMissingData
	}
	return func(yield func(Facet) bool) {
		f.h.live()
		for _, p := range ns {
			if !yield(Facet{h: f.h, ptr: p, id: f.h.ctx.FacetID(p)}) {
				return
			}
		}
	}, nil
}
