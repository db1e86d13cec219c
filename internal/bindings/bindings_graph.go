//go:build cgo && !windows

package bindings

/*
#include <libqhull_r/libqhull_r.h>

// FORALLfacets / FORALLvertices stop at the sentinel whose next link
// is NULL. qhgo_cursor folds that rule into the handle mapping: the
// sentinel itself maps to NULL.
static facetT *qhgo_facet_cursor(facetT *f) {
	return (f && f->next) ? f : NULL;
}

static vertexT *qhgo_vertex_cursor(vertexT *v) {
	return (v && v->next) ? v : NULL;
}

// The one-bit facet flags are C bitfields, which cgo cannot read.
static int qhgo_facet_simplicial(facetT *f)    { return f->simplicial; }
static int qhgo_facet_upperdelaunay(facetT *f) { return f->upperdelaunay; }
static int qhgo_facet_good(facetT *f)          { return f->good; }

static int qhgo_set_size(qhT *qh, setT *s) {
	return s ? qh_setsize(qh, s) : 0;
}

static void *qhgo_set_nth(setT *s, int n) {
	return s->e[n].p;
}
*/
import "C"

import (
	"unsafe"
)

// FirstFacet returns the head of the facet list, or 0 when the list is
// empty. Iteration order is the library's internal list order: stable
// for a given input and option set, not geometrically meaningful.
func (c *Context) FirstFacet() Facet {
	return Facet(uintptr(unsafe.Pointer(C.qhgo_facet_cursor(c.qh.facet_list))))
}

// NextFacet returns the facet after f, or 0 past the end of the list.
func (c *Context) NextFacet(f Facet) Facet {
	next := (*C.facetT)(unsafe.Pointer(f)).next
	return Facet(uintptr(unsafe.Pointer(C.qhgo_facet_cursor(next))))
}

func (c *Context) FacetID(f Facet) int {
	return int((*C.facetT)(unsafe.Pointer(f)).id)
}

func (c *Context) FacetSimplicial(f Facet) bool {
	return C.qhgo_facet_simplicial((*C.facetT)(unsafe.Pointer(f))) != 0
}

func (c *Context) FacetUpperDelaunay(f Facet) bool {
	return C.qhgo_facet_upperdelaunay((*C.facetT)(unsafe.Pointer(f))) != 0
}

func (c *Context) FacetGood(f Facet) bool {
	return C.qhgo_facet_good((*C.facetT)(unsafe.Pointer(f))) != 0
}

// FacetNormal copies the unit normal of f, or nil when the facet has
// none. n is the expected coordinate count (the hull dimension).
func (c *Context) FacetNormal(f Facet, n int) []float64 {
	normal := (*C.facetT)(unsafe.Pointer(f)).normal
	return copyCoords(normal, n)
}

func (c *Context) FacetOffset(f Facet) float64 {
	return float64((*C.facetT)(unsafe.Pointer(f)).offset)
}

// FacetCenter copies the center of f if one was computed (Voronoi
// centers after SetVoronoiAll, centrums otherwise); nil when absent.
func (c *Context) FacetCenter(f Facet, n int) []float64 {
	center := (*C.facetT)(unsafe.Pointer(f)).center
	return copyCoords(center, n)
}

// FacetVertices returns the vertex set of f, or nil when the set was
// not populated.
func (c *Context) FacetVertices(f Facet) []Vertex {
	set := (*C.facetT)(unsafe.Pointer(f)).vertices
	if set == nil {
		return nil
	}
	n := int(C.qhgo_set_size(c.qh, set))
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = Vertex(uintptr(C.qhgo_set_nth(set, C.int(i))))
	}
	return out
}

// FacetRidges returns the ridge set of f, or nil when ridges were not
// computed (simplicial facets usually carry none).
func (c *Context) FacetRidges(f Facet) []Ridge {
	set := (*C.facetT)(unsafe.Pointer(f)).ridges
	if set == nil {
		return nil
	}
	n := int(C.qhgo_set_size(c.qh, set))
	out := make([]Ridge, n)
	for i := 0; i < n; i++ {
		out[i] = Ridge(uintptr(C.qhgo_set_nth(set, C.int(i))))
	}
	return out
}

// FacetNeighbors returns the neighboring facets of f, or nil when the
// set was not populated.
func (c *Context) FacetNeighbors(f Facet) []Facet {
	set := (*C.facetT)(unsafe.Pointer(f)).neighbors
	if set == nil {
		return nil
	}
	n := int(C.qhgo_set_size(c.qh, set))
	out := make([]Facet, n)
	for i := 0; i < n; i++ {
		out[i] = Facet(uintptr(C.qhgo_set_nth(set, C.int(i))))
	}
	return out
}

// FirstVertex returns the head of the vertex list, or 0 when empty.
func (c *Context) FirstVertex() Vertex {
	return Vertex(uintptr(unsafe.Pointer(C.qhgo_vertex_cursor(c.qh.vertex_list))))
}

// NextVertex returns the vertex after v, or 0 past the end.
func (c *Context) NextVertex(v Vertex) Vertex {
	next := (*C.vertexT)(unsafe.Pointer(v)).next
	return Vertex(uintptr(unsafe.Pointer(C.qhgo_vertex_cursor(next))))
}

func (c *Context) VertexID(v Vertex) int {
	return int((*C.vertexT)(unsafe.Pointer(v)).id)
}

// VertexPoint copies the n input coordinates of v.
func (c *Context) VertexPoint(v Vertex, n int) []float64 {
	point := (*C.vertexT)(unsafe.Pointer(v)).point
	return copyCoords(point, n)
}

func (c *Context) RidgeID(r Ridge) int {
	return int((*C.ridgeT)(unsafe.Pointer(r)).id)
}

// RidgeVertices returns the vertex set shared by the two facets the
// ridge separates.
func (c *Context) RidgeVertices(r Ridge) []Vertex {
	set := (*C.ridgeT)(unsafe.Pointer(r)).vertices
	if set == nil {
		return nil
	}
	n := int(C.qhgo_set_size(c.qh, set))
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		out[i] = Vertex(uintptr(C.qhgo_set_nth(set, C.int(i))))
	}
	return out
}

func (c *Context) RidgeTop(r Ridge) Facet {
	return Facet(uintptr(unsafe.Pointer((*C.ridgeT)(unsafe.Pointer(r)).top)))
}

func (c *Context) RidgeBottom(r Ridge) Facet {
	return Facet(uintptr(unsafe.Pointer((*C.ridgeT)(unsafe.Pointer(r)).bottom)))
}

func copyCoords(p *C.coordT, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	src := unsafe.Slice(p, n)
	out := make([]float64, n)
	for i := range src {
		out[i] = float64(src[i])
	}
	return out
}
