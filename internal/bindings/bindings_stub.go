//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds or Windows. They let the
// package compile everywhere; New reports ErrNotBuilt, so the accessor
// stubs below are never reached through the public API.

// Available reports whether the native Qhull library is linked in.
func Available() bool { return false }

// Context mirrors the cgo-backed type so pkg/qhull compiles without
// the native library.
type Context struct {
	guard guardState
}

func New() (*Context, error) { return nil, ErrNotBuilt }

func (c *Context) Close() error { return ErrNotBuilt }

func (c *Context) InitFlags(string) error               { return ErrNotBuilt }
func (c *Context) InitPoints([]float64, int, int) error { return ErrNotBuilt }
func (c *Context) Compute() error                       { return ErrNotBuilt }
func (c *Context) CheckOutput() error                   { return ErrNotBuilt }
func (c *Context) SetVoronoiAll() error                 { return ErrNotBuilt }
func (c *Context) ComputeArea() error                   { return ErrNotBuilt }

func (c *Context) SetDelaunay(bool)     {}
func (c *Context) SetVoronoi(bool)      {}
func (c *Context) SetScaleLast(bool)    {}
func (c *Context) SetTriangulate(bool)  {}
func (c *Context) SetKeepCoplanar(bool) {}

func (c *Context) NumFacets() int      { return 0 }
func (c *Context) NumVertices() int    { return 0 }
func (c *Context) HullDim() int        { return 0 }
func (c *Context) TotArea() float64    { return 0 }
func (c *Context) TotVolume() float64  { return 0 }
func (c *Context) DrainOutput() string { return "" }

func (c *Context) FirstFacet() Facet                  { return 0 }
func (c *Context) NextFacet(Facet) Facet              { return 0 }
func (c *Context) FacetID(Facet) int                  { return 0 }
func (c *Context) FacetSimplicial(Facet) bool         { return false }
func (c *Context) FacetUpperDelaunay(Facet) bool      { return false }
func (c *Context) FacetGood(Facet) bool               { return false }
func (c *Context) FacetNormal(Facet, int) []float64   { return nil }
func (c *Context) FacetOffset(Facet) float64          { return 0 }
func (c *Context) FacetCenter(Facet, int) []float64   { return nil }
func (c *Context) FacetVertices(Facet) []Vertex       { return nil }
func (c *Context) FacetRidges(Facet) []Ridge          { return nil }
func (c *Context) FacetNeighbors(Facet) []Facet       { return nil }
func (c *Context) FirstVertex() Vertex                { return 0 }
func (c *Context) NextVertex(Vertex) Vertex           { return 0 }
func (c *Context) VertexID(Vertex) int                { return 0 }
func (c *Context) VertexPoint(Vertex, int) []float64  { return nil }
func (c *Context) RidgeID(Ridge) int                  { return 0 }
func (c *Context) RidgeVertices(Ridge) []Vertex       { return nil }
func (c *Context) RidgeTop(Ridge) Facet               { return 0 }
func (c *Context) RidgeBottom(Ridge) Facet            { return 0 }
