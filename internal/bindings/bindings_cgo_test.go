//go:build cgo && !windows

package bindings

import (
	"errors"
	"testing"
)

var squareCoords = []float64{
	0, 0,
	1, 0,
	0, 1,
	1, 1,
	0.5, 0.5,
}

func newSquareContext(t *testing.T) *Context {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.InitFlags("qhull"); err != nil {
		c.Close()
		t.Fatalf("InitFlags failed: %v", err)
	}
	if err := c.InitPoints(squareCoords, 2, 5); err != nil {
		c.Close()
		t.Fatalf("InitPoints failed: %v", err)
	}
	return c
}

func TestContextLifecycle(t *testing.T) {
	c := newSquareContext(t)
	if err := c.Compute(); err != nil {
		c.Close()
		t.Fatalf("Compute failed: %v", err)
	}
	if err := c.CheckOutput(); err != nil {
		c.Close()
		t.Fatalf("CheckOutput failed: %v", err)
	}

	if got := c.NumFacets(); got != 4 {
		t.Errorf("NumFacets = %d, want 4", got)
	}
	if got := c.NumVertices(); got != 4 {
		t.Errorf("NumVertices = %d, want 4", got)
	}
	if got := c.HullDim(); got != 2 {
		t.Errorf("HullDim = %d, want 2", got)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := c.Close(); !errors.Is(err, ErrContextClosed) {
		t.Fatalf("second Close: got %v, want ErrContextClosed", err)
	}
}

func TestGuardedCallRejectedWhileActive(t *testing.T) {
	c := newSquareContext(t)
	defer c.Close()

	// Simulate an in-flight guarded call. The public surface cannot
	// nest (all operations are synchronous), so flip the flag directly.
	c.guard.active = true
	if err := c.Compute(); !errors.Is(err, ErrGuardActive) {
		t.Fatalf("nested Compute: got %v, want ErrGuardActive", err)
	}
	c.guard.active = false

	// A properly sequenced call on the same handle still works.
	if err := c.Compute(); err != nil {
		t.Fatalf("Compute after guard release failed: %v", err)
	}
}

func TestOperationsOnClosedContext(t *testing.T) {
	c := newSquareContext(t)
	if err := c.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := c.Compute(); !errors.Is(err, ErrContextClosed) {
		t.Fatalf("Compute on closed context: got %v, want ErrContextClosed", err)
	}
	if err := c.InitPoints(squareCoords, 2, 5); !errors.Is(err, ErrContextClosed) {
		t.Fatalf("InitPoints on closed context: got %v, want ErrContextClosed", err)
	}
}

func TestFacetTraversal(t *testing.T) {
	c := newSquareContext(t)
	defer c.Close()
	if err := c.Compute(); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	vertexIDs := map[int]bool{}
	for v := c.FirstVertex(); v != 0; v = c.NextVertex(v) {
		vertexIDs[c.VertexID(v)] = true
		if got := len(c.VertexPoint(v, 2)); got != 2 {
			t.Fatalf("VertexPoint returned %d coords, want 2", got)
		}
	}
	if len(vertexIDs) != 4 {
		t.Fatalf("traversed %d vertices, want 4", len(vertexIDs))
	}

	facets := 0
	for f := c.FirstFacet(); f != 0; f = c.NextFacet(f) {
		facets++
		vs := c.FacetVertices(f)
		if len(vs) != 2 {
			t.Fatalf("2D facet has %d vertices, want 2", len(vs))
		}
		for _, v := range vs {
			if !vertexIDs[c.VertexID(v)] {
				t.Fatalf("facet %d references vertex %d outside the vertex list",
					c.FacetID(f), c.VertexID(v))
			}
		}
		if got := len(c.FacetNormal(f, 2)); got != 2 {
			t.Fatalf("facet normal has %d coords, want 2", got)
		}
	}
	if facets != 4 {
		t.Fatalf("traversed %d facets, want 4", facets)
	}
}

var cubeCoords = []float64{
	0, 0, 0,
	1, 0, 0,
	0, 1, 0,
	1, 1, 0,
	0, 0, 1,
	1, 0, 1,
	0, 1, 1,
	1, 1, 1,
}

// A 3D cube's coplanar triangles merge into square facets, so every
// facet is non-simplicial and carries an explicit ridge set.
func TestRidgeTraversal(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()
	if err := c.InitFlags("qhull"); err != nil {
		t.Fatalf("InitFlags failed: %v", err)
	}
	if err := c.InitPoints(cubeCoords, 3, 8); err != nil {
		t.Fatalf("InitPoints failed: %v", err)
	}
	if err := c.Compute(); err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if got := c.NumFacets(); got != 6 {
		t.Fatalf("NumFacets = %d, want 6", got)
	}

	for f := c.FirstFacet(); f != 0; f = c.NextFacet(f) {
		if c.FacetSimplicial(f) {
			t.Fatalf("facet %d is simplicial, expected merged cube faces", c.FacetID(f))
		}
		rs := c.FacetRidges(f)
		if len(rs) != 4 {
			t.Fatalf("facet %d has %d ridges, want 4", c.FacetID(f), len(rs))
		}
		for _, r := range rs {
			if got := len(c.RidgeVertices(r)); got != 2 {
				t.Fatalf("ridge %d has %d vertices, want 2", c.RidgeID(r), got)
			}
			top, bottom := c.RidgeTop(r), c.RidgeBottom(r)
			if top == 0 || bottom == 0 {
				t.Fatalf("ridge %d has a nil bounding facet", c.RidgeID(r))
			}
			if top != f && bottom != f {
				t.Fatalf("ridge %d does not border facet %d", c.RidgeID(r), c.FacetID(f))
			}
		}
	}
}

func TestComputeErrorCarriesNativeCode(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()
	if err := c.InitFlags("qhull"); err != nil {
		t.Fatalf("InitFlags failed: %v", err)
	}

	// Two 3D points cannot seed an initial simplex.
	err = c.InitPoints([]float64{0, 0, 0, 1, 1, 1}, 3, 2)
	if err == nil {
		err = c.Compute()
	}
	var ne *NativeError
	if !errors.As(err, &ne) {
		t.Fatalf("degenerate input: got %v, want *NativeError", err)
	}
	if ne.Code == CodeNone {
		t.Fatalf("native error carries no code: %+v", ne)
	}
}
