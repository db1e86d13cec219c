// Package qhull exposes a safe Go API over the Qhull computational
// geometry library (convex hull, Delaunay triangulation, Voronoi
// diagram, halfspace intersection).
//
// The native library signals fatal errors with longjmp. Every fallible
// native call in this package runs under a guard that registers the
// recovery point in a minimal C frame and translates a caught jump
// into an ordinary error, so a native failure can never unwind Go
// stack frames. See internal/bindings for the mechanism.
//
// Usage:
//
//	hull, err := qhull.New(2).
//		AddPoint(0, 0).
//		AddPoint(1, 0).
//		AddPoint(0, 1).
//		AddPoint(1, 1).
//		Compute()
//	if err != nil {
//		// *ValidationError, *InitError or *ComputeError
//	}
//	defer hull.Close()
//
//	for f := range hull.Facets() {
//		vs, _ := f.Vertices()
//		for v := range vs {
//			fmt.Println(f.ID(), v.ID(), v.Point())
//		}
//	}
//
// A Hull owns its native context. Facet, Vertex and Ridge values are
// views into the hull's output graph and are valid only until Close;
// using one afterwards panics. A Hull is not safe for concurrent use,
// but independent hulls may be computed on separate goroutines.
package qhull
