package qhull

// Pure input transformations. Everything here runs before the native
// call and is independent of cgo.

// liftToParaboloid maps dim-dimensional points onto the paraboloid in
// dimension dim+1: the extra coordinate is the sum of squared offsets
// from the centroid, normalized by the half-width of each axis. The
// convex hull of the lifted points projects back to the Delaunay
// triangulation.
func liftToParaboloid(points [][]float64, dim int) [][]float64 {
	n := len(points)
	center := make([]float64, dim)
	min := make([]float64, dim)
	max := make([]float64, dim)
	for i := range min {
		min[i] = points[0][i]
		max[i] = points[0][i]
	}
	for _, p := range points {
		for i := 0; i < dim; i++ {
			center[i] += p[i]
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	for i := range center {
		center[i] /= float64(n)
	}
	widths := make([]float64, dim)
	for i := range widths {
		widths[i] = (max[i] - min[i]) / 2
		if widths[i] == 0 {
			widths[i] = 1
		}
	}

	lifted := make([][]float64, n)
	for j, p := range points {
		q := make([]float64, dim+1)
		copy(q, p[:dim])
		for i := 0; i < dim; i++ {
			d := (p[i] - center[i]) / widths[i]
			q[dim] += d * d
		}
		lifted[j] = q
	}
	return lifted
}

// halfspaceDistance evaluates a halfspace (normal coefficients plus
// offset) at a point. Negative means strictly inside.
func halfspaceDistance(halfspace, point []float64) float64 {
	dim := len(point)
	dist := halfspace[dim]
	for i := 0; i < dim; i++ {
		dist += halfspace[i] * point[i]
	}
	return dist
}

// halfspaceDuals maps each halfspace to its dual point about the
// interior point: normal / -(offset + normal·interior). The convex
// hull of the duals corresponds to the halfspace intersection. Callers
// must have validated that interior is strictly inside every
// halfspace.
func halfspaceDuals(halfspaces [][]float64, interior []float64) [][]float64 {
	dim := len(interior)
	duals := make([][]float64, len(halfspaces))
	for j, hs := range halfspaces {
		dist := halfspaceDistance(hs, interior)
		d := make([]float64, dim)
		for i := 0; i < dim; i++ {
			d[i] = hs[i] / -dist
		}
		duals[j] = d
	}
	return duals
}

func flattenPoints(points [][]float64) []float64 {
	if len(points) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(points)*len(points[0]))
	for _, p := range points {
		flat = append(flat, p...)
	}
	return flat
}
