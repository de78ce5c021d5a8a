package arc

// DefaultPolygonSteps is the sample count for arc polygons. Higher values
// reduce faceting at large radii at the cost of more vertices.
const DefaultPolygonSteps = 360

// Polygon approximates the annular sector between startDeg and endDeg as a
// closed polygon suitable for anti-aliased filling. The outer boundary is
// sampled at steps uniform increments, the inner one at the same increments
// in reverse order, so the result never self-intersects and always holds
// exactly 2*(steps+1) points.
//
// A thickness at or beyond the outer radius clamps the inner boundary to the
// center, turning the ring into a filled wedge. A zero-length sweep yields a
// nil polygon.
func Polygon(center Point, startDeg, endDeg, outerRadius, thickness float64, steps int) []Point {
	if startDeg == endDeg {
		return nil
	}
	if steps < 1 {
		steps = DefaultPolygonSteps
	}
	inner := outerRadius - thickness
	if inner < 0 {
		inner = 0
	}

	pts := make([]Point, 0, 2*(steps+1))
	span := endDeg - startDeg
	for i := 0; i <= steps; i++ {
		a := startDeg + span*float64(i)/float64(steps)
		pts = append(pts, PointOn(center, outerRadius, a))
	}
	for i := steps; i >= 0; i-- {
		a := startDeg + span*float64(i)/float64(steps)
		pts = append(pts, PointOn(center, inner, a))
	}
	return pts
}
