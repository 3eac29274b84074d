package topology

import "github.com/katalvlaran/delaunay/geom"

// OuterFacePoints returns the d+1 directional Points whose "simplex"
// conceptually covers all of R^d: the d standard-basis directions
// e_i = (0,...,1,...,0) (a 1 in slot i) together with one extra direction
// (-1,...,-1). Every Point has homogeneous weight 0 (spec.md §4.4).
func OuterFacePoints(dimension int) []geom.Point {
	points := make([]geom.Point, 0, dimension+1)
	for i := 0; i < dimension; i++ {
		coords := make([]float64, dimension)
		coords[i] = 1
		points = append(points, geom.NewDirection(coords...))
	}
	extra := make([]float64, dimension)
	for i := range extra {
		extra[i] = -1
	}
	points = append(points, geom.NewDirection(extra...))

	return points
}

// NewOuterFace seeds a fresh Complex with the single Face formed by the
// directional outer-face Vertices (spec.md §4.4). It is the only Face the
// Complex contains before any user Point is inserted.
func NewOuterFace(c *Complex) (*Face, error) {
	pts := OuterFacePoints(c.Dimension())
	vertices := make([]*Vertex, len(pts))
	for i, p := range pts {
		v, err := c.VertexFor(p)
		if err != nil {
			return nil, err
		}
		vertices[i] = v
	}

	f, err := NewFace(c.Dimension(), vertices, nil)
	if err != nil {
		return nil, err
	}
	c.AddFace(f)

	return f, nil
}
