package predicate

import (
	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/linalg"
)

// Orient returns the sign of the determinant of the matrix whose columns
// are the given points' homogeneous tuples:
//
//	+1  points are in positively oriented ("counter-clockwise") configuration
//	-1  negatively oriented
//	 0  affinely dependent (collinear / coplanar / ...)
//
// If every input point has weight 0 (all directions at infinity), the
// determinant is zero by construction, so Orient appends the auxiliary
// point (0,...,0,-1) and recurses one dimension up — this is the
// convention that makes infinite directions orient consistently with their
// finite neighborhoods (spec.md §4.2).
func Orient(points ...geom.Point) (int, error) {
	allInfinite := true
	for _, p := range points {
		if p.IsFinite() {
			allInfinite = false

			break
		}
	}

	if allInfinite {
		// Build the auxiliary point (0,...,0,-1): it has the same length as
		// the inputs (d zeros followed by -1), matching
		// original_source/pyVor/predicates.py's
		// `Point(*(0 for i in range(len(points[0]) - 1)), -1)`.
		zeros := make([]float64, points[0].Dimension())
		extra, err := geom.NewPoint(append(zeros, -1)...)
		if err != nil {
			return 0, err
		}

		// Recurse one dimension up: every point (including the auxiliary
		// one) is padded with a uniform extra coordinate of 1, regardless
		// of its original homogeneous weight.
		withExtra := append(append([]geom.Point(nil), points...), extra)
		lifted := make([]geom.Point, len(withExtra))
		for i, p := range withExtra {
			lifted[i] = p.Lift(1)
		}

		return orientColumns(lifted)
	}

	return orientColumns(points)
}

func orientColumns(points []geom.Point) (int, error) {
	cols := make([][]float64, len(points))
	for i, p := range points {
		cols[i] = p.Raw()
	}

	m, err := linalg.NewDenseFromColumns(cols...)
	if err != nil {
		return 0, err
	}

	return m.SignDet()
}
