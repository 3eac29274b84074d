package voronoi

import (
	"errors"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/linalg"
	"github.com/katalvlaran/delaunay/predicate"
)

// Circumcenter returns the unique point equidistant from all d+1 given
// points — the unique solution of the linear system obtained by equating
// |c-p_i|^2 across i (spec.md §4.8). A direction-at-infinity point (weight
// 0) is first "finitized" exactly as predicate.InSphere does — scaled by
// predicate.InfinityScale and re-lifted to weight 1 — so a Face that
// touches the outer face still yields a (far, finite) approximate
// circumcenter usable by the infinite-edge reconstruction in New.
func Circumcenter(points []geom.Point) (geom.Point, error) {
	if len(points) == 0 {
		return geom.Point{}, ErrWrongPointCount
	}
	d := points[0].Dimension()
	if len(points) != d+1 {
		return geom.Point{}, ErrWrongPointCount
	}

	finite := make([]geom.Point, len(points))
	for i, p := range points {
		if p.Weight() == 0 {
			finite[i] = p.Scale(predicate.InfinityScale).WithTailAdded(1)
		} else {
			finite[i] = p
		}
	}

	p0 := finite[0].NonHomogeneous()
	A, err := linalg.NewDense(d, d)
	if err != nil {
		return geom.Point{}, err
	}
	b := make([]float64, d)
	for i := 1; i <= d; i++ {
		pi := finite[i].NonHomogeneous()
		var rhs float64
		for k := 0; k < d; k++ {
			if err := A.Set(i-1, k, 2*(pi[k]-p0[k])); err != nil {
				return geom.Point{}, err
			}
			rhs += pi[k]*pi[k] - p0[k]*p0[k]
		}
		b[i-1] = rhs
	}

	x, err := linalg.Solve(A, b)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return geom.Point{}, ErrSingularMatrix
		}

		return geom.Point{}, err
	}

	return geom.NewFinite(x...), nil
}
