package predicate

import (
	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/linalg"
)

// InfinityScale is the constant K used to "finitize" a direction-at-infinity
// point before the paraboloid lift in InSphere (spec.md §4.2 step 2, §9 Open
// Question: the safe range depends on the coordinate magnitudes expected in
// practice — exposed as a variable rather than a hardcoded literal so
// callers working at unusual scales can override it).
var InfinityScale float64 = 1e9

// InSphere returns +1 when q lies strictly inside the d-ball circumscribing
// (p0,...,pd), -1 when strictly outside, 0 when exactly on the sphere.
//
// Steps (spec.md §4.2):
//  1. Take homogeneous (d+1)-tuples.
//  2. Any point with weight 0 (direction at infinity) is scaled by
//     InfinityScale and then has 1 added to its tail, "finitizing" it at a
//     far but finite coordinate.
//  3. Each resulting vector is lifted by appending the squared Euclidean
//     norm of its non-homogeneous prefix (lifting to the paraboloid).
//  4. Return the negated sign of the resulting (d+2)x(d+2) determinant — the
//     negation accounts for the row-swap needed to reach the textbook
//     in-sphere layout.
func InSphere(points ...geom.Point) (int, error) {
	vectors := make([]geom.Point, len(points))
	for i, p := range points {
		v := p
		if v.Weight() == 0 {
			v = v.Scale(InfinityScale).WithTailAdded(1)
		}
		vectors[i] = v.Lift(v.NormSquared())
	}

	cols := make([][]float64, len(vectors))
	for i, v := range vectors {
		cols[i] = v.Raw()
	}

	m, err := linalg.NewDenseFromColumns(cols...)
	if err != nil {
		return 0, err
	}
	sign, err := m.SignDet()
	if err != nil {
		return 0, err
	}

	return -sign, nil
}
