package linalg

import (
	"gonum.org/v1/gonum/mat"
)

// Solve returns x such that A*x = b for a square A, delegating to
// gonum.org/v1/gonum/mat for the pivoted LU solve. This is the path the
// Voronoi extractor uses for circumcenter computation (spec.md §4.8: "the
// unique point equidistant from all d+1 Face vertices, solvable as a linear
// system") — unlike SignDet, exactness on degenerate input is not a
// requirement here, so a battle-tested numerical solver is the right tool:
// a hand-rolled solve would just be reinventing gonum with worse pivoting.
func Solve(A *Dense, b []float64) ([]float64, error) {
	if A.r != A.c {
		return nil, ErrNonSquare
	}
	if len(b) != A.r {
		return nil, ErrDimensionMismatch
	}

	ga := mat.NewDense(A.r, A.c, nil)
	for i := 0; i < A.r; i++ {
		for j := 0; j < A.c; j++ {
			v, _ := A.At(i, j)
			ga.Set(i, j, v)
		}
	}
	gb := mat.NewDense(A.r, 1, append([]float64(nil), b...))

	var x mat.Dense
	if err := x.Solve(ga, gb); err != nil {
		// Any failure surfaced by gonum's solver (singular or
		// ill-conditioned input) maps to ErrSingular in our domain: a
		// degenerate Face has no well-defined circumcenter.
		return nil, ErrSingular
	}

	out := make([]float64, A.r)
	for i := 0; i < A.r; i++ {
		out[i] = x.At(i, 0)
	}

	return out, nil
}
