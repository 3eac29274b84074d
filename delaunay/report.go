package delaunay

import (
	"sort"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/topology"
)

// FacePointSet is one Face rendered as its set of Points, in deterministic
// (lexicographic) order. Equal compares as a set, ignoring order.
type FacePointSet struct {
	Points []geom.Point
}

// Equal reports whether s and other contain the same Points, ignoring
// order and Point value duplication rules (each element of s is matched
// against a distinct element of other).
func (s FacePointSet) Equal(other FacePointSet) bool {
	if len(s.Points) != len(other.Points) {
		return false
	}
	used := make([]bool, len(other.Points))
	for _, p := range s.Points {
		matched := false
		for j, q := range other.Points {
			if !used[j] && p.Equal(q) {
				used[j] = true
				matched = true

				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// FacePointSets returns every current Face that does not touch the outer
// face's directional Vertices, each as a FacePointSet (spec.md §4.7). When
// homogeneous is false, Points are re-expressed as finite Euclidean points
// (weight re-set to 1); when true, the original homogeneous coordinates
// are returned unchanged. Order is deterministic (topology.Complex's
// sorted views) so repeated calls and calls after re-insertion of the same
// point set compare equal.
func (t *Triangulation) FacePointSets(homogeneous bool) []FacePointSet {
	faces := t.complex.SortedFaces()
	out := make([]FacePointSet, 0, len(faces))

	for _, f := range faces {
		if t.touchesOuter(f) {
			continue
		}

		verts := f.Vertices()
		pts := make([]geom.Point, 0, len(verts))
		for _, v := range verts {
			pts = append(pts, v.Point())
		}
		sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

		if !homogeneous {
			for i, p := range pts {
				pts[i] = geom.NewFinite(p.NonHomogeneous()...)
			}
		}

		out = append(out, FacePointSet{Points: pts})
	}

	return out
}

// touchesOuter reports whether f includes any of the d+1 directional
// outer-face Vertices installed at construction.
func (t *Triangulation) touchesOuter(f *topology.Face) bool {
	for _, v := range f.Vertices() {
		if t.isOuter(v) {
			return true
		}
	}

	return false
}

// TestIsDelaunay verifies that every HalfFacet of every current Face is
// locally Delaunay with respect to its own Face's opposite Vertex — the
// global Delaunay property restated as a local check per HalfFacet
// (spec.md §8, grounded on
// original_source/pyVor/structures.py:test_is_delaunay).
func (t *Triangulation) TestIsDelaunay() bool {
	for _, f := range t.complex.Faces() {
		for _, h := range f.HalfFacets() {
			ok, err := locallyDelaunay(h, h.Opposite())
			if err != nil || !ok {
				return false
			}
		}
	}

	return true
}
