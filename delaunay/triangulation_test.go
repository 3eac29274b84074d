package delaunay_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/delaunay"
	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finite(coords ...[]float64) []geom.Point {
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		pts[i] = geom.NewFinite(c...)
	}

	return pts
}

// Scenario 1: a single triangle yields exactly one finite Face.
func TestNewTriangulation_Triangle(t *testing.T) {
	pts := finite([]float64{0, 0}, []float64{1, 0}, []float64{0, 1})
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)

	sets := tri.FacePointSets(false)
	require.Len(t, sets, 1)
	assert.True(t, sets[0].Equal(delaunay.FacePointSet{Points: pts}))
	assert.True(t, tri.TestIsDelaunay())
}

// Scenario 2: a unit square yields exactly two finite triangles.
func TestNewTriangulation_Square(t *testing.T) {
	pts := finite([]float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 1})
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)

	sets := tri.FacePointSets(false)
	assert.Len(t, sets, 2)
	assert.True(t, tri.TestIsDelaunay())
}

// Scenario 3: a cocircular quad must raise GeneralPositionError at some
// insertion, because a side-0 HalfFacet appears.
func TestNewTriangulation_CocircularQuad_RejectsGeneralPosition(t *testing.T) {
	pts := finite([]float64{0, 0}, []float64{2, 0}, []float64{2, 2}, []float64{0, 2})
	_, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.ErrorIs(t, err, topology.ErrGeneralPosition)
}

// Scenario 4: five points with the origin inside the hull of the other
// four yield exactly four finite triangles, each containing the origin.
func TestNewTriangulation_FivePointsConvex(t *testing.T) {
	pts := finite(
		[]float64{0, 0}, []float64{1, 0}, []float64{0, 1},
		[]float64{-1, 0}, []float64{0, -1},
	)
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)

	sets := tri.FacePointSets(false)
	require.Len(t, sets, 4)
	origin := geom.NewFinite(0, 0)
	for _, s := range sets {
		found := false
		for _, p := range s.Points {
			if p.Equal(origin) {
				found = true

				break
			}
		}
		assert.True(t, found, "every triangle must contain the origin")
	}
	assert.True(t, tri.TestIsDelaunay())
}

// Scenario 5: a duplicate insertion is a no-op; the result matches the
// three-point triangulation of scenario 1.
func TestNewTriangulation_DuplicateInsertion_IsNoOp(t *testing.T) {
	pts := finite([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{1, 0})
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)

	sets := tri.FacePointSets(false)
	require.Len(t, sets, 1)
	assert.True(t, sets[0].Equal(delaunay.FacePointSet{
		Points: finite([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}),
	}))
}

// Scenario 6: a 3D tetrahedron yields exactly one finite 3-simplex.
func TestNewTriangulation_Tetrahedron3D(t *testing.T) {
	pts := finite(
		[]float64{0, 0, 0}, []float64{1, 0, 0},
		[]float64{0, 1, 0}, []float64{0, 0, 1},
	)
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)
	assert.Equal(t, 3, tri.Dimension())

	sets := tri.FacePointSets(false)
	require.Len(t, sets, 1)
	assert.Len(t, sets[0].Points, 4)
	assert.True(t, tri.TestIsDelaunay())
}

// Law: face_point_sets is invariant under an insertion permutation.
func TestNewTriangulation_PermutationInvariance(t *testing.T) {
	a := finite([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{-1, -1})
	b := finite([]float64{-1, -1}, []float64{0, 1}, []float64{1, 0}, []float64{0, 0})

	t1, err := delaunay.NewTriangulation(a, delaunay.WithRandomize(false))
	require.NoError(t, err)
	t2, err := delaunay.NewTriangulation(b, delaunay.WithRandomize(false))
	require.NoError(t, err)

	s1, s2 := t1.FacePointSets(true), t2.FacePointSets(true)
	require.Equal(t, len(s1), len(s2))
	for _, set1 := range s1 {
		matched := false
		for _, set2 := range s2 {
			if set1.Equal(set2) {
				matched = true

				break
			}
		}
		assert.True(t, matched, "face %v missing from permuted triangulation", set1.Points)
	}
}

// Invariant: every HalfFacet's twin (when present) agrees on vertex set
// and has the opposite side sign.
func TestNewTriangulation_TwinInvariant(t *testing.T) {
	pts := finite([]float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 1})
	tri, err := delaunay.NewTriangulation(pts, delaunay.WithRandomize(false))
	require.NoError(t, err)

	for _, f := range tri.Complex().Faces() {
		for _, h := range f.HalfFacets() {
			twin := h.Twin()
			if twin == nil {
				continue
			}
			assert.Same(t, h, twin.Twin())
			assert.ElementsMatch(t, h.Vertices(), twin.Vertices())
			assert.Equal(t, -h.Side(), twin.Side())
		}
	}
}
