package voronoi_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircumcenter_RightTriangle(t *testing.T) {
	pts := []geom.Point{
		geom.NewFinite(0, 0),
		geom.NewFinite(2, 0),
		geom.NewFinite(0, 2),
	}
	c, err := voronoi.Circumcenter(pts)
	require.NoError(t, err)

	got := c.NonHomogeneous()
	assert.InDelta(t, 1, got[0], 1e-9)
	assert.InDelta(t, 1, got[1], 1e-9)
}

func TestCircumcenter_WrongPointCount(t *testing.T) {
	pts := []geom.Point{geom.NewFinite(0, 0), geom.NewFinite(1, 0)}
	_, err := voronoi.Circumcenter(pts)
	require.ErrorIs(t, err, voronoi.ErrWrongPointCount)
}

func TestCircumcenter_CollinearIsSingular(t *testing.T) {
	pts := []geom.Point{
		geom.NewFinite(0, 0),
		geom.NewFinite(1, 1),
		geom.NewFinite(2, 2),
	}
	_, err := voronoi.Circumcenter(pts)
	require.ErrorIs(t, err, voronoi.ErrSingularMatrix)
}
