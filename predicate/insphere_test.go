package predicate_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInSphere_InsideUnitCircle(t *testing.T) {
	// Counter-clockwise triangle (1,0),(0,1),(-1,0) circumscribes the unit
	// circle centered at the origin; the origin is inside.
	p0 := geom.NewFinite(1, 0)
	p1 := geom.NewFinite(0, 1)
	p2 := geom.NewFinite(-1, 0)
	q := geom.NewFinite(0, 0)

	sign, err := predicate.InSphere(p0, p1, p2, q)
	require.NoError(t, err)
	assert.Equal(t, 1, sign)
}

func TestInSphere_OutsideUnitCircle(t *testing.T) {
	p0 := geom.NewFinite(1, 0)
	p1 := geom.NewFinite(0, 1)
	p2 := geom.NewFinite(-1, 0)
	q := geom.NewFinite(10, 10)

	sign, err := predicate.InSphere(p0, p1, p2, q)
	require.NoError(t, err)
	assert.Equal(t, -1, sign)
}

func TestInSphere_Cocircular(t *testing.T) {
	// Square (0,0),(2,0),(2,2),(0,2): all four corners lie on the same circle.
	p0 := geom.NewFinite(0, 0)
	p1 := geom.NewFinite(2, 0)
	p2 := geom.NewFinite(2, 2)
	q := geom.NewFinite(0, 2)

	sign, err := predicate.InSphere(p0, p1, p2, q)
	require.NoError(t, err)
	assert.Equal(t, 0, sign)
}

func TestInSphere_InfinityScaleOverride(t *testing.T) {
	old := predicate.InfinityScale
	defer func() { predicate.InfinityScale = old }()
	predicate.InfinityScale = 1e6

	p0 := geom.NewFinite(1, 0)
	p1 := geom.NewFinite(-1, 0)
	p2 := geom.NewDirection(0, 1)
	q := geom.NewFinite(0, 0)

	_, err := predicate.InSphere(p0, p1, p2, q)
	require.NoError(t, err)
}
