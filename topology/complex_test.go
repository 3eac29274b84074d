package topology_test

import (
	"testing"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexFor_DeduplicatesByPoint(t *testing.T) {
	c := topology.NewComplex(2)
	p := geom.NewFinite(1, 1)

	v1, err := c.VertexFor(p)
	require.NoError(t, err)
	v2, err := c.VertexFor(p)
	require.NoError(t, err)

	assert.Same(t, v1, v2, "VertexFor must return the same Vertex for an equal Point")
	assert.Equal(t, 1, c.VertexCount())
}

func TestVertexFor_DimensionMismatch(t *testing.T) {
	c := topology.NewComplex(3)
	_, err := c.VertexFor(geom.NewFinite(1, 1))
	require.ErrorIs(t, err, topology.ErrDimensionMismatch)
}

func TestNewOuterFace_CoversAllOfSpace(t *testing.T) {
	c := topology.NewComplex(2)
	f, err := topology.NewOuterFace(c)
	require.NoError(t, err)

	assert.Equal(t, 1, c.FaceCount())
	assert.Len(t, f.Vertices(), 3)
	for _, v := range f.Vertices() {
		assert.False(t, v.Point().IsFinite(), "outer face vertices are directions at infinity")
	}
}

func TestShatterFace_RemovesFromComplex(t *testing.T) {
	c := topology.NewComplex(2)
	f, err := topology.NewOuterFace(c)
	require.NoError(t, err)

	facets := c.ShatterFace(f)
	assert.Len(t, facets, 3)
	assert.Equal(t, 0, c.FaceCount())
	assert.False(t, c.HasFace(f))
}

func TestFacetPop_NoTwinErrors(t *testing.T) {
	c := topology.NewComplex(2)
	f, err := topology.NewOuterFace(c)
	require.NoError(t, err)

	h := f.HalfFacets()[0]
	_, _, err = c.FacetPop(h)
	require.ErrorIs(t, err, topology.ErrNoTwin)
}

func TestFacetPop_ShattersTwinFaceExcludingTwin(t *testing.T) {
	c := topology.NewComplex(2)
	a := vertex(t, c, 0, 0)
	b := vertex(t, c, 1, 0)
	cc := vertex(t, c, 0, 1)
	d := vertex(t, c, 1, 1)

	f1, err := topology.NewFace(2, []*topology.Vertex{a, b, cc}, nil)
	require.NoError(t, err)
	f2, err := topology.NewFace(2, []*topology.Vertex{b, cc, d}, nil)
	require.NoError(t, err)
	c.AddFace(f1)
	c.AddFace(f2)

	h1, _ := f1.HalfFacetOpposite(a)
	h2, _ := f2.HalfFacetOpposite(d)
	topology.LinkTwins(h1, h2)

	out, popped, err := c.FacetPop(h1)
	require.NoError(t, err)
	assert.True(t, popped)
	assert.False(t, c.HasFace(f2))
	assert.True(t, c.HasFace(f1))
	for _, hf := range out {
		assert.NotSame(t, h2, hf)
	}
	assert.Len(t, out, 2)
}

func TestHasInserted_TracksPointHistory(t *testing.T) {
	c := topology.NewComplex(2)
	p := geom.NewFinite(3, 4)

	assert.False(t, c.HasInserted(p))
	c.RecordInsertion(p)
	assert.True(t, c.HasInserted(p))
}

func TestSortedVertices_DeterministicOrder(t *testing.T) {
	c := topology.NewComplex(2)
	_ = vertex(t, c, 2, 2)
	_ = vertex(t, c, 0, 0)
	_ = vertex(t, c, 1, 1)

	sorted := c.SortedVertices()
	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		assert.True(t, sorted[i-1].Less(sorted[i]))
	}
}
