package delaunay

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/topology"
)

// Triangulation is an incrementally maintained Delaunay triangulation of a
// set of d-dimensional Points, backed by a topology.Complex (spec.md §3-4).
// It is single-threaded and synchronous: no exported method blocks or
// suspends, and concurrent calls from multiple goroutines are not
// supported without external synchronization (spec.md §5).
type Triangulation struct {
	complex  *topology.Complex
	cfg      config
	outerSet map[*topology.Vertex]bool
}

// NewTriangulation builds a Triangulation containing the outer face
// (spec.md §4.4) and then inserts every Point of points in turn, in the
// order given unless WithRandomize(true) (the default) requests a shuffle
// first. Returns ErrEmptyInput if points is empty, or the first error any
// Insert reports (DimensionMismatch, GeneralPositionError).
func NewTriangulation(points []geom.Point, opts ...Option) (*Triangulation, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dimension := points[0].Dimension()
	t := &Triangulation{
		complex: topology.NewComplex(dimension),
		cfg:     cfg,
	}

	outer, err := topology.NewOuterFace(t.complex)
	if err != nil {
		return nil, err
	}
	t.outerSet = make(map[*topology.Vertex]bool, len(outer.Vertices()))
	for _, v := range outer.Vertices() {
		t.outerSet[v] = true
	}

	ordered := points
	if cfg.randomize {
		ordered = append([]geom.Point(nil), points...)
		shuffle := ordered
		swap := func(i, j int) { shuffle[i], shuffle[j] = shuffle[j], shuffle[i] }
		if cfg.rng != nil {
			cfg.rng.Shuffle(len(shuffle), swap)
		} else {
			rand.Shuffle(len(shuffle), swap)
		}
	}

	ctx := context.Background()
	for _, p := range ordered {
		if err := t.Insert(ctx, p); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Dimension returns d, the Triangulation's ambient dimension.
func (t *Triangulation) Dimension() int { return t.complex.Dimension() }

// Complex exposes the underlying simplicial complex for packages that
// derive a second structure from it (e.g. voronoi.New).
func (t *Triangulation) Complex() *topology.Complex { return t.complex }

// isOuter reports whether v is one of the d+1 directional outer-face
// Vertices installed at construction.
func (t *Triangulation) isOuter(v *topology.Vertex) bool { return t.outerSet[v] }
