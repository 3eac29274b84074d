package delaunay

import (
	"context"

	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
	"github.com/katalvlaran/delaunay/topology"
)

// Insert adds p to the Triangulation (spec.md §4.5). It is idempotent: if
// p has already been inserted (by Point equality), Insert returns nil
// without change. ctx is checked once, before any work begins, giving
// per-insertion cancellation granularity (spec.md §5).
//
// Algorithm: locate the Face containing p, shatter it into its boundary
// HalfFacets, then repeatedly pop the Face across any boundary HalfFacet
// that is not locally Delaunay with respect to p, until every remaining
// boundary HalfFacet is. A new Face is built over each surviving boundary
// HalfFacet and p, and the new Faces are twin-linked pairwise.
func (t *Triangulation) Insert(ctx context.Context, p geom.Point) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Dimension() != t.complex.Dimension() {
		return ErrDimensionMismatch
	}
	if t.complex.HasInserted(p) {
		return nil
	}

	face, err := t.locate(p)
	if err != nil {
		return err
	}

	boundary := t.complex.ShatterFace(face)
	for _, h := range boundary {
		t.cfg.observer.highlightEdge(h)
	}

	v, err := t.complex.VertexFor(p)
	if err != nil {
		return err
	}

	good, err := t.expandCavity(boundary, v)
	if err != nil {
		return err
	}

	newFaces, err := t.fillCavity(good, v)
	if err != nil {
		return err
	}

	linkNewTwins(newFaces)

	for _, nf := range newFaces {
		t.complex.AddFace(nf)
		t.cfg.observer.drawCircle(nf)
	}
	t.complex.RecordInsertion(p)
	t.cfg.observer.drawTriangulation(t)

	return nil
}

// expandCavity grows the cavity boundary starting from the HalfFacets of
// the located Face, popping across any HalfFacet that fails the local
// Delaunay test against v, and returns the stable boundary (spec.md §4.5
// steps 3-4).
func (t *Triangulation) expandCavity(boundary []*topology.HalfFacet, v *topology.Vertex) ([]*topology.HalfFacet, error) {
	work := append([]*topology.HalfFacet(nil), boundary...)
	good := make([]*topology.HalfFacet, 0, len(boundary))

	for len(work) > 0 {
		h := work[len(work)-1]
		work = work[:len(work)-1]

		ok, err := locallyDelaunay(h, v)
		if err != nil {
			return nil, err
		}
		if ok {
			good = append(good, h)

			continue
		}
		t.cfg.observer.deleteEdge(h)

		opened, popped, err := t.complex.FacetPop(h)
		if err != nil {
			return nil, err
		}
		if !popped {
			// h's twin's Face was already consumed by another branch of
			// the expansion; h itself is discarded (spec.md §4.5 step 4).
			continue
		}
		work = append(work, opened...)
	}

	return good, nil
}

// fillCavity builds one new Face per surviving boundary HalfFacet, reusing
// each HalfFacet as the new Face's facet opposite v (spec.md §4.3 "reuse
// the supplied HalfFacet", §4.5 step 5).
func (t *Triangulation) fillCavity(good []*topology.HalfFacet, v *topology.Vertex) ([]*topology.Face, error) {
	newFaces := make([]*topology.Face, 0, len(good))
	for _, h := range good {
		vertices := append(h.Vertices(), v)
		initial := map[*topology.Vertex]*topology.HalfFacet{v: h}

		nf, err := topology.NewFace(t.complex.Dimension(), vertices, initial)
		if err != nil {
			return nil, err
		}
		newFaces = append(newFaces, nf)
	}

	return newFaces, nil
}

// locallyDelaunay reports whether HalfFacet h remains locally Delaunay
// once v is treated as the apex of the Face on h's far side (spec.md §4.5
// step 3). A boundary HalfFacet (twin == nil) is always locally Delaunay:
// there is no neighboring Face whose circumsphere v could violate.
func locallyDelaunay(h *topology.HalfFacet, v *topology.Vertex) (bool, error) {
	twin := h.Twin()
	if twin == nil {
		return true, nil
	}

	pts := make([]geom.Point, 0, len(twin.Points())+2)
	pts = append(pts, twin.Points()...)
	pts = append(pts, twin.Opposite().Point(), v.Point())

	sign, err := predicate.InSphere(pts...)
	if err != nil {
		return false, err
	}

	return twin.Side()*sign <= 0, nil
}

// linkNewTwins twin-links every pair of Faces in newFaces whose vertex
// sets differ by exactly one Vertex on each side — the HalfFacet of each
// opposite its unique Vertex is the other's matching facet (spec.md §4.5
// step 6).
func linkNewTwins(faces []*topology.Face) {
	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			u1, u2, ok := uniqueVertices(faces[i], faces[j])
			if !ok {
				continue
			}
			h1, ok1 := faces[i].HalfFacetOpposite(u1)
			h2, ok2 := faces[j].HalfFacetOpposite(u2)
			if !ok1 || !ok2 {
				continue
			}
			topology.LinkTwins(h1, h2)
		}
	}
}

// uniqueVertices returns the single Vertex unique to f1 and the single
// Vertex unique to f2, when their vertex sets' symmetric difference has
// exactly one Vertex on each side.
func uniqueVertices(f1, f2 *topology.Face) (u1, u2 *topology.Vertex, ok bool) {
	v2 := make(map[*topology.Vertex]bool)
	for _, v := range f2.Vertices() {
		v2[v] = true
	}
	v1 := make(map[*topology.Vertex]bool)
	for _, v := range f1.Vertices() {
		v1[v] = true
	}

	for v := range v1 {
		if !v2[v] {
			if u1 != nil {
				return nil, nil, false
			}
			u1 = v
		}
	}
	for v := range v2 {
		if !v1[v] {
			if u2 != nil {
				return nil, nil, false
			}
			u2 = v
		}
	}

	return u1, u2, u1 != nil && u2 != nil
}
