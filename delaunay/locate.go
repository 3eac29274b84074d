package delaunay

import (
	"github.com/katalvlaran/delaunay/geom"
	"github.com/katalvlaran/delaunay/predicate"
	"github.com/katalvlaran/delaunay/topology"
)

// Locate walks the Complex from an arbitrary starting Face towards the
// Face containing p, crossing a HalfFacet whenever p lies on its far side
// (spec.md §4.6 "visibility walk"). Grounded on
// original_source/pyVor/structures.py:DelaunayTriangulation.locate.
func (t *Triangulation) Locate(p geom.Point) (*topology.Face, error) {
	return t.locate(p)
}

func (t *Triangulation) locate(p geom.Point) (*topology.Face, error) {
	face, ok := t.complex.ArbitraryFace()
	if !ok {
		return nil, ErrEmptyComplex
	}

	for {
		t.cfg.observer.drawPointLocate(face)

		next, crossed, err := lineside(face, p)
		if err != nil {
			return nil, err
		}
		if !crossed {
			return face, nil
		}
		face = next
	}
}

// lineside scans face's HalfFacets for one p lies strictly on the far side
// of, and reports the Face across it. If p is on the near side (or exactly
// on) every HalfFacet, crossed is false and face is the located Face.
func lineside(face *topology.Face, p geom.Point) (next *topology.Face, crossed bool, err error) {
	for _, h := range face.HalfFacets() {
		pts := append(append([]geom.Point(nil), h.Points()...), p)
		sign, err := predicate.Orient(pts...)
		if err != nil {
			return nil, false, err
		}

		// h.Side() is the orientation of (facet..., opposite) within this
		// Face; p is on the far side of h exactly when sign disagrees with
		// h.Side(). A nil twin here would mean p lies beyond the outer
		// face's directional boundary, which cannot happen for a point
		// with a finite coordinate (spec.md §4.4) — guarded defensively
		// rather than assumed.
		if sign != 0 && sign != h.Side() {
			twin := h.Twin()
			if twin == nil {
				continue
			}

			return twin.Face(), true, nil
		}
	}

	return face, false, nil
}
