// view.go — non-mutating, deterministically ordered snapshots of a
// Complex. Grounded on lvlath's core/view.go (read-only views built
// from locked snapshots) and on original_source/pyVor's reliance on a
// lexicographic Vertex ordering for reproducible output.
package topology

import "sort"

// SortedVertices returns all registered Vertices ordered by Vertex.Less,
// giving reproducible iteration independent of Go's randomized map order.
func (c *Complex) SortedVertices() []*Vertex {
	vs := c.Vertices()
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })

	return vs
}

// SortedFaces returns all live Faces ordered lexicographically by their
// Vertex lists (each sorted by Vertex.Less), with a shorter list first when
// one is a prefix of the other, giving a reproducible iteration order for
// golden-output tests.
func (c *Complex) SortedFaces() []*Face {
	fs := c.Faces()
	sort.Slice(fs, func(i, j int) bool {
		return faceLess(fs[i], fs[j])
	})

	return fs
}

func faceLess(a, b *Face) bool {
	av := sortedFaceVertices(a)
	bv := sortedFaceVertices(b)
	n := len(av)
	if len(bv) < n {
		n = len(bv)
	}
	for i := 0; i < n; i++ {
		if av[i] != bv[i] {
			return av[i].Less(bv[i])
		}
	}

	return len(av) < len(bv)
}

func sortedFaceVertices(f *Face) []*Vertex {
	vs := f.Vertices()
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })

	return vs
}
