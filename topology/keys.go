package topology

import "sort"

// facetKey computes a canonical, order-independent identity string from a
// set of Vertices keyed by Vertex.key(); both Face.key and HalfFacet.key use
// it, since Face and HalfFacet equality are defined on the vertex set alone
// (spec.md §3).
func facetKey(vertices map[string]*Vertex) string {
	keys := make([]string, 0, len(vertices))
	for k := range vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]byte, 0, 64*len(keys))
	for _, k := range keys {
		out = append(out, k...)
		out = append(out, '\x00')
	}

	return string(out)
}

func verticesToMap(vs []*Vertex) map[string]*Vertex {
	m := make(map[string]*Vertex, len(vs))
	for _, v := range vs {
		m[v.key()] = v
	}

	return m
}
