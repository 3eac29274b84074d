// Package geom provides the extended-homogeneous-coordinate point type the
// predicates and simplicial complex are built on.
//
// A Point is an immutable (d+1)-tuple (x1,...,xd, w). w=1 denotes a finite
// point with Euclidean coordinates (x1,...,xd); w=0 denotes a point at
// infinity in direction (x1,...,xd). Points are never mutated after
// construction, because structural identity (Vertex equality/hash in
// package topology) depends on their component values.
package geom
