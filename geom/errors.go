package geom

import "errors"

// ErrEmptyPoint indicates that a Point was constructed from zero coordinates.
var ErrEmptyPoint = errors.New("geom: point has no coordinates")

// ErrDimensionMismatch indicates a batch of points disagree in dimension.
var ErrDimensionMismatch = errors.New("geom: point dimension mismatch")
