// Package linalg: sentinel error set.
//
// All algorithms in this package return these sentinels rather than ad-hoc
// strings; callers branch with errors.Is. Sentinels are not wrapped with
// %w at the definition site — only at call boundaries, where a caller wants
// to attach the operation and shape that failed.
package linalg

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible column lengths when building a
	// Matrix from vectors, or incompatible operand shapes.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrSingular is returned when Solve encounters a singular (or otherwise
	// unsolvable) matrix.
	ErrSingular = errors.New("linalg: singular matrix")
)
