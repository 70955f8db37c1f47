package raytracer

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message carries the "raytracer:" prefix; operations
// wrap them with opErrorf so callers match with errors.Is.
var (
	// ErrOutOfRange is returned for matrix cell, submatrix and canvas pixel
	// access outside the valid bounds.
	ErrOutOfRange = errors.New("raytracer: index out of range")

	// ErrBadShape is returned when a matrix or canvas is requested with an
	// invalid size.
	ErrBadShape = errors.New("raytracer: invalid shape")

	// ErrNonSquare is returned when row data does not describe a square matrix.
	ErrNonSquare = errors.New("raytracer: matrix is not square")

	// ErrRaggedRows is returned when rows handed to a builder differ in width.
	ErrRaggedRows = errors.New("raytracer: rows must all have the same number of values")

	// ErrDimensionMismatch is returned when two matrices of different sizes are multiplied.
	ErrDimensionMismatch = errors.New("raytracer: dimension mismatch")

	// ErrUnsupportedSize is returned for determinant outside 1..4 and tuple
	// multiplication by a matrix that is not 4x4.
	ErrUnsupportedSize = errors.New("raytracer: unsupported matrix size")

	// ErrSingular is returned when inverting a matrix whose determinant is 0.
	ErrSingular = errors.New("raytracer: matrix is not invertible")

	// ErrNotVector is returned when a vector-only operation gets anything else.
	ErrNotVector = errors.New("raytracer: operation defined for vectors only")

	// ErrInvalidKind is returned for point+point, vector-point, and rays built
	// from the wrong kinds of tuples.
	ErrInvalidKind = errors.New("raytracer: invalid tuple kind for operation")

	// ErrZeroLength is returned when normalizing a zero vector.
	ErrZeroLength = errors.New("raytracer: zero-length vector")

	// ErrNoTransforms is returned when collapsing an empty TransformBuilder.
	ErrNoTransforms = errors.New("raytracer: no transformations queued")

	// ErrBuilderMode is returned when explicit rows and a preset are mixed on one MatrixBuilder.
	ErrBuilderMode = errors.New("raytracer: builder already configured")

	ErrUnknownScenario = errors.New("raytracer: unknown scenario")
	ErrUnknownFormat   = errors.New("raytracer: unknown output format")
	ErrBadConfig       = errors.New("raytracer: invalid configuration")
	ErrScript          = errors.New("raytracer: script error")
)

// opErrorf wraps err with the name of the failing operation.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps err with the operation and the offending indices.
func indexErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}
