package nn

import "errors"

// Build and inspection errors. Callers match them with errors.Is; the
// returned errors carry call-site context around these sentinels.
var (
	// ErrEmptySpec is returned by Build when the spec list is empty.
	ErrEmptySpec = errors.New("empty layer spec list")

	// ErrMissingInputShape is returned by Build when the first spec does
	// not declare the shape fed into the model.
	ErrMissingInputShape = errors.New("first layer spec missing input shape")

	// ErrShapeMismatch is returned by Build when a spec violates the
	// width constraints: a non-positive dense width, an invalid shape
	// dimension, or a reshape target whose element count differs from
	// the width flowing into it.
	ErrShapeMismatch = errors.New("layer shape mismatch")

	// ErrIndexOutOfRange is returned by layer lookups when the index is
	// outside [0, Len()).
	ErrIndexOutOfRange = errors.New("layer index out of range")
)
