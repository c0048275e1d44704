// Package shape provides the dimension arithmetic shared by the model
// builder and inspector.
package shape

import (
	"fmt"
	"strings"
)

// Shape represents the dimensions of a layer's input or output.
type Shape []int

// Of builds a Shape from a list of dimensions.
func Of(dims ...int) Shape {
	s := make(Shape, len(dims))
	copy(s, dims)
	return s
}

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (non-empty, all dimensions > 0).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape has no dimensions")
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprintf("%d", dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
