package nn

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/strand-ml/strand/internal/shape"
)

// Model is an ordered, shape-consistent chain of layers with one input and
// one output. Models are created by Build and never mutated afterwards:
// for every layer index i > 0, the layer's input width equals the previous
// layer's output width.
type Model struct {
	id         uuid.UUID
	inputShape shape.Shape
	layers     []*Layer
}

// ID returns the model's identity, assigned at build time.
func (m *Model) ID() uuid.UUID {
	return m.id
}

// InputShape returns the shape the model accepts.
func (m *Model) InputShape() shape.Shape {
	return m.inputShape.Clone()
}

// Len returns the number of layers in the model.
func (m *Model) Len() int {
	return len(m.layers)
}

// Layers returns the model's layers in order. The returned slice is a
// copy; the layers themselves are shared and read-only.
func (m *Model) Layers() []*Layer {
	layers := make([]*Layer, len(m.layers))
	copy(layers, m.layers)
	return layers
}

// LayerAt returns the layer at the given position. It fails with
// ErrIndexOutOfRange when index is outside [0, Len()) and never returns a
// default layer.
func (m *Model) LayerAt(index int) (*Layer, error) {
	if index < 0 || index >= len(m.layers) {
		return nil, fmt.Errorf("layer %d of %d: %w", index, len(m.layers), ErrIndexOutOfRange)
	}
	return m.layers[index], nil
}

// OutputShape returns the shape produced by the model's final layer, or
// nil for a zero-value Model that was never built.
func (m *Model) OutputShape() shape.Shape {
	if len(m.layers) == 0 {
		return nil
	}
	return m.layers[len(m.layers)-1].OutputShape()
}
