// Package inspect derives read-only structural reports from built models
// and looks up layers and their parameters.
package inspect

import (
	"github.com/strand-ml/strand/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// LayerAt returns the model's layer at the given position. It fails with
// nn.ErrIndexOutOfRange when index is outside [0, m.Len()).
func LayerAt(m *nn.Model, index int) (*nn.Layer, error) {
	return m.LayerAt(index)
}

// ParametersOf returns the layer's learnable parameters: the weight matrix
// and bias vector, by reference. The views alias the live layer state but
// expose no setters, so callers can neither desynchronize from the layer
// nor mutate it. The third result is false for parameter-free layers,
// which own no weights or biases.
func ParametersOf(l *nn.Layer) (mat.Matrix, mat.Vector, bool) {
	weight := l.Weight()
	if weight == nil {
		return nil, nil, false
	}
	return weight, l.Bias(), true
}
