package nn

import (
	"github.com/strand-ml/strand/internal/shape"
	"gonum.org/v1/gonum/mat"
)

// Layer is one realized stage of a built model.
//
// Dense layers own their weight matrix (inputWidth × outputWidth) and bias
// vector (length outputWidth). Reshape layers own no parameters. Once a
// model is built its layers are read-only: the accessors below expose
// parameters as gonum interface views, which carry no setters.
type Layer struct {
	kind        LayerKind
	name        string
	activation  Activation
	inputWidth  int
	outputWidth int
	outputShape shape.Shape
	frozen      bool
	weight      *mat.Dense    // nil for parameter-free layers
	bias        *mat.VecDense // nil for parameter-free layers
}

// Kind returns the layer variant.
func (l *Layer) Kind() LayerKind {
	return l.kind
}

// Name returns the layer's generated name, e.g. "dense_2" or "reshape_1".
// Names are unique within a model and count per kind in build order.
func (l *Layer) Name() string {
	return l.name
}

// Activation returns the layer's activation. Parameter-free layers report
// ActivationNone.
func (l *Layer) Activation() Activation {
	return l.activation
}

// InputWidth returns the flattened width the layer receives.
func (l *Layer) InputWidth() int {
	return l.inputWidth
}

// OutputWidth returns the flattened width the layer produces.
func (l *Layer) OutputWidth() int {
	return l.outputWidth
}

// OutputShape returns the shape the layer produces. For dense layers it is
// the single dimension (outputWidth); for reshape layers it is the target
// shape, or (inputWidth) when the layer flattens.
func (l *Layer) OutputShape() shape.Shape {
	return l.outputShape.Clone()
}

// ParamCount returns the number of learnable scalars the layer owns:
// inputWidth*outputWidth + outputWidth for dense layers, 0 otherwise.
func (l *Layer) ParamCount() int {
	if l.weight == nil {
		return 0
	}
	return l.inputWidth*l.outputWidth + l.outputWidth
}

// Trainable reports whether the layer's parameters count as trainable.
// Parameter-free layers are never trainable.
func (l *Layer) Trainable() bool {
	return l.weight != nil && !l.frozen
}

// Weight returns a read-only view of the layer's weight matrix, or nil for
// parameter-free layers. The view aliases the live layer state; it is
// never a copy.
func (l *Layer) Weight() mat.Matrix {
	if l.weight == nil {
		return nil
	}
	return l.weight
}

// Bias returns a read-only view of the layer's bias vector, or nil for
// parameter-free layers. The view aliases the live layer state; it is
// never a copy.
func (l *Layer) Bias() mat.Vector {
	if l.bias == nil {
		return nil
	}
	return l.bias
}
