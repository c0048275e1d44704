package nn

import (
	"fmt"

	"github.com/strand-ml/strand/internal/shape"
)

// LayerKind identifies the kind of a layer. The set is closed: Build
// rejects any value outside the constants below.
type LayerKind string

const (
	// KindReshape is a parameter-free layer that changes the shape of the
	// data flowing through it without changing the number of elements.
	KindReshape LayerKind = "reshape"
	// KindDense is a fully connected layer owning a weight matrix and a
	// bias vector.
	KindDense LayerKind = "dense"
)

// Valid reports whether the kind is one of the known layer kinds.
func (k LayerKind) Valid() bool {
	switch k {
	case KindReshape, KindDense:
		return true
	}
	return false
}

// Activation is the fixed, non-learned transformation applied to a dense
// layer's raw output.
type Activation string

const (
	// ActivationNone leaves the layer output untouched.
	ActivationNone Activation = "none"
	// ActivationReLU is the rectified linear unit, f(x) = max(0, x).
	ActivationReLU Activation = "relu"
	// ActivationSoftmax normalizes the layer output into a probability
	// distribution.
	ActivationSoftmax Activation = "softmax"
)

// Valid reports whether the activation is one of the known activations.
// The zero value "" is accepted as an alias for ActivationNone.
func (a Activation) Valid() bool {
	switch a {
	case "", ActivationNone, ActivationReLU, ActivationSoftmax:
		return true
	}
	return false
}

// ParseActivation converts a string into an Activation.
func ParseActivation(s string) (Activation, error) {
	a := Activation(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown activation %q", s)
	}
	if a == "" {
		a = ActivationNone
	}
	return a, nil
}

// LayerSpec describes one layer of a model before it is built.
//
// A LayerSpec is a plain value: constructing one performs no validation
// and allocates nothing. All constraint checking happens in Build.
type LayerSpec struct {
	// Kind selects the layer variant.
	Kind LayerKind

	// Width is the output width of a dense layer. It must be positive
	// for dense specs and is ignored for reshape specs.
	Width int

	// Activation applies to dense layers only.
	Activation Activation

	// InputShape declares the shape fed into the model. It is required
	// on the first spec and must not appear on any later spec.
	InputShape shape.Shape

	// TargetShape is the shape a reshape layer produces. Its element
	// count must equal the width flowing into the layer. A reshape spec
	// without a target flattens to a single dimension.
	TargetShape shape.Shape

	// Frozen marks a dense layer's parameters as non-trainable. It only
	// affects how the layer is reported; this package never trains.
	Frozen bool
}

// Dense returns a spec for a fully connected layer with the given output
// width and activation.
func Dense(width int, activation Activation) LayerSpec {
	return LayerSpec{Kind: KindDense, Width: width, Activation: activation}
}

// Flatten returns a spec for a first-layer reshape that accepts input of
// the given shape and flattens it to a single dimension.
func Flatten(inputShape ...int) LayerSpec {
	return LayerSpec{Kind: KindReshape, InputShape: shape.Of(inputShape...)}
}

// Reshape returns a spec for a mid-model reshape to the given target
// shape. The target must hold exactly as many elements as the layer
// receives.
func Reshape(target ...int) LayerSpec {
	return LayerSpec{Kind: KindReshape, TargetShape: shape.Of(target...)}
}

// WithInput returns a copy of the spec carrying an input shape. Use it to
// start a model with a dense layer:
//
//	specs := []nn.LayerSpec{
//	    nn.Dense(128, nn.ActivationReLU).WithInput(784),
//	    nn.Dense(10, nn.ActivationSoftmax),
//	}
func (s LayerSpec) WithInput(dims ...int) LayerSpec {
	s.InputShape = shape.Of(dims...)
	return s
}

// AsFrozen returns a copy of the spec whose parameters are reported as
// non-trainable.
func (s LayerSpec) AsFrozen() LayerSpec {
	s.Frozen = true
	return s
}
