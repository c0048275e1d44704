// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/strand-ml/strand/internal/nn"
	"golang.org/x/exp/rand"
)

// LayerKind identifies the kind of a layer.
type LayerKind = nn.LayerKind

// Activation is the fixed transformation applied to a dense layer's raw output.
type Activation = nn.Activation

// LayerSpec describes one layer of a model before it is built.
type LayerSpec = nn.LayerSpec

// Layer is one realized stage of a built model.
type Layer = nn.Layer

// Model is an ordered, shape-consistent chain of layers.
type Model = nn.Model

// Initializer produces the initial weight matrix for a dense layer.
type Initializer = nn.Initializer

// BuildOption configures a single Build call.
type BuildOption = nn.BuildOption

// Layer kinds.
const (
	KindReshape = nn.KindReshape
	KindDense   = nn.KindDense
)

// Activations.
const (
	ActivationNone    = nn.ActivationNone
	ActivationReLU    = nn.ActivationReLU
	ActivationSoftmax = nn.ActivationSoftmax
)

// Build and inspection errors, matched with errors.Is.
var (
	ErrEmptySpec         = nn.ErrEmptySpec
	ErrMissingInputShape = nn.ErrMissingInputShape
	ErrShapeMismatch     = nn.ErrShapeMismatch
	ErrIndexOutOfRange   = nn.ErrIndexOutOfRange
)

// Build constructs a model from an ordered list of layer specs.
//
// Example:
//
//	model, err := nn.Build([]nn.LayerSpec{
//	    nn.Flatten(28, 28),
//	    nn.Dense(784, nn.ActivationReLU),
//	    nn.Dense(10, nn.ActivationSoftmax),
//	})
func Build(specs []LayerSpec, opts ...BuildOption) (*Model, error) {
	return nn.Build(specs, opts...)
}

// Dense returns a spec for a fully connected layer.
//
// Example:
//
//	spec := nn.Dense(128, nn.ActivationReLU)
func Dense(width int, activation Activation) LayerSpec {
	return nn.Dense(width, activation)
}

// Flatten returns a spec for a first-layer reshape that flattens input of
// the given shape to a single dimension.
//
// Example:
//
//	spec := nn.Flatten(28, 28) // feeds 784 values into the next layer
func Flatten(inputShape ...int) LayerSpec {
	return nn.Flatten(inputShape...)
}

// Reshape returns a spec for a mid-model reshape to the given target shape.
func Reshape(target ...int) LayerSpec {
	return nn.Reshape(target...)
}

// ParseActivation converts a string into an Activation.
func ParseActivation(s string) (Activation, error) {
	return nn.ParseActivation(s)
}

// XavierUniform returns an Initializer drawing weights from the
// Xavier/Glorot uniform distribution. A nil src draws from the
// package-level random source.
func XavierUniform(src rand.Source) Initializer {
	return nn.XavierUniform(src)
}

// WithInitializer replaces the default Xavier-uniform weight policy for
// one Build call.
func WithInitializer(init Initializer) BuildOption {
	return nn.WithInitializer(init)
}

// WithSeed makes the default weight policy deterministic.
func WithSeed(seed uint64) BuildOption {
	return nn.WithSeed(seed)
}
