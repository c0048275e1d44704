// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn builds sequential neural-network model structures.
//
// # Overview
//
// This package contains:
//   - Layer specs: Dense, Flatten, Reshape
//   - Activations: None, ReLU, Softmax
//   - Build: realizes an ordered spec list into a shape-consistent Model
//   - Initialization: XavierUniform, WithInitializer, WithSeed
//
// A Model is structure only. It owns each dense layer's weight matrix and
// bias vector, but numerical computation, gradients, and training belong
// to whatever framework consumes the structure.
//
// # Basic Usage
//
//	import "github.com/strand-ml/strand/nn"
//
//	func main() {
//	    model, err := nn.Build([]nn.LayerSpec{
//	        nn.Flatten(28, 28),
//	        nn.Dense(784, nn.ActivationReLU),
//	        nn.Dense(250, nn.ActivationReLU),
//	        nn.Dense(100, nn.ActivationReLU),
//	        nn.Dense(10, nn.ActivationSoftmax),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(model.Len()) // 5
//	}
//
// # Shape Consistency
//
// Build tracks the width flowing between layers: each dense layer's input
// width is the previous layer's output width, and the first spec declares
// the model's input shape. An inconsistent spec list yields an error
// wrapping ErrEmptySpec, ErrMissingInputShape, or ErrShapeMismatch; no
// partially built model is ever returned.
//
// # Initialization
//
// Dense weights default to Xavier/Glorot uniform values and biases start
// at zero. The policy is pluggable per Build call:
//
//	model, err := nn.Build(specs, nn.WithSeed(42))
//	model, err := nn.Build(specs, nn.WithInitializer(myInit))
package nn
