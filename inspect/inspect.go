// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package inspect derives read-only structural reports from built models.
//
// # Overview
//
// This package contains:
//   - Summarize: project a model into a StructuralReport
//   - LayerAt: bounds-checked layer lookup
//   - ParametersOf: read-only weight and bias views of a layer
//
// # Basic Usage
//
//	import (
//	    "github.com/strand-ml/strand/inspect"
//	    "github.com/strand-ml/strand/nn"
//	)
//
//	func main() {
//	    model, _ := nn.Build([]nn.LayerSpec{
//	        nn.Flatten(28, 28),
//	        nn.Dense(784, nn.ActivationReLU),
//	        nn.Dense(10, nn.ActivationSoftmax),
//	    })
//
//	    report := inspect.Summarize(model)
//	    fmt.Print(report)
//
//	    layer, err := inspect.LayerAt(model, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    weights, biases, ok := inspect.ParametersOf(layer)
//	    if ok {
//	        r, c := weights.Dims()
//	        fmt.Println(r, c, biases.Len()) // 784 784 784
//	    }
//	}
//
// Summarize is a pure projection: for a given model the report is
// deterministic, and deriving it never mutates the model. Parameter views
// returned by ParametersOf alias the live layer state without exposing
// setters.
package inspect

import (
	"github.com/strand-ml/strand/internal/inspect"
	"github.com/strand-ml/strand/internal/nn"
	"gonum.org/v1/gonum/mat"
)

// StructuralReport is a read-only, derived summary of a model.
type StructuralReport = inspect.StructuralReport

// LayerSummary is one row of a structural report.
type LayerSummary = inspect.LayerSummary

// Summarize projects a model into a structural report.
func Summarize(m *nn.Model) *StructuralReport {
	return inspect.Summarize(m)
}

// LayerAt returns the model's layer at the given position, or an error
// wrapping nn.ErrIndexOutOfRange when index is outside [0, m.Len()).
func LayerAt(m *nn.Model, index int) (*nn.Layer, error) {
	return inspect.LayerAt(m, index)
}

// ParametersOf returns read-only views of a layer's weight matrix and bias
// vector. The third result is false for parameter-free layers.
func ParametersOf(l *nn.Layer) (mat.Matrix, mat.Vector, bool) {
	return inspect.ParametersOf(l)
}
