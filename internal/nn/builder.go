package nn

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/strand-ml/strand/internal/shape"
	"golang.org/x/exp/rand"
)

// BuildOption configures a single Build call.
type BuildOption func(*buildOptions)

type buildOptions struct {
	init Initializer
}

// WithInitializer replaces the default Xavier-uniform weight policy.
func WithInitializer(init Initializer) BuildOption {
	return func(o *buildOptions) {
		o.init = init
	}
}

// WithSeed makes the default weight policy deterministic. It is shorthand
// for WithInitializer(XavierUniform(rand.NewSource(seed))).
func WithSeed(seed uint64) BuildOption {
	return func(o *buildOptions) {
		o.init = XavierUniform(rand.NewSource(seed))
	}
}

// Build constructs a model from an ordered list of layer specs, chaining
// each layer's output width into the next layer's input width.
//
// The first spec must declare the model's input shape; the width flowing
// into the first layer is the product of its dimensions. Dense specs must
// carry a positive width. A reshape spec without a target flattens; one
// with a target must preserve the element count.
//
// Build either returns a fully shape-consistent model or an error wrapping
// one of ErrEmptySpec, ErrMissingInputShape, or ErrShapeMismatch. There is
// no partial result: no model value exists for an inconsistent spec list.
func Build(specs []LayerSpec, opts ...BuildOption) (*Model, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("build: %w", ErrEmptySpec)
	}

	options := buildOptions{
		init: XavierUniform(nil),
	}
	for _, opt := range opts {
		opt(&options)
	}

	inputShape := specs[0].InputShape
	if len(inputShape) == 0 {
		return nil, fmt.Errorf("build: %w", ErrMissingInputShape)
	}
	if err := inputShape.Validate(); err != nil {
		return nil, fmt.Errorf("build: input shape %v: %v: %w", inputShape, err, ErrShapeMismatch)
	}

	width := inputShape.NumElements()
	layers := make([]*Layer, 0, len(specs))
	kindCounts := make(map[LayerKind]int)

	for i, spec := range specs {
		if !spec.Kind.Valid() {
			return nil, fmt.Errorf("build: layer %d: unknown kind %q: %w", i, spec.Kind, ErrShapeMismatch)
		}
		if i > 0 && len(spec.InputShape) != 0 {
			return nil, fmt.Errorf("build: layer %d: input shape may only be declared on the first layer: %w", i, ErrShapeMismatch)
		}

		var layer *Layer
		var err error
		switch spec.Kind {
		case KindDense:
			layer, err = buildDense(spec, width, options.init)
		case KindReshape:
			layer, err = buildReshape(spec, width)
		}
		if err != nil {
			return nil, fmt.Errorf("build: layer %d: %w", i, err)
		}

		kindCounts[spec.Kind]++
		layer.name = fmt.Sprintf("%s_%d", spec.Kind, kindCounts[spec.Kind])
		layers = append(layers, layer)
		width = layer.outputWidth
	}

	return &Model{
		id:         uuid.New(),
		inputShape: inputShape.Clone(),
		layers:     layers,
	}, nil
}

// buildDense realizes a dense spec against the current width, allocating
// its weight matrix and zero bias.
func buildDense(spec LayerSpec, width int, init Initializer) (*Layer, error) {
	if spec.Width <= 0 {
		return nil, fmt.Errorf("dense width %d (must be > 0): %w", spec.Width, ErrShapeMismatch)
	}
	if !spec.Activation.Valid() {
		return nil, fmt.Errorf("dense: unknown activation %q: %w", spec.Activation, ErrShapeMismatch)
	}
	activation := spec.Activation
	if activation == "" {
		activation = ActivationNone
	}

	return &Layer{
		kind:        KindDense,
		activation:  activation,
		inputWidth:  width,
		outputWidth: spec.Width,
		outputShape: shape.Of(spec.Width),
		frozen:      spec.Frozen,
		weight:      init(width, spec.Width),
		bias:        zeroBias(spec.Width),
	}, nil
}

// buildReshape realizes a reshape spec against the current width. A spec
// without a target flattens to a single dimension; a target must hold
// exactly the current width's element count, since a reshape cannot create
// or drop elements.
func buildReshape(spec LayerSpec, width int) (*Layer, error) {
	outputShape := shape.Of(width)
	if len(spec.TargetShape) != 0 {
		if err := spec.TargetShape.Validate(); err != nil {
			return nil, fmt.Errorf("reshape target %v: %v: %w", spec.TargetShape, err, ErrShapeMismatch)
		}
		if spec.TargetShape.NumElements() != width {
			return nil, fmt.Errorf("reshape target %v holds %d elements, input has %d: %w",
				spec.TargetShape, spec.TargetShape.NumElements(), width, ErrShapeMismatch)
		}
		outputShape = spec.TargetShape.Clone()
	}

	return &Layer{
		kind:        KindReshape,
		activation:  ActivationNone,
		inputWidth:  width,
		outputWidth: width,
		outputShape: outputShape,
	}, nil
}
