// Copyright 2026 Strand ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/nn"
)

// TestPublicSurface exercises the full public flow: spec helpers, Build,
// and model accessors, through the exported package only.
func TestPublicSurface(t *testing.T) {
	model, err := nn.Build([]nn.LayerSpec{
		nn.Flatten(28, 28),
		nn.Dense(784, nn.ActivationReLU),
		nn.Dense(250, nn.ActivationReLU),
		nn.Dense(100, nn.ActivationReLU),
		nn.Dense(10, nn.ActivationSoftmax),
	}, nn.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 5, model.Len())

	layer, err := model.LayerAt(4)
	require.NoError(t, err)
	assert.Equal(t, nn.KindDense, layer.Kind())
	assert.Equal(t, nn.ActivationSoftmax, layer.Activation())
	assert.Equal(t, 1010, layer.ParamCount())

	_, err = model.LayerAt(5)
	require.ErrorIs(t, err, nn.ErrIndexOutOfRange)
}

func TestPublicErrors(t *testing.T) {
	_, err := nn.Build(nil)
	require.ErrorIs(t, err, nn.ErrEmptySpec)

	_, err = nn.Build([]nn.LayerSpec{nn.Dense(10, nn.ActivationReLU)})
	require.ErrorIs(t, err, nn.ErrMissingInputShape)

	_, err = nn.Build([]nn.LayerSpec{nn.Dense(0, nn.ActivationReLU).WithInput(4)})
	require.ErrorIs(t, err, nn.ErrShapeMismatch)
}

func TestParseActivation(t *testing.T) {
	for _, s := range []string{"", "none", "relu", "softmax"} {
		_, err := nn.ParseActivation(s)
		require.NoError(t, err, "activation %q", s)
	}

	_, err := nn.ParseActivation("tanh")
	require.Error(t, err)
}
