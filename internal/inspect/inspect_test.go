package inspect_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strand-ml/strand/internal/inspect"
	"github.com/strand-ml/strand/internal/nn"
)

func mnistModel(t *testing.T) *nn.Model {
	t.Helper()
	model, err := nn.Build([]nn.LayerSpec{
		nn.Flatten(28, 28),
		nn.Dense(784, nn.ActivationReLU),
		nn.Dense(250, nn.ActivationReLU),
		nn.Dense(100, nn.ActivationReLU),
		nn.Dense(10, nn.ActivationSoftmax),
	}, nn.WithSeed(7))
	require.NoError(t, err)
	return model
}

func TestSummarize(t *testing.T) {
	model := mnistModel(t)
	report := inspect.Summarize(model)

	require.Len(t, report.Layers, 5)
	assert.Equal(t, model.ID().String(), report.ModelID)
	assert.Equal(t, []int{28, 28}, report.InputShape)

	wantParams := []int{0, 615440, 196250, 25100, 1010}
	for i, row := range report.Layers {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, wantParams[i], row.ParamCount, "layer %d", i)
	}

	assert.Equal(t, 837800, report.TotalParams)
	assert.Equal(t, 837800, report.TrainableParams)
	assert.Equal(t, 0, report.NonTrainableParams)

	assert.Equal(t, "reshape", report.Layers[0].Kind)
	assert.Equal(t, []int{784}, report.Layers[0].OutputShape)
	assert.Equal(t, "dense", report.Layers[4].Kind)
	assert.Equal(t, "softmax", report.Layers[4].Activation)
	assert.Equal(t, []int{10}, report.Layers[4].OutputShape)
}

func TestSummarize_IsDeterministic(t *testing.T) {
	model := mnistModel(t)

	first := inspect.Summarize(model)
	second := inspect.Summarize(model)
	assert.Equal(t, first, second, "summarizing the same model twice must yield the same report")
}

func TestSummarize_FrozenLayer(t *testing.T) {
	model, err := nn.Build([]nn.LayerSpec{
		nn.Dense(128, nn.ActivationReLU).WithInput(784).AsFrozen(),
		nn.Dense(10, nn.ActivationSoftmax),
	})
	require.NoError(t, err)

	report := inspect.Summarize(model)
	frozen := 784*128 + 128
	live := 128*10 + 10

	assert.Equal(t, frozen+live, report.TotalParams)
	assert.Equal(t, live, report.TrainableParams)
	assert.Equal(t, frozen, report.NonTrainableParams)
	assert.False(t, report.Layers[0].Trainable)
	assert.True(t, report.Layers[1].Trainable)
}

func TestLayerAt(t *testing.T) {
	model := mnistModel(t)

	layer, err := inspect.LayerAt(model, 1)
	require.NoError(t, err)
	assert.Equal(t, "dense_1", layer.Name())

	_, err = inspect.LayerAt(model, 5)
	require.ErrorIs(t, err, nn.ErrIndexOutOfRange)
	_, err = inspect.LayerAt(model, -1)
	require.ErrorIs(t, err, nn.ErrIndexOutOfRange)
}

func TestParametersOf_ReshapeHasNone(t *testing.T) {
	model := mnistModel(t)

	layer, err := inspect.LayerAt(model, 0)
	require.NoError(t, err)

	weights, biases, ok := inspect.ParametersOf(layer)
	assert.False(t, ok)
	assert.Nil(t, weights)
	assert.Nil(t, biases)
}

func TestParametersOf_DenseShapes(t *testing.T) {
	model := mnistModel(t)

	wantDims := []struct{ in, out int }{
		{784, 784},
		{784, 250},
		{250, 100},
		{100, 10},
	}

	for i, want := range wantDims {
		layer, err := inspect.LayerAt(model, i+1)
		require.NoError(t, err)

		weights, biases, ok := inspect.ParametersOf(layer)
		require.True(t, ok, "dense layer %d must expose parameters", i+1)

		rows, cols := weights.Dims()
		assert.Equal(t, want.in, rows, "layer %d weight rows", i+1)
		assert.Equal(t, want.out, cols, "layer %d weight cols", i+1)
		assert.Equal(t, want.out, biases.Len(), "layer %d bias length", i+1)
	}
}

func TestParametersOf_ViewAliasesLayerState(t *testing.T) {
	model := mnistModel(t)

	layer, err := inspect.LayerAt(model, 1)
	require.NoError(t, err)

	first, _, ok := inspect.ParametersOf(layer)
	require.True(t, ok)
	second, _, _ := inspect.ParametersOf(layer)

	// Both views read the same live state, not copies.
	assert.Equal(t, first.At(0, 0), second.At(0, 0))
	assert.Same(t, layer.Weight(), first)
}

func TestStructuralReport_String(t *testing.T) {
	report := inspect.Summarize(mnistModel(t))
	rendered := report.String()

	for _, want := range []string{
		"reshape_1",
		"dense_4",
		"softmax",
		"615440",
		"Total params: 837800",
		"Trainable params: 837800",
		"Non-trainable params: 0",
	} {
		assert.True(t, strings.Contains(rendered, want), "rendered report missing %q:\n%s", want, rendered)
	}
}

func TestStructuralReport_JSON(t *testing.T) {
	report := inspect.Summarize(mnistModel(t))

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded inspect.StructuralReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.TotalParams, decoded.TotalParams)
	assert.Equal(t, report.ModelID, decoded.ModelID)
	require.Len(t, decoded.Layers, 5)
	assert.Equal(t, report.Layers[1].OutputShape, decoded.Layers[1].OutputShape)
}
