package inspect

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/strand-ml/strand/internal/nn"
)

// LayerSummary is one row of a structural report.
type LayerSummary struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Activation  string `json:"activation"`
	OutputShape []int  `json:"outputShape"`
	ParamCount  int    `json:"paramCount"`
	Trainable   bool   `json:"trainable"`
}

// StructuralReport is a read-only, derived summary of a model: its layers
// in order, their output shapes and parameter counts, and parameter
// totals. It is a plain value, detached from the model it describes, and
// marshals to JSON.
type StructuralReport struct {
	ModelID            string         `json:"modelId"`
	InputShape         []int          `json:"inputShape"`
	Layers             []LayerSummary `json:"layers"`
	TotalParams        int            `json:"totalParams"`
	TrainableParams    int            `json:"trainableParams"`
	NonTrainableParams int            `json:"nonTrainableParams"`
}

// Summarize projects a model into a structural report. The projection is
// deterministic and has no side effects: the same model always yields the
// same report.
func Summarize(m *nn.Model) *StructuralReport {
	report := &StructuralReport{
		ModelID:    m.ID().String(),
		InputShape: []int(m.InputShape()),
		Layers:     make([]LayerSummary, 0, m.Len()),
	}

	for i, layer := range m.Layers() {
		params := layer.ParamCount()
		report.Layers = append(report.Layers, LayerSummary{
			Index:       i,
			Name:        layer.Name(),
			Kind:        string(layer.Kind()),
			Activation:  string(layer.Activation()),
			OutputShape: []int(layer.OutputShape()),
			ParamCount:  params,
			Trainable:   layer.Trainable(),
		})

		report.TotalParams += params
		if layer.Trainable() {
			report.TrainableParams += params
		} else {
			report.NonTrainableParams += params
		}
	}

	return report
}

// String renders the report as an aligned table followed by parameter
// totals.
func (r *StructuralReport) String() string {
	var sb strings.Builder

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Layer (kind)\tActivation\tOutput Shape\tParam #")
	fmt.Fprintln(w, "------------\t----------\t------------\t-------")
	for _, layer := range r.Layers {
		activation := layer.Activation
		if activation == string(nn.ActivationNone) {
			activation = "-"
		}
		fmt.Fprintf(w, "%s (%s)\t%s\t%v\t%d\n",
			layer.Name, layer.Kind, activation, layer.OutputShape, layer.ParamCount)
	}
	w.Flush()

	sb.WriteString(strings.Repeat("-", 45) + "\n")
	fmt.Fprintf(&sb, "Total params: %d\n", r.TotalParams)
	fmt.Fprintf(&sb, "Trainable params: %d\n", r.TrainableParams)
	fmt.Fprintf(&sb, "Non-trainable params: %d\n", r.NonTrainableParams)

	return sb.String()
}
