package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strand-ml/strand/internal/inspect"
)

var layersIndex int

// LayersCmd builds a model and prints the detail of one layer, including
// its parameter shapes.
var LayersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Build a model and print one layer's detail",
	Long: `Build a model from the given architecture and print the layer at
--index: its kind, activation, output shape, and parameter shapes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := buildModel(cmd)
		if err != nil {
			return err
		}

		layer, err := inspect.LayerAt(model, layersIndex)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Layer %d: %s (%s)\n", layersIndex, layer.Name(), layer.Kind())
		fmt.Fprintf(out, "  Activation:   %s\n", layer.Activation())
		fmt.Fprintf(out, "  Input width:  %d\n", layer.InputWidth())
		fmt.Fprintf(out, "  Output shape: %s\n", layer.OutputShape())
		fmt.Fprintf(out, "  Param #:      %d\n", layer.ParamCount())

		weights, biases, ok := inspect.ParametersOf(layer)
		if !ok {
			fmt.Fprintln(out, "  Parameters:   none")
			return nil
		}
		rows, cols := weights.Dims()
		fmt.Fprintf(out, "  Weights:      %d x %d\n", rows, cols)
		fmt.Fprintf(out, "  Biases:       %d\n", biases.Len())
		fmt.Fprintf(out, "  Trainable:    %t\n", layer.Trainable())
		return nil
	},
}

func init() {
	addModelFlags(LayersCmd)
	LayersCmd.Flags().IntVar(&layersIndex, "index", 0, "layer position to print")
}
