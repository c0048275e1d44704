// Package commands provides CLI command implementations.
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strand-ml/strand/internal/config"
	"github.com/strand-ml/strand/internal/inspect"
	"github.com/strand-ml/strand/internal/nn"
)

// Flag variables shared by the model-building commands.
var (
	// summary flags
	summaryFormat string

	// model flags (summary and layers)
	modelConfig     string
	modelInputShape string
	modelArch       string
	modelActivation string
	modelOutputAct  string
	modelSeed       uint64
)

// SummaryCmd builds a model from flags or a config file and prints its
// structural report.
var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Build a model and print its structural report",
	Long: `Build a model from the given architecture and print its layers,
output shapes, parameter counts, and parameter totals.

The model is described either by --config (a JSON file) or by the
--input-shape and --arch flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := buildModel(cmd)
		if err != nil {
			return err
		}

		report := inspect.Summarize(model)

		switch summaryFormat {
		case "table":
			fmt.Fprint(cmd.OutOrStdout(), report)
		case "json":
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		default:
			return fmt.Errorf("unknown format %q (want table or json)", summaryFormat)
		}
		return nil
	},
}

// buildModel assembles the layer specs described by the flags and builds
// the model.
func buildModel(cmd *cobra.Command) (*nn.Model, error) {
	cfg, err := modelConfigFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	specs, err := cfg.LayerSpecs()
	if err != nil {
		return nil, err
	}

	model, err := nn.Build(specs, cfg.BuildOptions()...)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// modelConfigFromFlags resolves the model description, starting from the
// config file when given and applying explicit flags on top.
func modelConfigFromFlags(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if modelConfig != "" {
		loaded, err := config.Load(modelConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("input-shape") {
		dims, err := config.ParseShape(modelInputShape)
		if err != nil {
			return config.Config{}, err
		}
		cfg.InputShape = dims
	}
	if cmd.Flags().Changed("arch") {
		arch, err := config.ParseArchitecture(modelArch)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Architecture = arch
	}
	if cmd.Flags().Changed("activation") {
		cfg.HiddenActivation = modelActivation
	}
	if cmd.Flags().Changed("output-activation") {
		cfg.OutputActivation = modelOutputAct
	}
	if cmd.Flags().Changed("seed") {
		seed := modelSeed
		cfg.Seed = &seed
	}

	return cfg, nil
}

// addModelFlags registers the shared model-description flags on a command.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&modelConfig, "config", "", "JSON model config file")
	cmd.Flags().StringVar(&modelInputShape, "input-shape", "28,28", "comma-separated input shape")
	cmd.Flags().StringVar(&modelArch, "arch", "784 250 100 10", "whitespace-separated dense layer widths")
	cmd.Flags().StringVar(&modelActivation, "activation", "relu", "activation for hidden dense layers")
	cmd.Flags().StringVar(&modelOutputAct, "output-activation", "softmax", "activation for the final dense layer")
	cmd.Flags().Uint64Var(&modelSeed, "seed", 0, "deterministic weight initialization seed")
}

func init() {
	addModelFlags(SummaryCmd)
	SummaryCmd.Flags().StringVar(&summaryFormat, "format", "table", "output format: table or json")
}
