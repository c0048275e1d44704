// Package main provides the CLI entry point for strand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strand-ml/strand/cmd/strand/commands"
)

var rootCmd = &cobra.Command{
	Use:   "strand",
	Short: "Strand - structural model builder and inspector",
	Long: `Strand builds sequential neural-network model structures and reports
on them: ordered layer lists, per-layer output shapes, per-layer parameter
counts, and total trainable/non-trainable parameters.

It builds structure only. Tensor computation, gradients, and training
belong to the framework that consumes the structure.`,
	Version: commands.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(commands.SummaryCmd)
	rootCmd.AddCommand(commands.LayersCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}
