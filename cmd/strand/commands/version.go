package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI version, shared by the version subcommand and the
// root command's --version flag.
const Version = "0.1.0"

// VersionCmd prints the CLI version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strand %s\n", Version)
	},
}
