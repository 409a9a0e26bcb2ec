package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Steel Portal Frame Layout Generator")
		fmt.Fprintln(out, "STEP output: ISO 10303-21, AP214 (automotive_design)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
