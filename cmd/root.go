package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Steel Portal Frame Layout Generator",
	Long: `goframe - Go Steel Portal Frame Generator

A CLI tool that lays out a single-bay steel portal frame from a handful
of dimensions and writes the fused solid as a STEP file.

The frame is made of:
  - Two lines of I-section columns along the building
  - Pairs of sloped I-section rafters meeting at the ridge
  - Box purlins running the length of the roof

Dimensions come from built-in defaults, an optional TOML file
(--config or $GOFRAME_CONFIG) and command-line flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		logger := newLogger(cmd.ErrOrStderr(), level)
		cmd.SetContext(withLogger(cmd.Context(), logger))

		var files []string
		if envFile != "" {
			files = append(files, envFile)
		}
		return config.LoadEnv(files...)
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goframe v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Steel Portal Frame Generator                         ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Lays out a single-bay steel portal frame and exports it")
		fmt.Fprintln(out, "  as an AP214 STEP solid.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Columns, mirrored rafter pairs and purlins fused into one solid")
		fmt.Fprintln(out, "    • STEP export for CAD and BIM tools")
		fmt.Fprintln(out, "    • Member schedule with steel masses (xlsx, pdf)")
		fmt.Fprintln(out, "    • Elevation, plan and section drawings (png, svg, pdf)")
		fmt.Fprintln(out, "    • Interactive 3D wireframe viewer")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goframe --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the command context and exits with status 130.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	interrupted := ctx.Err() != nil
	stop()

	switch {
	case interrupted:
		os.Exit(130)
	case err != nil:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// errInterrupted is returned by long-running commands stopped by the user
var errInterrupted = errors.New("interrupted")

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Frame definition TOML file (default $"+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Environment file to load (default .env if present)")
}
