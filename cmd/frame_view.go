package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/viewer"
	"github.com/spf13/cobra"
)

var (
	viewASCII  bool
	viewWidth  int
	viewHeight int
	viewNoGrid bool
)

var frameViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the frame in a 3D viewer",
	Long: `Open a window with an orbiting camera around the frame wireframe.

Without a display (or with --ascii) an elevation is drawn in the terminal
instead.

Examples:
  goframe frame view
  goframe frame view --width 1920 --height 1080
  goframe frame view --ascii`,
	RunE: runFrameView,
}

func init() {
	frameCmd.AddCommand(frameViewCmd)

	frameViewCmd.Flags().BoolVar(&viewASCII, "ascii", false, "Draw an ASCII elevation instead of opening a window")
	frameViewCmd.Flags().IntVar(&viewWidth, "width", 1280, "Window width in pixels")
	frameViewCmd.Flags().IntVar(&viewHeight, "height", 720, "Window height in pixels")
	frameViewCmd.Flags().BoolVar(&viewNoGrid, "no-grid", false, "Hide the ground grid")
}

func runFrameView(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())

	_, model, err := generateModel(cmd)
	if err != nil {
		return err
	}

	if !viewASCII {
		opts := viewer.DefaultOptions()
		opts.Title = fmt.Sprintf("goframe - %s", model.Params.Name)
		opts.Width = viewWidth
		opts.Height = viewHeight
		opts.Grid = !viewNoGrid

		err := viewer.ShowContext(cmd.Context(), model.Solid, opts)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, viewer.ErrNoDisplay):
			logger.Warn("No display, drawing in the terminal instead")
		case cmd.Context().Err() != nil:
			return errInterrupted
		default:
			return err
		}
	}

	drawing, err := diagram.DrawASCIIElevation(model, 72, 24)
	if err != nil {
		return err
	}
	fmt.Fprint(out, drawing)
	return nil
}
