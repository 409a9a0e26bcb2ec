package cmd

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	layoutASCII bool
	layoutCols  int
	layoutRows  int
)

var frameLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print frame geometry and member placements",
	Long: `Print the derived frame geometry and where every member is placed.

Examples:
  goframe frame layout
  goframe frame layout --ascii --cols 100 --rows 30`,
	RunE: runFrameLayout,
}

func init() {
	frameCmd.AddCommand(frameLayoutCmd)

	frameLayoutCmd.Flags().BoolVar(&layoutASCII, "ascii", false, "Also draw an ASCII elevation")
	frameLayoutCmd.Flags().IntVar(&layoutCols, "cols", 72, "ASCII elevation width in characters")
	frameLayoutCmd.Flags().IntVar(&layoutRows, "rows", 24, "ASCII elevation height in characters")
}

func runFrameLayout(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, model, err := generateModel(cmd)
	if err != nil {
		return err
	}
	p := model.Params

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     STEEL PORTAL FRAME LAYOUT - %s\n", p.Name)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "FRAME GEOMETRY:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Bay span:\t%.0f mm\n", p.BaySpan)
	fmt.Fprintf(w, "  Building length:\t%.0f mm\n", p.DepthSpan)
	fmt.Fprintf(w, "  Eave height:\t%.0f mm\n", p.EaveHeight())
	fmt.Fprintf(w, "  Roof pitch:\t%.2f°\n", p.Rafter.Angle)
	fmt.Fprintf(w, "  Ridge rise:\t%.1f mm\n", p.Rise())
	fmt.Fprintf(w, "  Rafter length:\t%.1f mm\n", p.RafterLength())
	fmt.Fprintf(w, "  Column spacing:\t%.1f mm\n", p.ColumnSpacing())
	fmt.Fprintf(w, "  Rafter spacing:\t%.1f mm\n", p.RafterSpacing())
	fmt.Fprintf(w, "  Purlin rise:\t%.1f mm\n", p.PurlinRise())
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "MEMBERS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Member\tX (mm)\tY (mm)\tZ (mm)\tTilt (°)\t\n")
	fmt.Fprintf(w, "  ──────\t──────\t──────\t──────\t────────\t\n")
	for _, inst := range model.Instances {
		o := inst.Origin()
		tilt := 0.0
		if inst.Placement.HasRotation() {
			tilt = inst.Placement.Angle * 180 / math.Pi
		}
		fmt.Fprintf(w, "  %s\t%.1f\t%.1f\t%.1f\t%.1f\t\n", inst.Label(), o[0], o[1], o[2], tilt)
	}
	w.Flush()
	fmt.Fprintln(out)

	for _, warning := range p.Warnings() {
		fmt.Fprintf(out, "  ⚠ %s\n", warning)
	}

	if layoutASCII {
		drawing, err := diagram.DrawASCIIElevation(model, layoutCols, layoutRows)
		if err != nil {
			return err
		}
		fmt.Fprint(out, drawing)
	}
	return nil
}
