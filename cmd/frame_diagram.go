package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var (
	diagramView   string
	diagramOutput string
)

var frameDiagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Export an elevation, plan or section drawing",
	Long: `Export a drawing of the frame or of one member's cross-section.

Views:
  elevation  - Frame seen along the building (XZ)
  plan       - Frame seen from above (XY)
  column     - Column cross-section
  rafter     - Rafter cross-section
  purlin     - Purlin cross-section

The format follows the file extension: .png, .svg or .pdf.

Examples:
  goframe frame diagram
  goframe frame diagram --view plan -o plan.svg
  goframe frame diagram --view rafter -o rafter.pdf`,
	RunE: runFrameDiagram,
}

func init() {
	frameCmd.AddCommand(frameDiagramCmd)

	frameDiagramCmd.Flags().StringVar(&diagramView, "view", "elevation", "Drawing to export: elevation, plan, column, rafter or purlin")
	frameDiagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Output file (default <view>.png)")
}

func runFrameDiagram(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	view := strings.ToLower(diagramView)
	filename := diagramOutput
	if filename == "" {
		filename = view + ".png"
	}

	_, model, err := generateModel(cmd)
	if err != nil {
		return err
	}
	p := model.Params

	var prof *section.Profile
	switch view {
	case "elevation":
		err = diagram.ExportElevation(model, filename)
	case "plan":
		err = diagram.ExportPlan(model, filename)
	case "column":
		c := p.ColumnProfile()
		prof = &c
	case "rafter":
		r := p.RafterProfile()
		prof = &r
	case "purlin":
		pu := p.PurlinProfile()
		prof = &pu
	default:
		return fmt.Errorf("unknown view %q (use elevation, plan, column, rafter or purlin)", diagramView)
	}
	if prof != nil {
		err = diagram.ExportSection(*prof, filename)
	}
	if err != nil {
		fmt.Fprintf(out, "Failed to export the %s drawing to %s\n", view, filename)
		return err
	}
	fmt.Fprintf(out, "Diagram exported to: %s\n", filename)
	return nil
}
