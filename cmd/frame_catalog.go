package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/spf13/cobra"
)

var frameCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List known sections and steel grades",
	Long: `List the sections that rafter and purlin "section" keys can name,
including any added by the config file's catalog, and the steel grades
accepted by --grade.

Examples:
  goframe frame catalog
  goframe frame catalog --config shed.toml`,
	RunE: runFrameCatalog,
}

func init() {
	frameCmd.AddCommand(frameCatalogCmd)
}

func runFrameCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadFrameConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "SECTIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Name\tKind\tb (mm)\td (mm)\ttf (mm)\ttw (mm)\tA (mm²)\tMass (kg/m)\t\n")
	for _, name := range cfg.Catalog.Names() {
		prof := cfg.Catalog[name]
		props := prof.WithLength(1000).CalculateProperties()
		fmt.Fprintf(w, "  %s\t%s\t%g\t%g\t%g\t%g\t%.0f\t%.2f\t\n",
			name, prof.Kind, prof.Width, prof.Depth, prof.FlangeThickness, prof.WebThickness,
			props.Area, props.MassPerMetre)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STEEL GRADES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range nscp.GradeNames() {
		g := nscp.Grades[key]
		fmt.Fprintf(w, "  %s\t%s\tFy = %.0f MPa\tFu = %.0f MPa\n", key, g.Name, g.Fy, g.Fu)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
