package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/kernel"
	"github.com/spf13/cobra"
)

var (
	frameColumnsPerSide int
	frameRafterCount    int
	framePurlinCount    int
	frameAngle          float64
	frameBaySpan        float64
	frameDepthSpan      float64
	frameColumnOffset   float64
	frameGrade          string
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Generate and inspect steel portal frames",
	Long: `Generate a steel portal frame and inspect the result.

Every subcommand builds the same frame from the resolved configuration:
defaults, then the TOML file given by --config (or $GOFRAME_CONFIG),
then the flags below.

Subcommands:
  generate  - Build the frame and save it as a STEP file
  layout    - Print frame geometry and member placements
  schedule  - Print or export the member schedule
  diagram   - Export an elevation, plan or section drawing
  view      - Show the frame in a 3D viewer
  catalog   - List known sections and steel grades

Example TOML file:
  output = "shed.stp"

  [frame]
  name = "Machine shed"
  bay_span = 12000
  depth_span = 18000
  column_offset = 6000
  purlin_reference_span = 12000

  [frame.rafter]
  section = "IPE300"
  angle = 15
  count = 7

  [frame.purlin]
  section = "BOX125x175"
  count = 15`,
}

func init() {
	rootCmd.AddCommand(frameCmd)

	f := frameCmd.PersistentFlags()
	f.IntVar(&frameColumnsPerSide, "columns-per-side", 0, "Columns on each side of the frame (default 7)")
	f.IntVar(&frameRafterCount, "rafters", 0, "Number of rafter pairs (default 8)")
	f.IntVar(&framePurlinCount, "purlins", 0, "Number of purlins (default 13)")
	f.Float64Var(&frameAngle, "angle", 0, "Roof pitch in degrees (default 30)")
	f.Float64Var(&frameBaySpan, "bay-span", 0, "Clear span across the frame in mm (default 8000); moves the column offset to half of it")
	f.Float64Var(&frameDepthSpan, "depth-span", 0, "Building length along the ridge in mm (default 6000)")
	f.Float64Var(&frameColumnOffset, "column-offset", 0, "Column line offset along X in mm (default half the bay span, 4000)")
	f.StringVar(&frameGrade, "grade", "", "Steel grade for the schedule (default a36)")
}

// loadFrameConfig resolves the configuration and applies any frame flags
// the user set
func loadFrameConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("columns-per-side") {
		o.ColumnsPerSide = &frameColumnsPerSide
	}
	if flags.Changed("rafters") {
		o.RafterCount = &frameRafterCount
	}
	if flags.Changed("purlins") {
		o.PurlinCount = &framePurlinCount
	}
	if flags.Changed("angle") {
		o.Angle = &frameAngle
	}
	if flags.Changed("bay-span") {
		o.BaySpan = &frameBaySpan
	}
	if flags.Changed("depth-span") {
		o.DepthSpan = &frameDepthSpan
	}
	if flags.Changed("column-offset") {
		o.ColumnOffset = &frameColumnOffset
	}
	if flags.Changed("grade") {
		o.Grade = &frameGrade
	}
	cfg.Apply(o)
	return cfg, nil
}

// generateModel resolves the configuration and builds the frame
func generateModel(cmd *cobra.Command) (*config.Config, *frame.Model, error) {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadFrameConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Source != "" {
		logger.Debug("loaded frame definition", "path", cfg.Source)
	}

	prog := newProgress(logger)
	model, err := frame.NewGenerator(kernel.New(), cfg.Params, frame.WithLogger(logger)).Generate()
	if err != nil {
		return nil, nil, fmt.Errorf("generating frame: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d members", len(model.Instances)))
	return cfg, model, nil
}

// frameSummary lists the headline numbers of a model
func frameSummary(model *frame.Model) []string {
	p := model.Params
	return []string{
		fmt.Sprintf("Bay span:     %.0f mm", p.BaySpan),
		fmt.Sprintf("Length:       %.0f mm", p.DepthSpan),
		fmt.Sprintf("Eave height:  %.0f mm", p.EaveHeight()),
		fmt.Sprintf("Ridge height: %.0f mm", p.EaveHeight()+p.Rise()),
		fmt.Sprintf("Roof pitch:   %.1f°", p.Rafter.Angle),
		fmt.Sprintf("Members:      %d columns, %d rafters, %d purlins",
			model.Count(frame.RoleColumn), model.Count(frame.RoleRafter), model.Count(frame.RolePurlin)),
	}
}
