package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/schedule"
	"github.com/spf13/cobra"
)

var (
	scheduleXLSX string
	schedulePDF  string
)

var frameScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print or export the member schedule",
	Long: `List the frame members by mark with lengths and steel masses.

Examples:
  goframe frame schedule
  goframe frame schedule --xlsx schedule.xlsx --pdf schedule.pdf
  goframe frame schedule --grade a992`,
	RunE: runFrameSchedule,
}

func init() {
	frameCmd.AddCommand(frameScheduleCmd)

	frameScheduleCmd.Flags().StringVar(&scheduleXLSX, "xlsx", "", "Export the schedule to an Excel workbook")
	frameScheduleCmd.Flags().StringVar(&schedulePDF, "pdf", "", "Export the schedule to a PDF report")
}

func runFrameSchedule(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := loggerFromContext(cmd.Context())

	_, model, err := generateModel(cmd)
	if err != nil {
		return err
	}
	sched, err := schedule.Build(model)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "MEMBER SCHEDULE - %s (%s)\n", sched.Title, sched.Grade.Name)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := schedule.Header()
	fmt.Fprintf(w, "  %s\n", strings.Join(header, "\t"))
	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("─", len([]rune(h)))
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(rule, "\t"))
	for _, e := range sched.Entries {
		fmt.Fprintf(w, "  %s\n", strings.Join(e.Row(), "\t"))
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Total: %d members, %.1f kg\n", sched.TotalCount(), sched.TotalMass())
	fmt.Fprintln(out)

	if scheduleXLSX != "" {
		if err := sched.WriteXLSX(scheduleXLSX); err != nil {
			return fmt.Errorf("writing %s: %w", scheduleXLSX, err)
		}
		logger.Info("Schedule exported", "path", scheduleXLSX)
	}
	if schedulePDF != "" {
		if err := sched.WritePDF(schedulePDF); err != nil {
			return fmt.Errorf("writing %s: %w", schedulePDF, err)
		}
		logger.Info("Schedule exported", "path", schedulePDF)
	}
	return nil
}
