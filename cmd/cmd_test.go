package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag back to its default and drops the context left
// by the previous run so commands can run again
func resetFlags(c *cobra.Command) {
	c.SetContext(nil)
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvOutput, "")
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootBanner(t *testing.T) {
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Go Steel Portal Frame Generator")
	assert.Contains(t, out, version.Version)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version.String())
}

func TestFrameGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.stp")

	out, logs, err := run(t, "frame", "generate", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully saved the portal frame to "+path)
	assert.Contains(t, out, "14 columns, 16 rafters, 13 purlins")
	assert.Contains(t, logs, "Generated 43 members")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ISO-10303-21;"))
	assert.Contains(t, string(data), "PRODUCT('Portal Frame'")
}

func TestFrameGenerateOutputFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.stp")
	t.Setenv(config.EnvConfig, "")
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"frame", "generate"})
	t.Setenv(config.EnvOutput, path)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.FileExists(t, path)
	assert.Contains(t, stdout.String(), path)
}

func TestFrameGenerateFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.stp")

	out, _, err := run(t, "frame", "generate", "-o", path,
		"--columns-per-side", "3", "--rafters", "2", "--purlins", "5", "--angle", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "6 columns, 4 rafters, 5 purlins")
	assert.Contains(t, out, "15.0°")
	assert.FileExists(t, path)
}

func TestFrameGenerateInvalidCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.stp")

	_, _, err := run(t, "frame", "generate", "-o", path, "--columns-per-side", "1")
	require.ErrorIs(t, err, frame.ErrInvalidCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing is written for an invalid frame")
}

func TestFrameGenerateUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "frame.stp")

	out, _, err := run(t, "frame", "generate", "-o", path)
	require.Error(t, err)
	assert.Contains(t, out, "Failed to save the portal frame to "+path)
}

func TestFrameGenerateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "shed.toml")
	stp := filepath.Join(dir, "shed.stp")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output = "`+filepath.ToSlash(stp)+`"

[frame]
name = "Shed"

[frame.purlin]
count = 4
`), 0644))

	out, _, err := run(t, "frame", "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Shed")
	assert.Contains(t, out, "4 purlins")
	assert.FileExists(t, stp)
}

func TestFrameLayout(t *testing.T) {
	out, _, err := run(t, "frame", "layout", "--ascii", "--cols", "40", "--rows", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "FRAME GEOMETRY:")
	assert.Contains(t, out, "2309.4 mm")
	assert.Contains(t, out, "rafter[7].right")
	assert.Contains(t, out, "purlin[12]")
	assert.NotContains(t, out, "⚠", "defaults raise no warnings")
	assert.Contains(t, out, "#")
}

func TestFrameBaySpanKeepsRidge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.stp")

	out, logs, err := run(t, "frame", "generate", "-o", path, "--bay-span", "12000")
	require.NoError(t, err)
	assert.Contains(t, out, "Bay span:     12000 mm")
	assert.NotContains(t, logs, "WARN")
	assert.FileExists(t, path)

	out, _, err = run(t, "frame", "layout", "--bay-span", "12000")
	require.NoError(t, err)
	assert.NotContains(t, out, "⚠")
	assert.Contains(t, out, "Column spacing")
}

func TestFrameColumnOffsetWarns(t *testing.T) {
	out, logs, err := run(t, "frame", "layout", "--column-offset", "3000")
	require.NoError(t, err)
	assert.Contains(t, out, "⚠ column offset 3000")
	assert.Contains(t, logs, "WARN")
}

func TestFrameSchedule(t *testing.T) {
	dir := t.TempDir()
	xlsx := filepath.Join(dir, "schedule.xlsx")
	pdf := filepath.Join(dir, "schedule.pdf")

	out, _, err := run(t, "frame", "schedule", "--xlsx", xlsx, "--pdf", pdf, "--grade", "a992")
	require.NoError(t, err)
	assert.Contains(t, out, "ASTM A992")
	assert.Contains(t, out, "C1")
	assert.Contains(t, out, "Total: 43 members")
	assert.FileExists(t, xlsx)
	assert.FileExists(t, pdf)
}

func TestFrameScheduleUnknownGrade(t *testing.T) {
	_, _, err := run(t, "frame", "schedule", "--grade", "mild")
	assert.ErrorContains(t, err, "unknown steel grade")
}

func TestFrameDiagram(t *testing.T) {
	dir := t.TempDir()
	for _, view := range []string{"elevation", "plan", "rafter", "purlin"} {
		t.Run(view, func(t *testing.T) {
			path := filepath.Join(dir, view+".svg")
			out, _, err := run(t, "frame", "diagram", "--view", view, "-o", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Diagram exported to: "+path)
			assert.FileExists(t, path)
		})
	}

	_, _, err := run(t, "frame", "diagram", "--view", "isometric")
	assert.ErrorContains(t, err, "unknown view")
}

func TestFrameViewASCII(t *testing.T) {
	out, _, err := run(t, "frame", "view", "--ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "o")
}

func TestFrameCatalog(t *testing.T) {
	out, _, err := run(t, "frame", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "IPE300")
	assert.Contains(t, out, "BOX125x175")
	assert.Contains(t, out, "ASTM A36")
}

func TestVerboseLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.stp")
	_, logs, err := run(t, "-v", "frame", "generate", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "DEBU")
	assert.Contains(t, logs, "frame assembled")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.WarnLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Generated 3 members")
	assert.Contains(t, buf.String(), "Generated 3 members (")
}
