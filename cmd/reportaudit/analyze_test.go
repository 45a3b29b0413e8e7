package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const compliantReport = `
report_id: r1
report_name: Quarterly sales
pages:
  - id: p1
    name: Overview
visuals:
  - id: v1
    page_id: p1
    type: clusteredColumnChart
    tab_order: 0
    title: Sales by quarter
    alt_text: Sales rise steadily through the year
    data_labels: true
`

const failingReport = `
report_id: r2
pages:
  - id: p1
    name: Overview
visuals:
  - id: v1
    page_id: p1
    type: clusteredColumnChart
    tab_order: 0
    title: Sales by quarter
    data_labels: true
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := execute(args, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func executeCommand(cmd *cobra.Command, args ...string) error {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd.Execute()
}

func TestAnalyzeCompliantReportExitsZero(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "report.yaml", compliantReport)
	code, stdout, stderr := run(t, "analyze", doc, "--no-tui")
	require.Equal(t, exitOK, code, stderr)
	require.Contains(t, stdout, "Accessibility report: Quarterly sales")
	require.Contains(t, stdout, "No issues found.")
}

func TestAnalyzeErrorIssuesExitOne(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "report.yaml", failingReport)
	code, stdout, stderr := run(t, "analyze", doc, "--no-tui")
	require.Equal(t, exitIssues, code)
	require.Contains(t, stdout, "ERROR (1)")
	require.NotContains(t, stderr, "Error:")
}

func TestAnalyzeJSONOutput(t *testing.T) {
	t.Parallel()

	doc := writeFile(t, t.TempDir(), "report.json", `{"report_id": "r3", "pages": [{"id": "p1", "name": "Overview"}], "visuals": []}`)
	code, stdout, _ := run(t, "analyze", doc, "--no-tui", "--format", "json")
	require.Equal(t, exitOK, code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	require.Equal(t, "r3", decoded["report_id"])
}

func TestAnalyzeInputErrorsExitTwo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "report.yaml", compliantReport)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing document argument", []string{"analyze"}, "accepts 1 arg"},
		{"document does not exist", []string{"analyze", filepath.Join(dir, "absent.yaml")}, "does not exist"},
		{"document is a directory", []string{"analyze", dir}, "is a directory"},
		{"unknown format", []string{"analyze", doc, "--format", "xml"}, "xml"},
		{"invalid settings", []string{"analyze", doc, "--config", writeFile(t, dir, "settings.yaml", "contrast_level: AAAA\n")}, "contrast_level"},
		{"invalid document", []string{"analyze", writeFile(t, dir, "bad.yaml", "pages: [{id: p1}]\n")}, "report_id"},
		{"negative timeout", []string{"analyze", doc, "--timeout", "-1s"}, "negative"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, _, stderr := run(t, append(tt.args, "--no-tui")...)
			require.Equal(t, exitInput, code)
			require.Contains(t, stderr, tt.want)
		})
	}
}

func TestAnalyzeBaselineComparison(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := writeFile(t, dir, "report.yaml", failingReport)

	code, stdout, _ := run(t, "analyze", doc, "--no-tui", "--format", "json")
	require.Equal(t, exitIssues, code)
	baseline := writeFile(t, dir, "baseline.json", stdout)

	code, stdout, _ = run(t, "analyze", doc, "--no-tui", "--baseline", baseline)
	require.Equal(t, exitIssues, code)
	require.Contains(t, stdout, "No changes since baseline")

	fixed := writeFile(t, dir, "fixed.yaml", compliantReport)
	code, stdout, _ = run(t, "analyze", fixed, "--no-tui", "--baseline", baseline)
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "Changes since baseline: 0 new, 1 resolved")
	require.Contains(t, stdout, "-[error] alt_text")
}

func TestAnalyzeCommandPassesOptions(t *testing.T) {
	original := analyzeCmdRunner
	t.Cleanup(func() { analyzeCmdRunner = original })

	var got analyzeOptions
	analyzeCmdRunner = func(_ *cobra.Command, opts analyzeOptions) error {
		got = opts
		return nil
	}

	doc := writeFile(t, t.TempDir(), "report.yaml", compliantReport)
	err := executeCommand(newRootCmd(), "analyze", doc, "-v", "--no-tui", "--rules", "rules.yaml", "--timeout", "2s", "-f", "yaml")
	require.NoError(t, err)
	require.Equal(t, doc, got.DocumentPath)
	require.True(t, got.Verbose)
	require.False(t, got.Interactive)
	require.Equal(t, "rules.yaml", got.RulesPath)
	require.Equal(t, "yaml", got.Format)
	require.Equal(t, "2s", got.Timeout.String())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	require.Equal(t, exitOK, exitCode(nil))
	require.Equal(t, exitIssues, exitCode(errIssuesFound))
	require.Equal(t, exitInput, exitCode(inputError(boom)))
	require.Equal(t, exitRuntime, exitCode(runtimeError(boom)))
	require.Equal(t, exitInput, exitCode(boom))
	require.ErrorIs(t, runtimeError(boom), boom)
	require.NoError(t, inputError(nil))
}

func TestValidateAnalyzeOptions(t *testing.T) {
	t.Parallel()

	t.Run("returns error when document path is empty", func(t *testing.T) {
		t.Parallel()
		err := validateAnalyzeOptions(analyzeOptions{DocumentPath: "   "})
		require.Error(t, err)
		require.Contains(t, err.Error(), "required")
	})

	t.Run("accepts existing file", func(t *testing.T) {
		t.Parallel()
		doc := writeFile(t, t.TempDir(), "report.yaml", compliantReport)
		require.NoError(t, validateAnalyzeOptions(analyzeOptions{DocumentPath: doc}))
	})
}
