package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Finished  bool
	Cancelled bool
	Failed    string
	Errors    int
	Warnings  int
	Info      int
	Diagnoses int
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary. Nothing is shown until the run ends.
func (s Summary) View() string {
	d := s.data
	if !d.Finished {
		return ""
	}

	var lines []string
	switch {
	case d.Failed != "":
		lines = append(lines, "Analysis failed: "+d.Failed)
	case d.Cancelled:
		lines = append(lines, "Analysis cancelled")
	default:
		lines = append(lines, "Analysis finished")
	}

	total := d.Errors + d.Warnings + d.Info
	if d.Failed == "" {
		lines = append(lines, fmt.Sprintf("Issues: %d (%d errors, %d warnings, %d info)", total, d.Errors, d.Warnings, d.Info))
	}
	if d.Diagnoses > 0 {
		lines = append(lines, fmt.Sprintf("Diagnostics: %d", d.Diagnoses))
	}
	return strings.Join(lines, "\n")
}
