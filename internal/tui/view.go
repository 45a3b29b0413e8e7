package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render(fmt.Sprintf("Accessibility audit • %s", m.heading())))
	sections = append(sections, sectionStyle.Render("Progress"), components.NewProgress().View(m.percent))
	sections = append(sections, sectionStyle.Render("Phases"), renderPhases(m.phases.Entries()))

	summary := components.NewSummary(m.summaryData()).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderPhases(entries []components.PhaseEntry) string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf(" %s %s", StatusIcon(entry.Status), entry.Label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) summaryData() components.SummaryData {
	data := components.SummaryData{Finished: m.finished, Cancelled: m.cancelled}
	// A cancelled run also returns the context error; only other errors
	// count as failures.
	if m.err != nil && (m.result == nil || !m.result.Cancelled) {
		data.Failed = m.err.Error()
	}
	if m.result != nil {
		data.Errors = m.result.Summary.Count(model.SeverityError)
		data.Warnings = m.result.Summary.Count(model.SeverityWarning)
		data.Info = m.result.Summary.Count(model.SeverityInfo)
		data.Diagnoses = len(m.result.Diagnostics)
	}
	return data
}

func (m Model) heading() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Report"
}

// StatusIcon returns the glyph representing a phase status.
func StatusIcon(status string) string {
	switch status {
	case components.PhaseDone:
		return doneStyle.Render("✓")
	case components.PhaseRunning:
		return runningStyle.Render("⏳")
	default:
		return pendingStyle.Render("…")
	}
}
