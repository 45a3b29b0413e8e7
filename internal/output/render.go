package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	severityStyles = map[model.Severity]lipgloss.Style{
		model.SeverityError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		model.SeverityWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		model.SeverityInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

// Render writes result to w in the given format.
func Render(w io.Writer, result *model.AnalysisResult, format Format) error {
	if result == nil {
		return fmt.Errorf("render: result is nil")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		_, err := io.WriteString(w, Text(result))
		return err
	default:
		return fmt.Errorf("render: unsupported format %q", format)
	}
}

// Text renders a human readable report: a header, issues grouped by
// severity in result order, diagnostics and the summary.
func Text(result *model.AnalysisResult) string {
	var b strings.Builder

	name := result.ReportName
	if strings.TrimSpace(name) == "" {
		name = result.ReportID
	}
	b.WriteString(headingStyle.Render("Accessibility report: "+name) + "\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d pages, %d visuals, %d bookmarks, run %s",
		len(result.Pages), len(result.Visuals), len(result.Bookmarks), result.RunID)) + "\n")
	if result.Cancelled {
		b.WriteString(severityStyles[model.SeverityWarning].Render("Analysis was cancelled; results are partial.") + "\n")
	}

	if len(result.Issues) == 0 {
		b.WriteString(sectionStyle.Render("No issues found.") + "\n")
	}
	for _, sev := range model.Severities() {
		var group []model.Issue
		for _, issue := range result.Issues {
			if issue.Severity == sev {
				group = append(group, issue)
			}
		}
		if len(group) == 0 {
			continue
		}

		style := severityStyles[sev]
		b.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", style.Render(strings.ToUpper(sev.String())), len(group))) + "\n")
		for _, issue := range group {
			writeIssue(&b, issue)
		}
	}

	if len(result.Diagnostics) > 0 {
		b.WriteString(sectionStyle.Render(fmt.Sprintf("Diagnostics (%d)", len(result.Diagnostics))) + "\n")
		for _, d := range result.Diagnostics {
			fmt.Fprintf(&b, "  %s\n", d)
		}
	}

	s := result.Summary
	b.WriteString(sectionStyle.Render("Summary") + "\n")
	fmt.Fprintf(&b, "  %d issues: %d errors, %d warnings, %d info\n",
		s.Total, s.Count(model.SeverityError), s.Count(model.SeverityWarning), s.Count(model.SeverityInfo))
	for _, check := range model.CheckTypes() {
		if n := s.ByCheck[check]; n > 0 {
			fmt.Fprintf(&b, "  %-22s %d\n", check.Title(), n)
		}
	}
	return b.String()
}

func writeIssue(b *strings.Builder, issue model.Issue) {
	location := issue.Page
	if issue.Visual != "" {
		location += " / " + issue.Visual
	}
	fmt.Fprintf(b, "  • %s [%s]\n", location, issue.Check.Title())
	fmt.Fprintf(b, "    %s\n", issue.Description)
	if issue.CurrentValue != "" {
		fmt.Fprintf(b, "    Current: %s\n", issue.CurrentValue)
	}
	if issue.Recommendation != "" {
		fmt.Fprintf(b, "    Fix: %s\n", issue.Recommendation)
	}
	if issue.WCAG != "" {
		fmt.Fprintf(b, "    %s\n", mutedStyle.Render("WCAG "+issue.WCAG))
	}
}
