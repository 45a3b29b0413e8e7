package model

import "time"

// AnalysisResult is the outcome of one analysis run. The engine hands it to
// the caller and keeps no reference to it.
type AnalysisResult struct {
	RunID       string       `yaml:"run_id" json:"run_id"`
	ReportID    string       `yaml:"report_id" json:"report_id"`
	ReportName  string       `yaml:"report_name,omitempty" json:"report_name,omitempty"`
	Pages       []Page       `yaml:"pages" json:"pages"`
	Visuals     []Visual     `yaml:"visuals" json:"visuals"`
	Bookmarks   []Bookmark   `yaml:"bookmarks" json:"bookmarks"`
	Issues      []Issue      `yaml:"issues" json:"issues"`
	Summary     Summary      `yaml:"summary" json:"summary"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty" json:"diagnostics,omitempty"`
	StartedAt   time.Time    `yaml:"started_at" json:"started_at"`
	FinishedAt  time.Time    `yaml:"finished_at" json:"finished_at"`
	DurationMS  int64        `yaml:"duration_ms" json:"duration_ms"`
	Cancelled   bool         `yaml:"cancelled,omitempty" json:"cancelled,omitempty"`
}

// IssuesFor returns the issues raised by a single check, in result order.
func (r *AnalysisResult) IssuesFor(check CheckType) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Check == check {
			out = append(out, issue)
		}
	}
	return out
}

// Lines renders every issue with Issue.Line.
func (r *AnalysisResult) Lines() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		out[i] = issue.Line()
	}
	return out
}
