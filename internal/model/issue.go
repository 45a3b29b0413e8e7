package model

import "fmt"

// Issue is a single accessibility finding.
type Issue struct {
	Check          CheckType `yaml:"check" json:"check"`
	Severity       Severity  `yaml:"severity" json:"severity"`
	Page           string    `yaml:"page" json:"page"`
	Visual         string    `yaml:"visual,omitempty" json:"visual,omitempty"`
	VisualType     string    `yaml:"visual_type,omitempty" json:"visual_type,omitempty"`
	Description    string    `yaml:"description" json:"description"`
	Recommendation string    `yaml:"recommendation" json:"recommendation"`
	CurrentValue   string    `yaml:"current_value,omitempty" json:"current_value,omitempty"`
	WCAG           string    `yaml:"wcag,omitempty" json:"wcag,omitempty"`
}

// Line renders the issue as a single stable line, used for listings and
// baseline comparison.
func (i Issue) Line() string {
	location := i.Page
	if i.Visual != "" {
		location = fmt.Sprintf("%s / %s", i.Page, i.Visual)
	}
	line := fmt.Sprintf("[%s] %s: %s: %s", i.Severity, i.Check, location, i.Description)
	if i.CurrentValue != "" {
		line = fmt.Sprintf("%s (current: %s)", line, i.CurrentValue)
	}
	return line
}

// Summary aggregates issue counts.
type Summary struct {
	Total      int               `yaml:"total" json:"total"`
	BySeverity map[Severity]int  `yaml:"by_severity" json:"by_severity"`
	ByCheck    map[CheckType]int `yaml:"by_check" json:"by_check"`
}

// NewSummary returns a summary with every severity and check present at zero.
func NewSummary() Summary {
	s := Summary{
		BySeverity: make(map[Severity]int, len(severityNames)),
		ByCheck:    make(map[CheckType]int, len(checkTypeNames)),
	}
	for _, sev := range Severities() {
		s.BySeverity[sev] = 0
	}
	for _, check := range CheckTypes() {
		s.ByCheck[check] = 0
	}
	return s
}

// Add counts an issue.
func (s *Summary) Add(issue Issue) {
	if s.BySeverity == nil || s.ByCheck == nil {
		*s = mergeInto(NewSummary(), *s)
	}
	s.Total++
	s.BySeverity[issue.Severity]++
	s.ByCheck[issue.Check]++
}

// Count returns the number of issues with the given severity.
func (s Summary) Count(sev Severity) int {
	return s.BySeverity[sev]
}

// HasErrors reports whether any Error issue was counted.
func (s Summary) HasErrors() bool {
	return s.BySeverity[SeverityError] > 0
}

func mergeInto(dst, src Summary) Summary {
	dst.Total += src.Total
	for k, v := range src.BySeverity {
		dst.BySeverity[k] += v
	}
	for k, v := range src.ByCheck {
		dst.ByCheck[k] += v
	}
	return dst
}
