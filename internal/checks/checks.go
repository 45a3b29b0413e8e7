// Package checks implements the accessibility rule checks. Every check is a
// pure function of its Input and never modifies the document.
package checks

import (
	"github.com/alexisbeaulieu97/reportaudit/internal/color"
	"github.com/alexisbeaulieu97/reportaudit/internal/config"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/rules"
)

// ReportScope is the page label of findings that belong to the whole report.
const ReportScope = "(report)"

// WCAG success criteria referenced by the structural checks.
const (
	WCAGInfoAndRelationships = "1.3.2"
	WCAGNonTextContent       = "1.1.1"
	WCAGUseOfColor           = "1.4.1"
	WCAGFocusOrder           = "2.4.3"
	WCAGPageTitled           = "2.4.2"
	WCAGHeadingsAndLabels    = "2.4.6"
)

// Input is everything a check may read.
type Input struct {
	Doc      *model.Document
	Index    *Index
	Config   *config.CheckConfig
	Rules    *rules.Table
	Resolver *color.Resolver
}

// NewInput indexes doc. A nil cfg or table selects the defaults.
func NewInput(doc *model.Document, cfg *config.CheckConfig, table *rules.Table) *Input {
	if cfg == nil {
		cfg = config.Default()
	}
	if table == nil {
		table = rules.Default()
	}
	var theme model.ThemeTable
	if doc != nil {
		theme = doc.Theme
	}
	return &Input{
		Doc:      doc,
		Index:    NewIndex(doc, table),
		Config:   cfg,
		Rules:    table,
		Resolver: color.NewResolver(theme),
	}
}

// Func is a single check.
type Func func(in *Input) []model.Issue

var registry = map[model.CheckType]Func{
	model.CheckTabOrder:      TabOrder,
	model.CheckAltText:       AltText,
	model.CheckColorContrast: Contrast,
	model.CheckPageTitles:    PageTitles,
	model.CheckVisualTitles:  VisualTitles,
	model.CheckDataLabels:    DataLabels,
	model.CheckBookmarkNames: BookmarkNames,
	model.CheckHiddenPages:   HiddenPages,
}

// For returns the implementation of a check.
func For(check model.CheckType) (Func, bool) {
	fn, ok := registry[check]
	return fn, ok
}

// Run executes one check.
func Run(check model.CheckType, in *Input) []model.Issue {
	fn, ok := For(check)
	if !ok {
		return nil
	}
	return fn(in)
}

// checkable returns the visuals the per-visual checks may inspect, orphans
// included, in input order.
func (in *Input) checkable() []model.Visual {
	out := make([]model.Visual, 0, len(in.Index.PerVisual()))
	for _, v := range in.Index.PerVisual() {
		if v.Checkable() {
			out = append(out, v)
		}
	}
	return out
}

func visualIssue(in *Input, check model.CheckType, sev model.Severity, v model.Visual, wcag string) model.Issue {
	return model.Issue{
		Check:      check,
		Severity:   sev,
		Page:       in.Index.PageName(v.PageID),
		Visual:     v.DisplayName(),
		VisualType: v.Type,
		WCAG:       wcag,
	}
}

func pageIssue(check model.CheckType, sev model.Severity, page model.Page, wcag string) model.Issue {
	return model.Issue{
		Check:    check,
		Severity: sev,
		Page:     page.DisplayName(),
		WCAG:     wcag,
	}
}
