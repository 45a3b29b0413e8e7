package checks

import (
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// VisualTitles flags data visuals with no visible title.
func VisualTitles(in *Input) []model.Issue {
	var issues []model.Issue

	for _, v := range in.checkable() {
		if !in.Index.Kind(v).IsData() {
			continue
		}
		if v.Title != nil && strings.TrimSpace(*v.Title) != "" {
			continue
		}
		issue := visualIssue(in, model.CheckVisualTitles, model.SeverityWarning, v, WCAGHeadingsAndLabels)
		issue.Description = "Data visual has no title"
		issue.Recommendation = "Turn on the title and describe what the visual shows."
		issues = append(issues, issue)
	}

	return issues
}

// DataLabels flags charts whose data labels are off. Chart types that cannot
// be read without labels raise an error.
func DataLabels(in *Input) []model.Issue {
	var issues []model.Issue

	for _, v := range in.checkable() {
		if in.Index.Kind(v) != model.KindChart || v.DataLabels {
			continue
		}

		if in.Rules.IsLabelCritical(v.Type) {
			issue := visualIssue(in, model.CheckDataLabels, model.SeverityError, v, WCAGUseOfColor)
			issue.Description = "Data labels are off on a chart that relies on color and area alone"
			issue.Recommendation = "Turn on data labels so values can be read without distinguishing colors."
			issue.CurrentValue = "off"
			issues = append(issues, issue)
			continue
		}

		issue := visualIssue(in, model.CheckDataLabels, model.SeverityWarning, v, WCAGUseOfColor)
		issue.Description = "Data labels are off"
		issue.Recommendation = "Consider turning on data labels so values do not depend on color or axis reading."
		issue.CurrentValue = "off"
		issues = append(issues, issue)
	}

	return issues
}
