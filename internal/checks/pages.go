package checks

import (
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// PageTitles flags pages without a name and pages whose name matches one of
// the default-name patterns.
func PageTitles(in *Input) []model.Issue {
	var issues []model.Issue

	for _, page := range in.Index.Pages {
		name := strings.TrimSpace(page.Name)
		if name == "" {
			issue := pageIssue(model.CheckPageTitles, model.SeverityWarning, page, WCAGPageTitled)
			issue.Description = "Page has no name"
			issue.Recommendation = "Give the page a name that describes its content."
			issues = append(issues, issue)
			continue
		}

		rule, ok := in.Rules.PageTitle(name)
		if !ok {
			continue
		}
		issue := pageIssue(model.CheckPageTitles, rule.Severity, page, WCAGPageTitled)
		issue.Description = rule.Message
		issue.Recommendation = "Rename the page so screen reader users can tell pages apart."
		issue.CurrentValue = page.Name
		issues = append(issues, issue)
	}

	return issues
}

// HiddenPages reports every hidden page for review.
func HiddenPages(in *Input) []model.Issue {
	var issues []model.Issue

	for _, page := range in.Index.Pages {
		if !page.Hidden {
			continue
		}
		issue := pageIssue(model.CheckHiddenPages, model.SeverityInfo, page, WCAGInfoAndRelationships)
		issue.Description = "Page is hidden"
		issue.Recommendation = "Make sure the page is reachable through navigation such as buttons, drillthrough or bookmarks, or is intentionally excluded."
		issue.CurrentValue = "hidden"
		issues = append(issues, issue)
	}

	return issues
}
