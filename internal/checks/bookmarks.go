package checks

import (
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// BookmarkNames raises one finding per bookmark whose name is blank, matches
// a default-name pattern or was flagged as generated by the reader.
func BookmarkNames(in *Input) []model.Issue {
	var issues []model.Issue

	for _, b := range in.Index.Bookmarks {
		name := strings.TrimSpace(b.Name)
		issue := model.Issue{
			Check:          model.CheckBookmarkNames,
			Severity:       model.SeverityWarning,
			Page:           ReportScope,
			WCAG:           WCAGHeadingsAndLabels,
			Recommendation: "Rename the bookmark to describe the view it restores.",
			CurrentValue:   b.Name,
		}

		if name == "" {
			issue.Description = "Bookmark has no name"
			issue.CurrentValue = b.ID
			issues = append(issues, issue)
			continue
		}
		if rule, ok := in.Rules.BookmarkName(name); ok {
			issue.Severity = rule.Severity
			issue.Description = rule.Message
			issues = append(issues, issue)
			continue
		}
		if b.Generic {
			issue.Description = "Bookmark name looks auto-generated"
			issues = append(issues, issue)
		}
	}

	return issues
}
