package checks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// AltText checks the alternative text of data visuals: missing text is an
// error, placeholder text a warning and overly long text informational.
func AltText(in *Input) []model.Issue {
	var issues []model.Issue
	maxLen := in.Rules.AltTextMaxLength

	for _, v := range in.checkable() {
		if !in.Index.Kind(v).IsData() {
			continue
		}

		text := ""
		if v.AltText != nil {
			text = strings.TrimSpace(*v.AltText)
		}

		switch {
		case text == "":
			issue := visualIssue(in, model.CheckAltText, model.SeverityError, v, WCAGNonTextContent)
			issue.Description = "Data visual has no alt text"
			issue.Recommendation = "Add alt text that states the insight the visual conveys, not just its type."
			issues = append(issues, issue)
		case in.Rules.IsGenericAltText(text):
			issue := visualIssue(in, model.CheckAltText, model.SeverityWarning, v, WCAGNonTextContent)
			issue.Description = "Alt text is a generic placeholder"
			issue.Recommendation = "Replace the placeholder with a description of what the data shows."
			issue.CurrentValue = text
			issues = append(issues, issue)
		case maxLen > 0 && utf8.RuneCountInString(text) > maxLen:
			issue := visualIssue(in, model.CheckAltText, model.SeverityInfo, v, WCAGNonTextContent)
			issue.Description = fmt.Sprintf("Alt text is longer than %d characters", maxLen)
			issue.Recommendation = "Keep alt text concise; screen readers may truncate long descriptions."
			issue.CurrentValue = fmt.Sprintf("%d characters", utf8.RuneCountInString(text))
			issues = append(issues, issue)
		}
	}

	return issues
}
