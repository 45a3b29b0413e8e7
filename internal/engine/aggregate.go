package engine

import (
	"sort"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// Aggregate orders issues by severity, then page, then visual, keeping input
// order for ties, and counts them. The input slice is not modified.
func Aggregate(issues []model.Issue) ([]model.Issue, model.Summary) {
	sorted := make([]model.Issue, len(issues))
	copy(sorted, issues)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		return a.Visual < b.Visual
	})

	summary := model.NewSummary()
	for _, issue := range sorted {
		summary.Add(issue)
	}
	return sorted, summary
}
