package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// TabOrder flags visuals without a tab order, tab order values shared by
// several visuals of a page, and pages whose tab sequence strays from the
// top-to-bottom, left-to-right reading order.
func TabOrder(in *Input) []model.Issue {
	var issues []model.Issue
	threshold := in.Config.MismatchThreshold()

	for _, page := range in.Index.Pages {
		var ordered []model.Visual
		for _, v := range in.Index.VisualsOn(page.ID) {
			if !v.Checkable() {
				continue
			}
			if !v.HasTabOrder() {
				issue := visualIssue(in, model.CheckTabOrder, model.SeverityWarning, v, WCAGFocusOrder)
				issue.Description = "Visual has no tab order"
				issue.Recommendation = "Set an explicit tab order in the selection pane so keyboard users reach the visual in a predictable sequence."
				issue.CurrentValue = "unset"
				issues = append(issues, issue)
				continue
			}
			ordered = append(ordered, v)
		}

		issues = append(issues, duplicateTabOrders(page, ordered)...)

		if mismatched, ok := readingOrderMismatches(ordered, threshold); ok {
			issue := pageIssue(model.CheckTabOrder, model.SeverityInfo, page, WCAGFocusOrder)
			issue.Description = "Tab order does not follow the visual reading order"
			issue.Recommendation = "Order visuals top to bottom, then left to right, unless a different sequence is intentional."
			issue.CurrentValue = fmt.Sprintf("%d of %d visuals out of reading order", mismatched, len(ordered))
			issues = append(issues, issue)
		}
	}

	return issues
}

// duplicateTabOrders reports each shared tab order value once, in the order
// the values first appear.
func duplicateTabOrders(page model.Page, ordered []model.Visual) []model.Issue {
	groups := make(map[int][]string)
	var values []int
	for _, v := range ordered {
		if _, ok := groups[v.TabOrder]; !ok {
			values = append(values, v.TabOrder)
		}
		groups[v.TabOrder] = append(groups[v.TabOrder], v.DisplayName())
	}

	var issues []model.Issue
	for _, value := range values {
		names := groups[value]
		if len(names) < 2 {
			continue
		}
		issue := pageIssue(model.CheckTabOrder, model.SeverityWarning, page, WCAGFocusOrder)
		issue.Description = fmt.Sprintf("%d visuals share tab order %d", len(names), value)
		issue.Recommendation = "Give every visual on the page a distinct tab order."
		issue.CurrentValue = strings.Join(names, ", ")
		issues = append(issues, issue)
	}
	return issues
}

// readingOrderMismatches compares the reading order (Y, then X, then input
// order) against the declared order (tab order, then input order) and
// returns the number of positions that differ. ok is true when that number
// exceeds threshold times the number of ordered visuals. Fewer than two
// visuals never mismatch.
func readingOrderMismatches(ordered []model.Visual, threshold float64) (int, bool) {
	if len(ordered) < 2 {
		return 0, false
	}

	reading := make([]int, len(ordered))
	declared := make([]int, len(ordered))
	for i := range ordered {
		reading[i] = i
		declared[i] = i
	}

	sort.SliceStable(reading, func(a, b int) bool {
		pa, pb := ordered[reading[a]].Position, ordered[reading[b]].Position
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return pa.X < pb.X
	})
	sort.SliceStable(declared, func(a, b int) bool {
		return ordered[declared[a]].TabOrder < ordered[declared[b]].TabOrder
	})

	mismatched := 0
	for i := range reading {
		if reading[i] != declared[i] {
			mismatched++
		}
	}
	return mismatched, float64(mismatched) > threshold*float64(len(ordered))
}
