package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

func TestAggregateOrdersBySeverityPageVisual(t *testing.T) {
	t.Parallel()

	in := []model.Issue{
		{Check: model.CheckHiddenPages, Severity: model.SeverityInfo, Page: "A"},
		{Check: model.CheckTabOrder, Severity: model.SeverityWarning, Page: "B", Visual: "z", Description: "first"},
		{Check: model.CheckAltText, Severity: model.SeverityError, Page: "B", Visual: "y"},
		{Check: model.CheckTabOrder, Severity: model.SeverityWarning, Page: "B", Visual: "z", Description: "second"},
		{Check: model.CheckAltText, Severity: model.SeverityError, Page: "A", Visual: "x"},
		{Check: model.CheckPageTitles, Severity: model.SeverityWarning, Page: "A"},
	}
	original := append([]model.Issue(nil), in...)

	out, summary := Aggregate(in)
	require.Equal(t, original, in, "input is not reordered")

	got := make([]string, len(out))
	for i, issue := range out {
		got[i] = issue.Severity.String() + "/" + issue.Page + "/" + issue.Visual + issue.Description
	}
	require.Equal(t, []string{
		"error/A/x",
		"error/B/y",
		"warning/A/",
		"warning/B/zfirst",
		"warning/B/zsecond",
		"info/A/",
	}, got)

	require.Equal(t, 6, summary.Total)
	require.Equal(t, 2, summary.Count(model.SeverityError))
	require.Equal(t, 3, summary.Count(model.SeverityWarning))
	require.Equal(t, 1, summary.Count(model.SeverityInfo))
	require.Equal(t, 2, summary.ByCheck[model.CheckTabOrder])
	require.Equal(t, 0, summary.ByCheck[model.CheckDataLabels])
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	out, summary := Aggregate(nil)
	require.Empty(t, out)
	require.Equal(t, 0, summary.Total)
	require.Len(t, summary.BySeverity, 3)
	require.Len(t, summary.ByCheck, len(model.CheckTypes()))
}

func TestPercentAfter(t *testing.T) {
	t.Parallel()

	n := len(Phases())
	require.Equal(t, 12, n)
	prev := 0
	for i := 0; i < n; i++ {
		p := percentAfter(i, n)
		require.Greater(t, p, prev)
		prev = p
	}
	require.Equal(t, 100, prev)
}
