package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareIdenticalListings(t *testing.T) {
	t.Parallel()

	lines := []string{"[error] alt_text: Overview / Sales: Visual has no alt text"}
	delta := Compare(lines, lines)
	require.True(t, delta.Empty())
	require.Equal(t, "", delta.Unified("baseline", "current"))
}

func TestCompareReportsAddedAndRemovedLines(t *testing.T) {
	t.Parallel()

	baseline := []string{"a", "b", "c"}
	current := []string{"a", "c", "d"}

	delta := Compare(baseline, current)
	require.Equal(t, []string{"d"}, delta.Added)
	require.Equal(t, []string{"b"}, delta.Removed)

	out := delta.Unified("baseline.json", "current")
	require.True(t, strings.HasPrefix(out, "--- baseline.json\n+++ current\n@@ -1,3 +1,3 @@\n"))
	require.Contains(t, out, " a\n")
	require.Contains(t, out, "-b\n")
	require.Contains(t, out, "+d\n")
}

func TestCompareEmptyBaseline(t *testing.T) {
	t.Parallel()

	delta := Compare(nil, []string{"x", "y"})
	require.Equal(t, []string{"x", "y"}, delta.Added)
	require.Empty(t, delta.Removed)
	require.Contains(t, delta.Unified("a", "b"), "@@ -1,0 +1,2 @@")
}

func TestCompareKeepsLinesWhole(t *testing.T) {
	t.Parallel()

	baseline := []string{"[warning] tab_order: Overview: Visual order differs"}
	current := []string{"[warning] tab_order: Overview: Visual order differs from layout"}

	delta := Compare(baseline, current)
	require.Equal(t, current, delta.Added)
	require.Equal(t, baseline, delta.Removed)
}

func TestUnifiedTruncatesLargeDiffs(t *testing.T) {
	t.Parallel()

	current := make([]string, maxDiffLines+50)
	for i := range current {
		current[i] = fmt.Sprintf("line %d", i)
	}

	out := Compare(nil, current).Unified("a", "b")
	require.Contains(t, out, truncateMessage)
	require.LessOrEqual(t, strings.Count(out, "\n"), maxDiffLines+1)
}
