// Package diff compares issue listings line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Delta is the line-level difference between a baseline and a current
// listing. Lines keep the order in which they appear in their listing.
type Delta struct {
	Added   []string
	Removed []string
	ops     []op
}

type op struct {
	kind diffmatchpatch.Operation
	line string
}

// Empty reports whether the listings are identical.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Compare computes the line delta from baseline to current.
func Compare(baseline, current []string) Delta {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(joinLines(baseline), joinLines(current))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var delta Delta
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			delta.ops = append(delta.ops, op{kind: d.Type, line: line})
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				delta.Added = append(delta.Added, line)
			case diffmatchpatch.DiffDelete:
				delta.Removed = append(delta.Removed, line)
			}
		}
	}
	return delta
}

// Unified renders the delta in unified diff format. It returns an empty
// string when nothing changed and truncates diffs exceeding 10,000 lines.
func (d Delta) Unified(baselineLabel, currentLabel string) string {
	if d.Empty() {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", baselineLabel)
	fmt.Fprintf(&buf, "+++ %s\n", currentLabel)

	before, after := 0, 0
	for _, o := range d.ops {
		if o.kind != diffmatchpatch.DiffInsert {
			before++
		}
		if o.kind != diffmatchpatch.DiffDelete {
			after++
		}
	}
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", before, after)

	written := 3
	for _, o := range d.ops {
		if written >= maxDiffLines {
			buf.WriteString(truncateMessage + "\n")
			break
		}
		switch o.kind {
		case diffmatchpatch.DiffEqual:
			buf.WriteString(" ")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-")
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+")
		}
		buf.WriteString(o.line)
		buf.WriteString("\n")
		written++
	}
	return buf.String()
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
