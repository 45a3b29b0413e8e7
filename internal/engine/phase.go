package engine

import (
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// ProgressFunc receives phase transitions. Percent strictly increases over a
// run and reaches 100 with the "complete" phase.
type ProgressFunc func(percent int, label string)

// Phase is one step of an analysis run.
type Phase struct {
	Name  string
	Label string
	// Check is set for rule check phases.
	Check model.CheckType
}

// Collection and terminal phase names.
const (
	PhasePages     = "pages"
	PhaseVisuals   = "visuals"
	PhaseBookmarks = "bookmarks"
	PhaseComplete  = "complete"
)

// Phases returns every phase in run order. Disabled checks keep their phase
// so progress advances the same way for every configuration.
func Phases() []Phase {
	phases := []Phase{
		{Name: PhasePages, Label: "Collecting pages"},
		{Name: PhaseVisuals, Label: "Collecting visuals"},
		{Name: PhaseBookmarks, Label: "Collecting bookmarks"},
	}
	for _, check := range model.CheckTypes() {
		phases = append(phases, Phase{Name: check.String(), Label: "Checking " + strings.ToLower(check.Title()), Check: check})
	}
	return append(phases, Phase{Name: PhaseComplete, Label: "Complete"})
}

// percentAfter returns the progress reached once phase i of n has started.
func percentAfter(i, n int) int {
	if i >= n-1 {
		return 100
	}
	return (i + 1) * 100 / n
}
