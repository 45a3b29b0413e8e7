package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/tui/components"
)

// PhaseMsg reports that the engine entered a phase.
type PhaseMsg struct {
	Percent int
	Label   string
}

// DoneMsg carries the outcome of the analysis run.
type DoneMsg struct {
	Result *model.AnalysisResult
	Err    error
}

type tickMsg struct{}

// Model contains the Bubbletea state for the analysis progress view.
type Model struct {
	title     string
	phases    components.PhaseList
	percent   int
	result    *model.AnalysisResult
	err       error
	finished  bool
	cancelled bool
	cancel    context.CancelFunc
}

// NewModel constructs a model for the report named title. cancel, when set,
// is called on Ctrl+C so the engine stops at the next phase boundary.
func NewModel(title string, cancel context.CancelFunc) Model {
	phases := engine.Phases()
	labels := make([]string, len(phases))
	for i, p := range phases {
		labels[i] = p.Label
	}
	return Model{
		title:  title,
		phases: components.NewPhaseList(labels),
		cancel: cancel,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// Percent returns the last reported progress.
func (m Model) Percent() int {
	return m.percent
}

// IsFinished reports whether the run has ended.
func (m Model) IsFinished() bool {
	return m.finished
}

// Result returns the analysis result once the run has ended.
func (m Model) Result() (*model.AnalysisResult, error) {
	return m.result, m.err
}
