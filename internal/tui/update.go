package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case PhaseMsg:
		if msg.Percent > m.percent {
			m.percent = msg.Percent
		}
		m.phases = m.phases.Start(msg.Label)
		return m, nil
	case DoneMsg:
		m.result = msg.Result
		m.err = msg.Err
		m.finished = true
		if msg.Result != nil && msg.Result.Cancelled {
			m.cancelled = true
		}
		if msg.Err == nil {
			m.phases = m.phases.Finish()
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC && !m.cancelled {
			m.cancelled = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}
	}

	return m, nil
}
