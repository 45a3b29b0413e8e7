package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/tui/components"
)

func TestNewModelListsEveryPhase(t *testing.T) {
	t.Parallel()

	m := NewModel("Sales", nil)
	entries := m.phases.Entries()
	require.Len(t, entries, len(engine.Phases()))
	require.Equal(t, "Collecting pages", entries[0].Label)
	require.Equal(t, "Complete", entries[len(entries)-1].Label)
	for _, e := range entries {
		require.Equal(t, components.PhasePending, e.Status)
	}
	require.Zero(t, m.Percent())
	require.False(t, m.IsFinished())
}

func TestModelInitReturnsTickCommand(t *testing.T) {
	t.Parallel()

	require.NotNil(t, NewModel("", nil).Init())
}
