package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		percent int
		label   string
	}{
		{"renders zero", 0, "0%"},
		{"renders partial completion", 41, "41%"},
		{"renders full completion", 100, "100%"},
		{"clamps overflow", 180, "100%"},
		{"clamps negative", -5, "0%"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewProgress().View(tt.percent)
			require.Contains(t, view, tt.label)
		})
	}
}

func TestProgressBarTakesUpSpace(t *testing.T) {
	t.Parallel()

	view := NewProgress().View(50)
	require.True(t, len(strings.TrimSpace(view)) > len("50%"),
		"expected view to contain progress bar in addition to label")
}
