package checks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/config"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

func strPtr(s string) *string { return &s }

func page(id, name string) model.Page {
	return model.Page{ID: id, Name: name}
}

// chart returns a fully compliant chart on page p1.
func chart(id string, tab int, x, y float64) model.Visual {
	return model.Visual{
		ID:         id,
		PageID:     "p1",
		Type:       "lineChart",
		TabOrder:   tab,
		Position:   model.Position{X: x, Y: y, Width: 100, Height: 100},
		AltText:    strPtr("Revenue grows 12% year over year"),
		Title:      strPtr("Revenue " + id),
		DataLabels: true,
	}
}

func newDoc(visuals ...model.Visual) *model.Document {
	return &model.Document{
		ReportID: "r1",
		Pages:    []model.Page{page("p1", "Overview")},
		Visuals:  visuals,
	}
}

func newInput(t *testing.T, doc *model.Document, s config.Settings) *Input {
	t.Helper()
	cfg, err := config.New(s)
	require.NoError(t, err)
	return NewInput(doc, cfg, nil)
}

func severities(issues []model.Issue) []model.Severity {
	out := make([]model.Severity, len(issues))
	for i, issue := range issues {
		out[i] = issue.Severity
	}
	return out
}
