package document

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

const yamlDocument = `
report_id: sales-2024
report_name: Quarterly sales
pages:
  - id: p1
    name: Overview
visuals:
  - id: v1
    page_id: p1
    type: clusteredColumnChart
    tab_order: 0
    position: {x: 10, y: 20}
    alt_text: Revenue by quarter
    styles:
      - role: title
        foreground: "#333333"
        backgrounds:
          - {theme: 2, percent: -0.25}
          - {token: background}
        font_size: 14
        bold: true
      - role: data_points
        foreground:
          gradient:
            - {value: 0, color: "#FFFFFF"}
            - {value: 1, color: "#000000"}
  - id: v2
    page_id: p1
    type: card
bookmarks:
  - id: b1
    name: Bookmark 1
theme:
  registered:
    data_colors: ["#118DFF", "#12239E", "#E66C37"]
    tokens: {background: "#FFFFFF"}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAMLDocument(t *testing.T) {
	t.Parallel()

	doc, err := Load(writeFile(t, "report.yaml", yamlDocument))
	require.NoError(t, err)

	require.Equal(t, "sales-2024", doc.ReportID)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Visuals, 2)
	require.Len(t, doc.Bookmarks, 1)

	v1 := doc.Visuals[0]
	require.True(t, v1.HasTabOrder())
	require.Equal(t, "Revenue by quarter", *v1.AltText)
	require.Len(t, v1.Styles, 2)

	title := v1.Styles[0]
	require.Equal(t, model.RoleTitle, title.Role)
	require.Equal(t, model.Literal("#333333"), title.Foreground)
	require.Equal(t, []model.ColorRef{model.ThemeColor(2, -0.25), model.SolidThemeColor("background")}, title.Backgrounds)
	require.True(t, title.Bold)

	points := v1.Styles[1]
	require.Equal(t, model.ColorGradient, points.Foreground.Kind)
	require.Len(t, points.Foreground.Stops, 2)

	require.False(t, doc.Visuals[1].HasTabOrder(), "absent tab order stays unset")
	require.Equal(t, []string{"#118DFF", "#12239E", "#E66C37"}, doc.Theme.Registered.DataColors)
}

func TestParseJSONDocument(t *testing.T) {
	t.Parallel()

	data := `{
  "report_id": "r1",
  "pages": [{"id": "p1", "name": "Page 1"}],
  "visuals": [
    {"id": "v1", "page_id": "p1", "type": "pieChart", "tab_order": 2,
     "styles": [{"role": "legend", "foreground": {"color": "#777777"}}]}
  ]
}`
	doc, err := Parse([]byte(data), "report.json")
	require.NoError(t, err)
	require.Equal(t, "r1", doc.ReportID)
	require.Equal(t, 2, doc.Visuals[0].TabOrder)
	require.Equal(t, model.RoleLegend, doc.Visuals[0].Styles[0].Role)
	require.Equal(t, model.Literal("#777777"), doc.Visuals[0].Styles[0].Foreground)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing report id",
			input: "pages: [{id: p1}]\n",
			check: func(t *testing.T, err error) {
				var verr *auditerrors.ValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "report_id", verr.Field)
			},
		},
		{
			name:  "visual without page",
			input: "report_id: r\nvisuals:\n  - id: v1\n",
			check: func(t *testing.T, err error) {
				var verr *auditerrors.ValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "visuals[0].page_id", verr.Field)
			},
		},
		{
			name:  "malformed yaml",
			input: "report_id: r\npages:\n  - id: [unclosed\n",
			check: func(t *testing.T, err error) {
				var perr *auditerrors.ParseError
				require.True(t, errors.As(err, &perr))
				require.Equal(t, "broken.yaml", perr.Path)
				require.Positive(t, perr.Line)
			},
		},
		{
			name:  "unknown role",
			input: "report_id: r\nvisuals:\n  - id: v1\n    page_id: p1\n    styles: [{role: footer}]\n",
			check: func(t *testing.T, err error) {
				var ierr *auditerrors.InvalidValueError
				require.True(t, errors.As(err, &ierr))
			},
		},
		{
			name:  "empty",
			input: "",
			check: func(t *testing.T, err error) {
				var perr *auditerrors.ParseError
				require.True(t, errors.As(err, &perr))
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input), "broken.yaml")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	var perr *auditerrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadResultReadsJSONOutput(t *testing.T) {
	t.Parallel()

	summary := model.NewSummary()
	issue := model.Issue{
		Check:       model.CheckAltText,
		Severity:    model.SeverityError,
		Page:        "Overview",
		Visual:      "Sales",
		Description: "Visual has no alt text",
	}
	summary.Add(issue)
	original := model.AnalysisResult{
		RunID:     "run-1",
		ReportID:  "r1",
		Issues:    []model.Issue{issue},
		Summary:   summary,
		StartedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	loaded, err := LoadResult(writeFile(t, "baseline.json", string(data)))
	require.NoError(t, err)
	require.Equal(t, original.Lines(), loaded.Lines())
	require.Equal(t, 1, loaded.Summary.Count(model.SeverityError))
	require.True(t, original.StartedAt.Equal(loaded.StartedAt))
}
