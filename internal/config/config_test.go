package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

func ptr(f float64) *float64 { return &f }

func TestDefaultEnablesEverything(t *testing.T) {
	t.Parallel()

	cfg := Default()
	for _, check := range model.CheckTypes() {
		require.True(t, cfg.Enabled(check), check.String())
	}
	require.Equal(t, model.CheckTypes(), cfg.EnabledChecks())
	require.Equal(t, model.LevelAA, cfg.ContrastLevel())
	require.Equal(t, DefaultMismatchThreshold, cfg.MismatchThreshold())
	require.Equal(t, runtime.NumCPU(), cfg.Parallelism())

	policy := cfg.ContrastPolicy()
	require.False(t, policy.FlagAAAFailures)
	require.False(t, policy.FlagAAFailures)
}

func TestNewSubsetKeepsRunOrder(t *testing.T) {
	t.Parallel()

	cfg, err := New(Settings{
		Checks:                    []string{"hidden_pages", "TAB_ORDER", "color_contrast"},
		ContrastLevel:             "aaa",
		FlagAAFailures:            true,
		TabOrderMismatchThreshold: ptr(0.25),
		Parallelism:               3,
	})
	require.NoError(t, err)

	require.Equal(t, []model.CheckType{model.CheckTabOrder, model.CheckColorContrast, model.CheckHiddenPages}, cfg.EnabledChecks())
	require.False(t, cfg.Enabled(model.CheckAltText))
	require.Equal(t, model.LevelAAA, cfg.ContrastLevel())
	require.True(t, cfg.ContrastPolicy().FlagAAFailures)
	require.Equal(t, 0.25, cfg.MismatchThreshold())
	require.Equal(t, 3, cfg.Parallelism())
}

func TestEnabledChecksReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg := Default()
	checks := cfg.EnabledChecks()
	checks[0] = model.CheckHiddenPages
	require.Equal(t, model.CheckTabOrder, cfg.EnabledChecks()[0])
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings Settings
		field    string
		unknown  bool
		invalid  bool
	}{
		{name: "unknown check", settings: Settings{Checks: []string{"alt_text", "spelling"}}, field: "checks[1]", unknown: true},
		{name: "bad level", settings: Settings{ContrastLevel: "AAAA"}, field: "contrast_level", invalid: true},
		{name: "duplicate check", settings: Settings{Checks: []string{"alt_text", "Alt_Text"}}, field: "checks[1]"},
		{name: "threshold above one", settings: Settings{TabOrderMismatchThreshold: ptr(1.5)}, field: "tab_order_mismatch_threshold"},
		{name: "negative parallelism", settings: Settings{Parallelism: -2}, field: "parallelism"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.settings)
			require.Error(t, err)

			var verr *auditerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.field, verr.Field)

			var unknown *auditerrors.UnknownCheckError
			require.Equal(t, tt.unknown, errors.As(err, &unknown))
			var invalid *auditerrors.InvalidValueError
			require.Equal(t, tt.invalid, errors.As(err, &invalid))
		})
	}
}

func TestZeroThresholdIsHonoured(t *testing.T) {
	t.Parallel()

	cfg, err := New(Settings{TabOrderMismatchThreshold: ptr(0)})
	require.NoError(t, err)
	require.Equal(t, 0.0, cfg.MismatchThreshold())
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := New(Settings{Checks: []string{"page_titles", "alt_text"}, ContrastLevel: "AA_large", FlagAAAFailures: true, Parallelism: 2})
	require.NoError(t, err)

	rebuilt, err := New(original.Settings())
	require.NoError(t, err)
	require.Equal(t, original, rebuilt)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(write("valid.yaml", `
checks: [tab_order, alt_text, color_contrast]
contrast_level: AA
flag_aaa_failures: true
tab_order_mismatch_threshold: 0.5
parallelism: 4
`))
		require.NoError(t, err)
		require.Len(t, cfg.EnabledChecks(), 3)
		require.True(t, cfg.ContrastPolicy().FlagAAAFailures)
		require.Equal(t, 4, cfg.Parallelism())
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(write("empty.yaml", ""))
		require.NoError(t, err)
		require.Len(t, cfg.EnabledChecks(), len(model.CheckTypes()))
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := Load(write("typo.yaml", "checks: [alt_text]\ncontrast_levle: AAA\n"))
		var parseErr *auditerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		require.Equal(t, 2, parseErr.Line)
	})

	t.Run("unknown check", func(t *testing.T) {
		t.Parallel()
		_, err := Load(write("unknown.yaml", "checks: [alt_text, readability]\n"))
		var unknown *auditerrors.UnknownCheckError
		require.True(t, errors.As(err, &unknown))
		require.Equal(t, "readability", unknown.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		var parseErr *auditerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
	})
}
