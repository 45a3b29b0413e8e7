package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

type sample struct {
	Name    string   `yaml:"name" validate:"required"`
	Checks  []string `yaml:"checks" validate:"dive,check_name"`
	Level   string   `yaml:"contrast_level" validate:"contrast_level"`
	Pattern string   `yaml:"pattern" validate:"omitempty,regexp"`
	Ratio   float64  `yaml:"ratio" validate:"gte=0,lte=1"`
}

func valid() sample {
	return sample{Name: "ok", Checks: []string{"tab_order", "alt_text"}, Level: "AAA", Pattern: `^page\s*\d*$`, Ratio: 0.5}
}

func TestGetValidatorIsSingleton(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(valid()))

	empty := valid()
	empty.Level = ""
	require.NoError(t, Struct(empty), "blank contrast level falls back to the default")
}

func TestStructUnknownCheck(t *testing.T) {
	t.Parallel()

	s := valid()
	s.Checks = []string{"tab_order", "spelling"}

	err := Struct(s)
	require.Error(t, err)

	var unknown *auditerrors.UnknownCheckError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "spelling", unknown.Name)
	require.Contains(t, unknown.Known, "color_contrast")

	var verr *auditerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "checks[1]", verr.Field)

	var invalid *auditerrors.InvalidValueError
	require.False(t, errors.As(err, &invalid))
}

func TestStructInvalidContrastLevel(t *testing.T) {
	t.Parallel()

	s := valid()
	s.Level = "AAAA"

	err := Struct(s)
	var invalid *auditerrors.InvalidValueError
	require.True(t, errors.As(err, &invalid))
	require.Equal(t, "AAAA", invalid.Value)
	require.Equal(t, []string{"AA", "AA_large", "AAA"}, invalid.Allowed)

	var verr *auditerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "contrast_level", verr.Field)
}

func TestStructGenericTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*sample)
		field  string
	}{
		{"required", func(s *sample) { s.Name = "" }, "name"},
		{"bad pattern", func(s *sample) { s.Pattern = "([" }, "pattern"},
		{"range", func(s *sample) { s.Ratio = 1.5 }, "ratio"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := valid()
			tt.mutate(&s)

			err := Struct(s)
			var verr *auditerrors.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tt.field, verr.Field)
			require.Contains(t, verr.Message, "failed validation")
		})
	}
}
