package config

import (
	"runtime"

	"github.com/alexisbeaulieu97/reportaudit/internal/contrast"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

const (
	// DefaultMismatchThreshold is the share of visuals on a page whose reading
	// position may disagree with their tab position before the page is flagged.
	DefaultMismatchThreshold = 0.5
	// DefaultContrastLevel is the WCAG level checked when none is configured.
	DefaultContrastLevel = model.LevelAA
)

// Settings is the serialised form of a check configuration.
type Settings struct {
	Checks                    []string `yaml:"checks,omitempty" json:"checks,omitempty" validate:"omitempty,dive,check_name"`
	ContrastLevel             string   `yaml:"contrast_level,omitempty" json:"contrast_level,omitempty" validate:"contrast_level"`
	FlagAAAFailures           bool     `yaml:"flag_aaa_failures,omitempty" json:"flag_aaa_failures,omitempty"`
	FlagAAFailures            bool     `yaml:"flag_aa_failures,omitempty" json:"flag_aa_failures,omitempty"`
	TabOrderMismatchThreshold *float64 `yaml:"tab_order_mismatch_threshold,omitempty" json:"tab_order_mismatch_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	Parallelism               int      `yaml:"parallelism,omitempty" json:"parallelism,omitempty" validate:"omitempty,min=1,max=256"`
}

// CheckConfig is a validated, immutable check configuration.
type CheckConfig struct {
	enabled           map[model.CheckType]bool
	order             []model.CheckType
	level             model.ContrastLevel
	flagAAA           bool
	flagAA            bool
	mismatchThreshold float64
	parallelism       int
}

// Default enables every check at level AA.
func Default() *CheckConfig {
	cfg, err := New(Settings{})
	if err != nil {
		panic(err)
	}
	return cfg
}

// New validates settings and builds a CheckConfig. An empty check list
// enables every check.
func New(s Settings) (*CheckConfig, error) {
	if err := ValidateSettings(&s); err != nil {
		return nil, err
	}

	cfg := &CheckConfig{
		enabled:           make(map[model.CheckType]bool, len(model.CheckTypes())),
		level:             DefaultContrastLevel,
		flagAAA:           s.FlagAAAFailures,
		flagAA:            s.FlagAAFailures,
		mismatchThreshold: DefaultMismatchThreshold,
		parallelism:       s.Parallelism,
	}

	if len(s.Checks) == 0 {
		for _, check := range model.CheckTypes() {
			cfg.enabled[check] = true
		}
	}
	for _, name := range s.Checks {
		check, err := model.ParseCheckType(name)
		if err != nil {
			return nil, err
		}
		cfg.enabled[check] = true
	}
	for _, check := range model.CheckTypes() {
		if cfg.enabled[check] {
			cfg.order = append(cfg.order, check)
		}
	}

	if s.ContrastLevel != "" {
		level, err := model.ParseContrastLevel(s.ContrastLevel)
		if err != nil {
			return nil, err
		}
		cfg.level = level
	}
	if s.TabOrderMismatchThreshold != nil {
		cfg.mismatchThreshold = *s.TabOrderMismatchThreshold
	}
	if cfg.parallelism == 0 {
		cfg.parallelism = runtime.NumCPU()
	}

	return cfg, nil
}

// Enabled reports whether the check runs.
func (c *CheckConfig) Enabled(check model.CheckType) bool {
	return c.enabled[check]
}

// EnabledChecks lists the enabled checks in run order.
func (c *CheckConfig) EnabledChecks() []model.CheckType {
	return append([]model.CheckType(nil), c.order...)
}

// ContrastLevel returns the configured WCAG level.
func (c *CheckConfig) ContrastLevel() model.ContrastLevel {
	return c.level
}

// ContrastPolicy returns the contrast evaluation policy.
func (c *CheckConfig) ContrastPolicy() contrast.Policy {
	return contrast.Policy{
		Level:           c.level,
		FlagAAAFailures: c.flagAAA,
		FlagAAFailures:  c.flagAA,
	}
}

// MismatchThreshold returns the tab order mismatch threshold in [0, 1].
func (c *CheckConfig) MismatchThreshold() float64 {
	return c.mismatchThreshold
}

// Parallelism returns the number of contrast workers.
func (c *CheckConfig) Parallelism() int {
	return c.parallelism
}

// Settings returns the configuration in serialisable form.
func (c *CheckConfig) Settings() Settings {
	threshold := c.mismatchThreshold
	s := Settings{
		ContrastLevel:             c.level.String(),
		FlagAAAFailures:           c.flagAAA,
		FlagAAFailures:            c.flagAA,
		TabOrderMismatchThreshold: &threshold,
		Parallelism:               c.parallelism,
	}
	for _, check := range c.order {
		s.Checks = append(s.Checks, check.String())
	}
	return s
}
