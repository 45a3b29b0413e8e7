package contrast

import (
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// passEpsilon absorbs floating point noise so a ratio of exactly the
// threshold is a pass.
const passEpsilon = 1e-9

// Target is the kind of content a threshold applies to.
type Target int

const (
	TargetNormalText Target = iota
	TargetLargeText
	TargetUIComponent
)

func (t Target) String() string {
	switch t {
	case TargetLargeText:
		return "large text"
	case TargetUIComponent:
		return "UI component"
	default:
		return "normal text"
	}
}

// IsLargeText reports whether text of the given point size is "large":
// at least 18pt, or at least 14pt when bold.
func IsLargeText(size float64, bold bool) bool {
	return size >= 18 || (bold && size >= 14)
}

// TargetFor classifies a styled element.
func TargetFor(style model.ElementStyle) Target {
	if !style.Role.IsText() {
		return TargetUIComponent
	}
	if IsLargeText(style.FontSize, style.Bold) {
		return TargetLargeText
	}
	return TargetNormalText
}

var thresholds = map[model.ContrastLevel][3]float64{
	model.LevelAA:      {4.5, 3, 3},
	model.LevelAALarge: {3, 3, 3},
	model.LevelAAA:     {7, 4.5, 3},
}

// Threshold returns the minimum ratio for the level and target. Unknown
// levels use AA.
func Threshold(level model.ContrastLevel, target Target) float64 {
	row, ok := thresholds[level]
	if !ok {
		row = thresholds[model.LevelAA]
	}
	return row[target]
}

// Passes reports whether ratio meets threshold. The boundary is inclusive.
func Passes(ratio, threshold float64) bool {
	return ratio+passEpsilon >= threshold
}

// Policy carries the contrast settings of a check configuration.
type Policy struct {
	Level           model.ContrastLevel
	FlagAAAFailures bool
	FlagAAFailures  bool
}

// Outcome classifies a verdict.
type Outcome int

const (
	OutcomePass Outcome = iota
	// OutcomeFail is a failure against the configured level.
	OutcomeFail
	// OutcomeEscalated is a failure at AAA that also fails AA.
	OutcomeEscalated
	// OutcomeAdvisory passes AA but fails AAA.
	OutcomeAdvisory
)

// Verdict is the evaluation of one ratio.
type Verdict struct {
	Ratio     float64
	Threshold float64
	Target    Target
	Outcome   Outcome
	Severity  model.Severity
	WCAG      string
}

// Flagged reports whether the verdict should produce an issue.
func (v Verdict) Flagged() bool {
	return v.Outcome != OutcomePass
}

// Evaluate applies the policy to a ratio.
//
// At AA and AA_large a failure is an Error; with FlagAAAFailures a ratio that
// passes but misses AAA is Info. At AAA a failure is a Warning, escalated to
// Error when FlagAAFailures is set and the ratio also fails AA.
func (p Policy) Evaluate(ratio float64, target Target) Verdict {
	v := Verdict{Ratio: ratio, Target: target}

	if p.Level == model.LevelAAA {
		v.Threshold = Threshold(model.LevelAAA, target)
		v.WCAG = Criterion(model.LevelAAA, target)
		if Passes(ratio, v.Threshold) {
			return v
		}
		aa := Threshold(model.LevelAA, target)
		if p.FlagAAFailures && !Passes(ratio, aa) {
			v.Outcome = OutcomeEscalated
			v.Severity = model.SeverityError
			v.Threshold = aa
			v.WCAG = Criterion(model.LevelAA, target)
			return v
		}
		v.Outcome = OutcomeFail
		v.Severity = model.SeverityWarning
		return v
	}

	v.Threshold = Threshold(p.Level, target)
	v.WCAG = Criterion(model.LevelAA, target)
	if !Passes(ratio, v.Threshold) {
		v.Outcome = OutcomeFail
		v.Severity = model.SeverityError
		return v
	}
	if p.FlagAAAFailures {
		aaa := Threshold(model.LevelAAA, target)
		if !Passes(ratio, aaa) {
			v.Outcome = OutcomeAdvisory
			v.Severity = model.SeverityInfo
			v.Threshold = aaa
			v.WCAG = Criterion(model.LevelAAA, target)
		}
	}
	return v
}

// Criterion returns the WCAG success criterion that governs a level and target.
func Criterion(level model.ContrastLevel, target Target) string {
	switch {
	case target == TargetUIComponent:
		return "1.4.11"
	case level == model.LevelAAA:
		return "1.4.6"
	default:
		return "1.4.3"
	}
}
