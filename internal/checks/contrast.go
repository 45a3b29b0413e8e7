package checks

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/color"
	"github.com/alexisbeaulieu97/reportaudit/internal/contrast"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// Contrast runs ContrastVisual over every checkable visual in input order.
func Contrast(in *Input) []model.Issue {
	var issues []model.Issue
	for _, v := range in.checkable() {
		issues = append(issues, ContrastVisual(in, v)...)
	}
	return issues
}

// ContrastVisual evaluates every styled element of one visual. It reads only
// its arguments, so callers may run it for several visuals concurrently.
func ContrastVisual(in *Input, v model.Visual) []model.Issue {
	if !v.Checkable() {
		return nil
	}

	policy := in.Config.ContrastPolicy()
	var issues []model.Issue

	for _, style := range v.Styles {
		target := contrast.TargetFor(style)
		wcag := contrast.Criterion(policy.Level, target)
		label := capitalize(style.Role.Label())

		fg, ok := in.Resolver.Resolve(style.Foreground)
		if !ok {
			issue := visualIssue(in, model.CheckColorContrast, model.SeverityInfo, v, wcag)
			issue.Description = fmt.Sprintf("Unable to automatically detect the %s color", style.Role.Label())
			issue.Recommendation = "Verify the contrast of this element manually."
			issue.CurrentValue = style.Foreground.String()
			issues = append(issues, issue)
			continue
		}

		layers := make([]color.RGBA, len(style.Backgrounds))
		for i, ref := range style.Backgrounds {
			layers[i] = in.Resolver.ResolveOr(ref, color.White)
		}
		bg, translucent := contrast.Flatten(layers)
		if !fg.Opaque() {
			translucent++
		}
		if translucent >= contrast.ManualReviewLayers {
			issue := visualIssue(in, model.CheckColorContrast, model.SeverityInfo, v, wcag)
			issue.Description = fmt.Sprintf("%s sits on multiple transparent layers, verify manually", label)
			issue.Recommendation = "Check the rendered contrast with a color picker or reduce the transparent layers."
			issue.CurrentValue = fmt.Sprintf("%d transparent layers", translucent)
			issues = append(issues, issue)
			continue
		}

		ratio := contrast.Contrast(fg, bg)
		verdict := policy.Evaluate(ratio, target)
		if !verdict.Flagged() {
			continue
		}

		issue := visualIssue(in, model.CheckColorContrast, verdict.Severity, v, verdict.WCAG)
		issue.CurrentValue = fmt.Sprintf("%s (%s on %s)", formatRatio(ratio), fg.Hex(), bg.Hex())
		switch verdict.Outcome {
		case contrast.OutcomeAdvisory:
			issue.Description = fmt.Sprintf("%s contrast meets AA but is below the AAA minimum of %s for %s",
				label, formatThreshold(verdict.Threshold), target)
			issue.Recommendation = "Increase contrast to reach the enhanced level if the report targets AAA."
		case contrast.OutcomeEscalated:
			issue.Description = fmt.Sprintf("%s contrast is below even the AA minimum of %s for %s",
				label, formatThreshold(verdict.Threshold), target)
			issue.Recommendation = "Darken the foreground or lighten the background; the pair fails both AA and AAA."
		default:
			issue.Description = fmt.Sprintf("%s contrast is below the %s minimum of %s for %s",
				label, policy.Level, formatThreshold(verdict.Threshold), target)
			issue.Recommendation = "Choose foreground and background colors with a higher contrast ratio."
		}
		issues = append(issues, issue)
	}

	return issues
}

// formatRatio truncates to two decimals so a failing ratio never prints as
// its threshold.
func formatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f:1", math.Floor((ratio+1e-9)*100)/100)
}

func formatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'g', -1, 64) + ":1"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
