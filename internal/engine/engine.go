// Package engine orchestrates an analysis run: it indexes the document, runs
// the enabled checks phase by phase and aggregates their findings.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/reportaudit/internal/checks"
	"github.com/alexisbeaulieu97/reportaudit/internal/config"
	"github.com/alexisbeaulieu97/reportaudit/internal/logger"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/rules"
	auditerrors "github.com/alexisbeaulieu97/reportaudit/pkg/errors"
)

// Clock supplies timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Logger   *logger.Logger
	Rules    *rules.Table
	Clock    Clock
	Progress ProgressFunc
	// RunID generates the identifier of each run.
	RunID func() string
}

// Engine runs analyses. It keeps no state between runs and is safe for
// concurrent use.
type Engine struct {
	log      *logger.Logger
	rules    *rules.Table
	clock    Clock
	progress ProgressFunc
	runID    func() string

	lookup    func(model.CheckType) (checks.Func, bool)
	perVisual func(*checks.Input, model.Visual) []model.Issue
}

// New creates an Engine.
func New(opts Options) *Engine {
	e := &Engine{
		log:      opts.Logger,
		rules:    opts.Rules,
		clock:    opts.Clock,
		progress: opts.Progress,
		runID:    opts.RunID,

		lookup:    checks.For,
		perVisual: checks.ContrastVisual,
	}
	if e.rules == nil {
		e.rules = rules.Default()
	}
	if e.clock == nil {
		e.clock = systemClock{}
	}
	if e.runID == nil {
		e.runID = func() string { return uuid.NewString() }
	}
	return e
}

// WithProgress returns a copy of the engine that reports to fn.
func (e *Engine) WithProgress(fn ProgressFunc) *Engine {
	clone := *e
	clone.progress = fn
	return &clone
}

// run carries the state of one Analyze call.
type run struct {
	engine *Engine
	log    *logger.Logger
	in     *checks.Input
	result *model.AnalysisResult
	issues []model.Issue
	last   int
}

// Analyze runs every enabled check over doc. A nil cfg uses config.Default.
//
// Structural problems in doc become diagnostics and never abort the run. When
// ctx is cancelled between phases, the partial result is returned with
// Cancelled set, together with ctx.Err().
func (e *Engine) Analyze(ctx context.Context, doc *model.Document, cfg *config.CheckConfig) (*model.AnalysisResult, error) {
	if doc == nil {
		return nil, auditerrors.NewValidationError("document", "document is nil", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	r := &run{
		engine: e,
		in:     checks.NewInput(doc, cfg, e.rules),
		result: &model.AnalysisResult{
			RunID:      e.runID(),
			ReportID:   doc.ReportID,
			ReportName: doc.ReportName,
			StartedAt:  e.clock.Now(),
		},
		last: -1,
	}
	r.log = e.log.WithFields(map[string]any{"run_id": r.result.RunID, "report_id": doc.ReportID})
	r.log.Debug("analysis started")

	phases := Phases()
	for i, phase := range phases {
		if phase.Name != PhaseComplete {
			if err := ctx.Err(); err != nil {
				return r.cancel(phase, err)
			}
		}

		r.report(percentAfter(i, len(phases)), phase)

		switch {
		case phase.Name == PhasePages:
			r.collectPages()
		case phase.Name == PhaseVisuals:
			r.collectVisuals()
		case phase.Name == PhaseBookmarks:
			r.result.Bookmarks = append([]model.Bookmark{}, r.in.Index.Bookmarks...)
		case phase.Check.Valid():
			if !cfg.Enabled(phase.Check) {
				r.log.WithFields(map[string]any{"phase": phase.Name}).Debug("check disabled")
				continue
			}
			if err := r.runCheck(phase.Check); err != nil {
				return r.cancel(phase, err)
			}
		}
	}

	r.finish()
	r.log.WithFields(map[string]any{
		"issues":   r.result.Summary.Total,
		"errors":   r.result.Summary.Count(model.SeverityError),
		"warnings": r.result.Summary.Count(model.SeverityWarning),
		"info":     r.result.Summary.Count(model.SeverityInfo),
		"duration": r.result.DurationMS,
	}).Info("analysis complete")

	return r.result, nil
}

func (r *run) collectPages() {
	r.result.Pages = append([]model.Page{}, r.in.Index.Pages...)
	if ids := r.in.Index.DuplicatePageIDs; len(ids) > 0 {
		r.diagnose(model.NewDiagnostic(model.DiagDuplicateID,
			fmt.Sprintf("%d page IDs appear more than once; later pages were ignored", len(ids)),
			map[string]interface{}{"kind": "page", "ids": ids}))
	}
}

func (r *run) collectVisuals() {
	r.result.Visuals = append([]model.Visual{}, r.in.Index.Visuals...)
	if ids := r.in.Index.DuplicateVisualIDs; len(ids) > 0 {
		r.diagnose(model.NewDiagnostic(model.DiagDuplicateID,
			fmt.Sprintf("%d visual IDs appear more than once; later visuals were ignored", len(ids)),
			map[string]interface{}{"kind": "visual", "ids": ids}))
	}
	if pos := r.in.Index.Unidentified; len(pos) > 0 {
		r.diagnose(model.NewDiagnostic(model.DiagMissingField,
			fmt.Sprintf("%d visuals have no ID and were not checked", len(pos)),
			map[string]interface{}{"field": "id", "positions": pos}))
	}
	if ids := r.in.Index.OrphanIDs(); len(ids) > 0 {
		r.diagnose(model.NewDiagnostic(model.DiagOrphanVisual,
			fmt.Sprintf("%d visuals reference a page that does not exist; page checks skip them", len(ids)),
			map[string]interface{}{"ids": ids}))
	}
	if ids := r.in.Index.Misplaced; len(ids) > 0 {
		r.diagnose(model.NewDiagnostic(model.DiagPageMembership,
			fmt.Sprintf("%d visuals are listed by a page they do not declare", len(ids)),
			map[string]interface{}{"ids": ids}))
	}
}

// runCheck executes one check. A panicking check is recorded as a diagnostic
// and the run continues.
func (r *run) runCheck(check model.CheckType) error {
	if check == model.CheckColorContrast {
		issues, diags := runContrast(r.in, r.engine.perVisual)
		r.issues = append(r.issues, issues...)
		for _, d := range diags {
			r.diagnose(d)
		}
		return nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.diagnose(panicDiagnostic(check, "", rec))
		}
	}()
	fn, ok := r.engine.lookup(check)
	if !ok {
		return nil
	}
	r.issues = append(r.issues, fn(r.in)...)
	return nil
}

func panicDiagnostic(check model.CheckType, visualID string, rec interface{}) model.Diagnostic {
	details := map[string]interface{}{"check": check.String(), "panic": fmt.Sprint(rec)}
	if visualID != "" {
		details["visual"] = visualID
	}
	return model.NewDiagnostic(model.DiagCheckPanicked, fmt.Sprintf("check %s failed internally: %v", check, rec), details)
}

func (r *run) diagnose(d model.Diagnostic) {
	r.result.Diagnostics = append(r.result.Diagnostics, d)
	fields := map[string]any{"code": string(d.Code)}
	if d.Code == model.DiagCheckPanicked {
		r.log.WithFields(fields).Error(fmt.Errorf("%s", d.Message), "check recovered from panic")
		return
	}
	r.log.WithFields(fields).Warn(d.Message)
}

// report notifies the progress callback. Panics in the callback are logged
// and swallowed.
func (r *run) report(percent int, phase Phase) {
	if percent <= r.last {
		return
	}
	r.last = percent
	r.log.WithFields(map[string]any{"phase": phase.Name, "percent": percent}).Debug(phase.Label)

	if r.engine.progress == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.log.WithFields(map[string]any{"phase": phase.Name}).Error(fmt.Errorf("%v", rec), "progress callback panicked")
		}
	}()
	r.engine.progress(percent, phase.Label)
}

func (r *run) cancel(phase Phase, err error) (*model.AnalysisResult, error) {
	r.result.Cancelled = true
	r.finish()
	r.log.WithFields(map[string]any{"phase": phase.Name}).Warn("analysis cancelled")
	return r.result, err
}

func (r *run) finish() {
	r.result.Issues, r.result.Summary = Aggregate(r.issues)
	r.result.FinishedAt = r.engine.clock.Now()
	r.result.DurationMS = r.result.FinishedAt.Sub(r.result.StartedAt).Milliseconds()
	if r.result.Pages == nil {
		r.result.Pages = []model.Page{}
	}
	if r.result.Visuals == nil {
		r.result.Visuals = []model.Visual{}
	}
	if r.result.Bookmarks == nil {
		r.result.Bookmarks = []model.Bookmark{}
	}
}
