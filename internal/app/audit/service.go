// Package audit wires document, settings and rule loading to the analysis
// engine for the command line.
package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/reportaudit/internal/config"
	"github.com/alexisbeaulieu97/reportaudit/internal/document"
	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/logger"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
	"github.com/alexisbeaulieu97/reportaudit/internal/rules"
	"github.com/alexisbeaulieu97/reportaudit/pkg/diff"
)

// PrepareRequest names the inputs of a run. Empty optional paths select the
// built-in defaults.
type PrepareRequest struct {
	DocumentPath string
	ConfigPath   string
	RulesPath    string
	BaselinePath string
}

// Prepared holds loaded and validated inputs.
type Prepared struct {
	DocumentPath string
	Document     *model.Document
	Config       *config.CheckConfig
	Rules        *rules.Table
	BaselinePath string
	Baseline     *model.AnalysisResult
}

// AnalyzeRequest configures an analysis run.
type AnalyzeRequest struct {
	Prepared      *Prepared
	LoggerOptions logger.Options
	Progress      engine.ProgressFunc
}

// Outcome is the result of a run together with its baseline comparison.
type Outcome struct {
	Prepared *Prepared
	Result   *model.AnalysisResult
	// Delta is set when a baseline was supplied.
	Delta *diff.Delta
}

// HasErrors reports whether the run raised any Error severity issue.
func (o *Outcome) HasErrors() bool {
	return o != nil && o.Result != nil && o.Result.Summary.Count(model.SeverityError) > 0
}

// Service coordinates input loading and analysis runs.
type Service struct {
	clock engine.Clock
}

// NewService constructs an audit service.
func NewService() *Service {
	return &Service{}
}

// Prepare loads every input named by req. Errors describe invalid input.
func (s *Service) Prepare(req PrepareRequest) (*Prepared, error) {
	if strings.TrimSpace(req.DocumentPath) == "" {
		return nil, fmt.Errorf("document path is required")
	}

	doc, err := document.Load(req.DocumentPath)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	cfg := config.Default()
	if req.ConfigPath != "" {
		if cfg, err = config.Load(req.ConfigPath); err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
	}

	table := rules.Default()
	if req.RulesPath != "" {
		if table, err = rules.Load(req.RulesPath); err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
	}

	prepared := &Prepared{
		DocumentPath: req.DocumentPath,
		Document:     doc,
		Config:       cfg,
		Rules:        table,
		BaselinePath: req.BaselinePath,
	}
	if req.BaselinePath != "" {
		if prepared.Baseline, err = document.LoadResult(req.BaselinePath); err != nil {
			return nil, fmt.Errorf("load baseline: %w", err)
		}
	}
	return prepared, nil
}

// Analyze runs the engine over prepared inputs. A cancelled run returns its
// partial outcome together with the context error.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*Outcome, error) {
	if req.Prepared == nil {
		return nil, fmt.Errorf("analyze: inputs were not prepared")
	}
	log, err := logger.New(req.LoggerOptions)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	eng := engine.New(engine.Options{
		Logger:   log.WithFields(map[string]any{"document": req.Prepared.DocumentPath}),
		Rules:    req.Prepared.Rules,
		Clock:    s.clock,
		Progress: req.Progress,
	})
	result, runErr := eng.Analyze(ctx, req.Prepared.Document, req.Prepared.Config)
	if result == nil {
		return nil, runErr
	}

	outcome := &Outcome{Prepared: req.Prepared, Result: result}
	if req.Prepared.Baseline != nil {
		delta := diff.Compare(req.Prepared.Baseline.Lines(), result.Lines())
		outcome.Delta = &delta
	}
	return outcome, runErr
}
