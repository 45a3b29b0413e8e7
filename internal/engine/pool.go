package engine

import (
	"sync"

	"github.com/alexisbeaulieu97/reportaudit/internal/checks"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// runContrast fans the contrast check out per visual over a bounded pool.
// Every visual writes its own slot and slots are merged in input order, so
// the output does not depend on scheduling. The phase always runs to
// completion; cancellation is observed by the caller between phases.
func runContrast(in *checks.Input, check func(*checks.Input, model.Visual) []model.Issue) ([]model.Issue, []model.Diagnostic) {
	visuals := in.Index.PerVisual()
	workers := in.Config.Parallelism()
	if workers < 1 {
		workers = 1
	}

	slots := make([][]model.Issue, len(visuals))
	panics := make([]interface{}, len(visuals))
	pool := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for idx, v := range visuals {
		if !v.Checkable() || len(v.Styles) == 0 {
			continue
		}

		pool <- struct{}{}
		wg.Add(1)
		go func(idx int, v model.Visual) {
			defer wg.Done()
			defer func() { <-pool }()
			defer func() {
				if rec := recover(); rec != nil {
					panics[idx] = rec
				}
			}()

			slots[idx] = check(in, v)
		}(idx, v)
	}

	wg.Wait()

	var issues []model.Issue
	var diags []model.Diagnostic
	for idx := range visuals {
		if panics[idx] != nil {
			diags = append(diags, panicDiagnostic(model.CheckColorContrast, visuals[idx].ID, panics[idx]))
			continue
		}
		issues = append(issues, slots[idx]...)
	}
	return issues, diags
}
