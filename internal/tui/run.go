package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// AnalyzeFunc runs an analysis, reporting phases to progress.
type AnalyzeFunc func(ctx context.Context, progress engine.ProgressFunc) (*model.AnalysisResult, error)

type program interface {
	Run() (tea.Model, error)
	Send(msg tea.Msg)
}

// Run drives analyze behind the progress view written to out and returns
// its outcome once the run ends. Run never returns before analyze does.
func Run(ctx context.Context, title string, out io.Writer, analyze AnalyzeFunc) (*model.AnalysisResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(title, cancel), tea.WithOutput(out))
	return drive(ctx, cancel, p, analyze)
}

func drive(ctx context.Context, cancel context.CancelFunc, p program, analyze AnalyzeFunc) (*model.AnalysisResult, error) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		result, err := analyze(ctx, func(percent int, label string) {
			p.Send(PhaseMsg{Percent: percent, Label: label})
		})
		p.Send(DoneMsg{Result: result, Err: err})
	}()

	final, err := p.Run()
	cancel()
	<-done

	if err != nil {
		return nil, err
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected progress model %T", final)
	}
	return m.Result()
}
