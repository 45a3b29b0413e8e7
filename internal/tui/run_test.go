package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/reportaudit/internal/engine"
	"github.com/alexisbeaulieu97/reportaudit/internal/model"
)

// fakeProgram feeds sent messages through the model until DoneMsg, or fails
// straight away when err is set.
type fakeProgram struct {
	model Model
	msgs  chan tea.Msg
	err   error
}

func newFakeProgram(err error) *fakeProgram {
	return &fakeProgram{model: NewModel("Sales", nil), msgs: make(chan tea.Msg, 16), err: err}
}

func (f *fakeProgram) Send(msg tea.Msg) {
	if f.err == nil {
		f.msgs <- msg
	}
}

func (f *fakeProgram) Run() (tea.Model, error) {
	if f.err != nil {
		return nil, f.err
	}
	for msg := range f.msgs {
		updated, _ := f.model.Update(msg)
		f.model = updated.(Model)
		if _, ok := msg.(DoneMsg); ok {
			break
		}
	}
	return f.model, nil
}

func TestDriveWaitsForAnalysisWhenProgramFails(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := false
	analyze := func(ctx context.Context, _ engine.ProgressFunc) (*model.AnalysisResult, error) {
		<-ctx.Done()
		finished = true
		return nil, ctx.Err()
	}

	result, err := drive(ctx, cancel, newFakeProgram(errors.New("terminal lost")), analyze)
	require.EqualError(t, err, "terminal lost")
	require.Nil(t, result)
	require.True(t, finished, "analysis returned before drive")
}

func TestDriveReturnsAnalysisResult(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reported []int
	analyze := func(_ context.Context, progress engine.ProgressFunc) (*model.AnalysisResult, error) {
		progress(25, "Collecting bookmarks")
		reported = append(reported, 25)
		return &model.AnalysisResult{ReportID: "r1"}, nil
	}

	result, err := drive(ctx, cancel, newFakeProgram(nil), analyze)
	require.NoError(t, err)
	require.Equal(t, "r1", result.ReportID)
	require.Equal(t, []int{25}, reported)
}
