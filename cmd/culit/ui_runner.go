package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/swanandpatil9195/culit/internal/driver"
	"github.com/swanandpatil9195/culit/internal/pipeline"
	"github.com/swanandpatil9195/culit/internal/ui"
)

type expandOutcome struct {
	results []driver.ExpandDirResult
	err     error
}

// runExpandDirWithUI runs a directory expansion behind a Bubble Tea progress
// view. The expansion itself runs in a goroutine; the UI drains its events.
func runExpandDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.ExpandDirOptions) ([]driver.ExpandDirResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan expandOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		res, err := driver.ExpandDir(ctx, dir, optsCopy)
		outcomeCh <- expandOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
