package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runCheckWithUI tokenizes files while a Bubble Tea view renders progress on out.
func runCheckWithUI(ctx context.Context, out io.Writer, title, baseDir string, files []string, jobs int, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		fs, results, err := driver.TokenizeFiles(ctx, baseDir, files, jobs, optsCopy)
		outcomeCh <- checkOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI больше не читает канал; дочитываем, чтобы воркеры не блокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
