package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/shortlink/internal/shorten"
)

type shortenResultMsg struct {
	completion shorten.Completion
}

// shortenJob has no timeout of its own: the HTTP transport defaults and the
// program context bound the call.
func shortenJob(controller *shorten.Controller, req shorten.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		done := controller.Run(ctx, req)
		return shortenResultMsg{completion: done}, done.Err
	}
}

// submitCmd is the submit transition as seen from the view: on success it
// blurs the input and starts the request job.
func (m *model) submitCmd() tea.Cmd {
	req, ok := m.shorten.Submit(m.input.Value())
	if !ok {
		return nil
	}
	m.pending = req
	m.input.Blur()
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindShorten, shortenJob(m.shorten, req)))
}

// applyShortenResult routes a completion through the controller and updates
// the view-owned pieces (input text, copy flag) when it was accepted.
func (m *model) applyShortenResult(msg shortenResultMsg) tea.Cmd {
	if !m.shorten.Complete(msg.completion) {
		return nil
	}
	m.pending = shorten.Request{}
	if m.shorten.State().Phase == shorten.PhaseSuccess {
		m.input.SetValue("")
		m.copier.Reset()
	}
	return m.input.Focus()
}

// resetCmd clears the form and invalidates any in-flight request.
func (m *model) resetCmd() tea.Cmd {
	m.shorten.Reset()
	m.pending = shorten.Request{}
	m.copier.Reset()
	m.input.SetValue("")
	return m.input.Focus()
}

// copyShortURL is the result card's onCopy.
func (m *model) copyShortURL() {
	state := m.shorten.State()
	if state.Phase != shorten.PhaseSuccess || state.Result == nil || state.Result.ShortURL == "" {
		return
	}
	m.copier.Copy(state.Result.ShortURL)
}
