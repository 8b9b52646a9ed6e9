package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/csheth/shortlink/internal/shortener"
)

func TestResultViewLabels(t *testing.T) {
	p := newResultPresenter(newKeyMap())
	result := shortener.Result{OriginalURL: "https://example.com", ShortURL: "http://sho.rt/q"}

	idle := p.View(result, false, 76)
	assert.Contains(t, idle, copyLabel)
	assert.NotContains(t, idle, copiedLabel)
	assert.Contains(t, idle, "http://sho.rt/q")
	assert.Contains(t, idle, resultHeading)
	assert.Contains(t, idle, resultActive)

	copied := p.View(result, true, 76)
	assert.Contains(t, copied, copiedLabel)
}

func TestResultViewTruncatesOriginal(t *testing.T) {
	p := newResultPresenter(newKeyMap())
	long := "https://example.com/" + strings.Repeat("segment/", 40)
	view := p.View(shortener.Result{OriginalURL: long, ShortURL: "http://sho.rt/q"}, false, 60)

	assert.NotContains(t, view, long)
	assert.Contains(t, view, "…")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestResultHandleKey(t *testing.T) {
	p := newResultPresenter(newKeyMap())
	calls := 0
	onCopy := func() { calls++ }

	assert.False(t, p.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, onCopy))
	assert.Equal(t, 0, calls)

	assert.True(t, p.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlY}, onCopy))
	assert.Equal(t, 1, calls)
}
