package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/shortlink/internal/shorten"
)

// backdropTop is the screen row of the backdrop: header, then a blank line.
const backdropTop = 2

func (m *model) View() string {
	width := m.layout.contentWidth
	state := m.shorten.State()

	parts := []string{
		m.headerView(),
		renderBackdrop(m.layout.windowWidth, m.layout.backdropHeight, backdropTop, m.spot.Position()),
		m.heroView(width),
		m.formView(state),
	}
	if state.Phase == shorten.PhaseSuccess && state.Result != nil {
		parts = append(parts, m.presenter.View(*state.Result, m.copier.Copied(), width))
	}
	parts = append(parts, featuresView(width), m.statusView())
	return joinNonEmpty(parts)
}

func (m *model) headerView() string {
	brand := brandStyle.Render("⛓ " + brandName)
	badge := helperStyle.Render("GitHub " + versionBadge)
	gap := m.layout.windowWidth - lipgloss.Width(brand) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return brand + strings.Repeat(" ", gap) + badge
}

func (m *model) heroView(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		badgeStyle.Render("● "+onlineBadge),
		"",
		headlineStyle.Render(heroHeadline),
		sublineStyle.Render(heroSubline),
		taglineStyle.Render(wordwrap.String(heroTagline, width)),
	)
}

func (m *model) formView(state shorten.State) string {
	label := submitLabel
	if state.Phase == shorten.PhaseLoading {
		label = m.spinner.View()
	}
	button := submitButtonStyle.Width(submitButtonWidth - 2).Render(label)
	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", button)
	form := inputBoxStyle.Width(m.layout.contentWidth - 2).Render(row)
	if state.Phase == shorten.PhaseError {
		return lipgloss.JoinVertical(lipgloss.Left, form, errorBadgeStyle.Render(state.Message))
	}
	return form
}

func featuresView(width int) string {
	cellWidth := width/len(footerFeatures) - 2
	cells := make([]string, 0, len(footerFeatures))
	for _, f := range footerFeatures {
		cells = append(cells, featureStyle.Width(cellWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center, featureTitleStyle.Render(f.Title), helperStyle.Render(f.Desc)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *model) statusView() string {
	line := m.help.View(m.keys)
	if job := m.jobStatusLine(); job != "" {
		line = joinNonEmpty([]string{line, helperStyle.Render(job)})
	}
	return line
}

func (m *model) jobStatusLine() string {
	snap := m.lastJob
	switch snap.Status {
	case jobStatusRunning:
		return fmt.Sprintf("%s %s", snap.ID, snap.Status)
	case jobStatusSucceeded:
		return fmt.Sprintf("%s %s em %s", snap.ID, snap.Status, snap.Duration.Round(time.Millisecond))
	case jobStatusFailed:
		line := fmt.Sprintf("%s %s em %s: %s", snap.ID, snap.Status, snap.Duration.Round(time.Millisecond), snap.Err)
		return truncate.StringWithTail(line, uint(m.layout.contentWidth), "…")
	default:
		return ""
	}
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}
