package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/shortlink/internal/shortener"
)

// resultPresenter renders a successful result. It holds no state of its own:
// the copied flag comes from the clipboard controller and the copy action is
// handed in by the caller.
type resultPresenter struct {
	copyKey key.Binding
}

func newResultPresenter(keys keyMap) resultPresenter {
	return resultPresenter{copyKey: keys.Copy}
}

// HandleKey invokes onCopy when msg is the copy binding.
func (p resultPresenter) HandleKey(msg tea.KeyMsg, onCopy func()) bool {
	if !key.Matches(msg, p.copyKey) {
		return false
	}
	onCopy()
	return true
}

// View draws the card at the given outer width.
func (p resultPresenter) View(result shortener.Result, copied bool, width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	active := resultActiveStyle.Render("● " + resultActive)
	heading := resultHeadingStyle.Render(resultHeading)
	gap := inner - lipgloss.Width(heading) - lipgloss.Width(active)
	if gap < 1 {
		gap = 1
	}
	header := heading + strings.Repeat(" ", gap) + active

	original := lipgloss.JoinVertical(lipgloss.Left,
		originalLabelStyle.Render(originalLabel),
		originalURLStyle.Render(truncate.StringWithTail(result.OriginalURL, uint(inner-2), "…")),
	)

	button := copyButtonStyle.Render("⧉ " + copyLabel)
	if copied {
		button = copiedButtonStyle.Render("✓ " + copiedLabel)
	}
	short := shortURLStyle.Render(result.ShortURL)
	row := lipgloss.JoinHorizontal(lipgloss.Center, short, "  ", button)

	hint := helperStyle.Render(p.copyKey.Help().Key + " para " + strings.ToLower(copyLabel))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", original, "", row, hint)
	return resultCardStyle.Width(width - 2).Render(body)
}
