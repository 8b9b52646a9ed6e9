package tui

const (
	minContentWidth   = 40
	maxContentWidth   = 96
	horizontalPadding = 4
	submitButtonWidth = 14
	minBackdropHeight = 2
	maxBackdropHeight = 6
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	contentWidth   int
	inputWidth     int
	backdropHeight int
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(80, 24)
	return l
}

// Update recomputes the layout for a window of width x height cells.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height

	content := width - horizontalPadding
	if content < minContentWidth {
		content = minContentWidth
	}
	if content > maxContentWidth {
		content = maxContentWidth
	}
	l.contentWidth = content

	// input row: border (2) + padding (2) + prompt + cursor + gap + button
	input := content - 4 - len([]rune(inputPrompt)) - 1 - 1 - submitButtonWidth
	if input < 10 {
		input = 10
	}
	l.inputWidth = input

	backdrop := height / 6
	if backdrop < minBackdropHeight {
		backdrop = minBackdropHeight
	}
	if backdrop > maxBackdropHeight {
		backdrop = maxBackdropHeight
	}
	l.backdropHeight = backdrop
}
