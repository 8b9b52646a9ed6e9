package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/shortlink/internal/spotlight"
)

const (
	glowRadius   = 28.0
	gridSpacing  = 4
	cellAspect   = 2.0
	backdropChar = "·"
)

// glowPalette runs from the unlit grid to the brightest cell under the glow.
var glowPalette = []lipgloss.Color{"236", "238", "240", "243", "246", "250"}

// glowLevel indexes glowPalette for the cell at (x, y) given the glow centre.
// Rows count double because terminal cells are about twice as tall as wide.
func glowLevel(x, y int, glow spotlight.Point) int {
	dx := float64(x) - glow.X
	dy := (float64(y) - glow.Y) * cellAspect
	intensity := 1 - math.Hypot(dx, dy)/glowRadius
	if intensity <= 0 {
		return 0
	}
	level := int(math.Ceil(intensity * float64(len(glowPalette)-1)))
	if level >= len(glowPalette) {
		level = len(glowPalette) - 1
	}
	return level
}

// renderBackdrop draws the dotted grid band whose top row sits at screen row
// top, lit around glow.
func renderBackdrop(width, height, top int, glow spotlight.Point) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		run := strings.Builder{}
		runLevel := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(lipgloss.NewStyle().Foreground(glowPalette[runLevel]).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < width; col++ {
			ch := " "
			if col%gridSpacing == 0 {
				ch = backdropChar
			}
			level := glowLevel(col, top+row, glow)
			if level != runLevel {
				flush()
				runLevel = level
			}
			run.WriteString(ch)
		}
		flush()
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
