package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		contentWidth   int
		inputWidth     int
		backdropHeight int
	}{
		{name: "default", width: 80, height: 24, contentWidth: 76, inputWidth: 54, backdropHeight: 4},
		{name: "narrow", width: 30, height: 8, contentWidth: 40, inputWidth: 18, backdropHeight: 2},
		{name: "wide", width: 200, height: 60, contentWidth: 96, inputWidth: 74, backdropHeight: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.contentWidth != tc.contentWidth {
				t.Fatalf("content width mismatch: got %d want %d", layout.contentWidth, tc.contentWidth)
			}
			if layout.inputWidth != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", layout.inputWidth, tc.inputWidth)
			}
			if layout.backdropHeight != tc.backdropHeight {
				t.Fatalf("backdrop height mismatch: got %d want %d", layout.backdropHeight, tc.backdropHeight)
			}
		})
	}
}
