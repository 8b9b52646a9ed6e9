package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen render with and without escape sequences.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

// Contains reports whether the plain text of the frame contains substr.
func (f Frame) Contains(substr string) bool {
	return strings.Contains(f.Plain, substr)
}

var (
	// clearScreen (ED, any mode) starts a new frame.
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	// escapes matches CSI and OSC sequences.
	escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]|\x1b\][^\x07]*(?:\x07|\x1b\\)`)
	// shifts drops charset shift bytes and stray NULs.
	shifts = strings.NewReplacer("\x0e", "", "\x0f", "", "\x00", "")
)

func stripANSI(s string) string {
	return shifts.Replace(escapes.ReplaceAllString(s, ""))
}

// plainText strips escapes, trailing blanks on each line and trailing empty
// lines.
func plainText(s string) string {
	lines := strings.Split(stripANSI(s), "\n")
	end := 0
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		lines[i] = line
		if strings.TrimSpace(line) != "" {
			end = i + 1
		}
	}
	return strings.Join(lines[:end], "\n")
}

// parseFrames splits the stream at every screen clear and keeps the pieces
// that draw something. A stream that never clears is one frame.
func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, chunk := range clearScreen.Split(stream, -1) {
		chunk = strings.TrimPrefix(strings.Trim(chunk, "\x00"), "\x1b[H")
		plain := plainText(chunk)
		if plain == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: chunk, Plain: plain})
	}
	if len(frames) == 0 && stream != "" {
		frames = []Frame{{ANSI: stream, Plain: plainText(stream)}}
	}
	return frames
}

// FinalFrame returns the last frame, or false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// FirstContaining returns the earliest frame whose plain text contains substr.
func (r *Recording) FirstContaining(substr string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for _, f := range r.Frames {
		if f.Contains(substr) {
			return f, true
		}
	}
	return Frame{}, false
}

// Text is the whole stream with escape sequences removed. Renderers that
// repaint only changed lines leave no clean frame boundaries, so assertions
// that only need "was this ever shown" should use it.
func (r *Recording) Text() string {
	if r == nil {
		return ""
	}
	return stripANSI(strings.ReplaceAll(string(r.Raw), "\r", ""))
}
