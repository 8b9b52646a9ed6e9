package tuitest

import (
	"bytes"
	"io"
)

// terminalReplies answers the queries termenv and lipgloss send while probing
// the terminal. Without a reply they block until their timeout.
var terminalReplies = []struct {
	query, reply string
}{
	{"\x1b[6n", "\x1b[1;1R"},
	{"\x1b[c", "\x1b[?62;c"},
	{"\x1b]10;?\x07", "\x1b]10;rgb:cccc/cccc/cccc\x07"},
	{"\x1b]10;?\x1b\\", "\x1b]10;rgb:cccc/cccc/cccc\x1b\\"},
	{"\x1b]11;?\x07", "\x1b]11;rgb:0000/0000/0000\x07"},
	{"\x1b]11;?\x1b\\", "\x1b]11;rgb:0000/0000/0000\x1b\\"},
}

// tailKeep is how much of the stream survives between reads so a query split
// across two chunks is still recognised.
const tailKeep = 64

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, 4*tailKeep)}
}

// Process scans chunk, together with the tail of earlier chunks, and writes
// a reply for every recognised query in stream order.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for {
		at, reply, end := tr.nextQuery()
		if at < 0 {
			break
		}
		_, _ = io.WriteString(tr.w, reply)
		tr.buf = tr.buf[end:]
	}
	if len(tr.buf) > tailKeep {
		tr.buf = append(tr.buf[:0], tr.buf[len(tr.buf)-tailKeep:]...)
	}
}

// nextQuery finds the earliest query in the buffer.
func (tr *terminalResponder) nextQuery() (at int, reply string, end int) {
	at = -1
	for _, r := range terminalReplies {
		idx := bytes.Index(tr.buf, []byte(r.query))
		if idx < 0 || (at >= 0 && idx >= at) {
			continue
		}
		at, reply, end = idx, r.reply, idx+len(r.query)
	}
	return at, reply, end
}
