package clipcopy

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
)

var clipboardWriteAll = clipboard.WriteAll

// Writer puts text on the system clipboard.
type Writer interface {
	WriteText(text string) error
}

// SystemWriter writes through the OS clipboard and, when that is unavailable
// (no xclip/xsel, remote session), falls back to an OSC52 escape sequence on
// the terminal.
type SystemWriter struct {
	osc *termenv.Output
}

// NewSystemWriter returns a SystemWriter. A nil terminal disables the OSC52
// fallback.
func NewSystemWriter(terminal io.Writer) *SystemWriter {
	w := &SystemWriter{}
	if terminal != nil {
		w.osc = termenv.NewOutput(terminal)
	}
	return w
}

// WriteText copies text. OSC52 gives no acknowledgement, so a fallback write
// is reported as success.
func (w *SystemWriter) WriteText(text string) error {
	err := clipboardWriteAll(text)
	if err == nil {
		return nil
	}
	if w.osc == nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	w.osc.Copy(text)
	return nil
}

var _ Writer = (*SystemWriter)(nil)
