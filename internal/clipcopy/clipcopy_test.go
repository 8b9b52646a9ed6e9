package clipcopy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/csheth/shortlink/internal/schedule"
)

type recordingWriter struct {
	texts []string
	err   error
}

func (w *recordingWriter) WriteText(text string) error {
	w.texts = append(w.texts, text)
	return w.err
}

func TestCopySetsFlagUntilDelayElapses(t *testing.T) {
	sched := schedule.NewManual()
	writer := &recordingWriter{}
	c := New(writer, sched, zaptest.NewLogger(t))

	c.Copy("abc")
	assert.True(t, c.Copied())
	assert.Equal(t, []string{"abc"}, writer.texts)

	sched.Advance(ResetDelay - time.Millisecond)
	assert.True(t, c.Copied(), "flag must hold for the full window")

	sched.Advance(time.Millisecond)
	assert.False(t, c.Copied())
	assert.Zero(t, sched.PendingTimers())
}

func TestSecondCopyRestartsWindow(t *testing.T) {
	sched := schedule.NewManual()
	c := New(&recordingWriter{}, sched, nil)

	c.Copy("abc")
	sched.Advance(1000 * time.Millisecond)
	c.Copy("abc")

	sched.Advance(1000 * time.Millisecond)
	assert.True(t, c.Copied(), "stale reset from the first copy must not fire at 2000ms")

	sched.Advance(999 * time.Millisecond)
	assert.True(t, c.Copied())

	sched.Advance(1 * time.Millisecond)
	assert.False(t, c.Copied(), "flag clears at 3000ms")
	assert.Zero(t, sched.PendingTimers())
}

func TestCopyFailureStillRaisesFlag(t *testing.T) {
	sched := schedule.NewManual()
	c := New(&recordingWriter{err: errors.New("no clipboard")}, sched, zaptest.NewLogger(t))

	c.Copy("abc")
	assert.True(t, c.Copied())
}

func TestResetClearsFlagAndTimer(t *testing.T) {
	sched := schedule.NewManual()
	c := New(&recordingWriter{}, sched, nil)

	c.Copy("abc")
	c.Reset()
	assert.False(t, c.Copied())
	assert.Zero(t, sched.PendingTimers())

	sched.Advance(ResetDelay)
	assert.False(t, c.Copied())
}

func TestSystemWriterFallsBackToOSC52(t *testing.T) {
	original := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = original })
	clipboardWriteAll = func(string) error { return errors.New("no xclip") }

	var terminal bytes.Buffer
	w := NewSystemWriter(&terminal)
	require.NoError(t, w.WriteText("http://sho.rt/abc123"))
	assert.True(t, strings.Contains(terminal.String(), "\x1b]52;"), "expected OSC52 sequence, got %q", terminal.String())

	assert.Error(t, NewSystemWriter(nil).WriteText("x"))
}

func TestSystemWriterUsesClipboard(t *testing.T) {
	original := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = original })
	var got string
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}

	var terminal bytes.Buffer
	require.NoError(t, NewSystemWriter(&terminal).WriteText("abc"))
	assert.Equal(t, "abc", got)
	assert.Zero(t, terminal.Len())
}
