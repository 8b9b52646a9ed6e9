// Package schedule defers callbacks onto the program's event loop.
//
// Callbacks never run concurrently with Update: Loop turns timers into Bubble
// Tea messages and runs the callback when the message comes back through the
// loop, and Manual runs them only when a test advances it.
package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameRate is the number of display frames per second.
const FrameRate = 60

// FrameInterval is the duration of one display frame.
const FrameInterval = time.Second / FrameRate

// Scheduler defers callbacks. Both methods return a Timer that cancels the
// callback if it has not fired yet.
type Scheduler interface {
	After(d time.Duration, fn func()) *Timer
	NextFrame(fn func()) *Timer
}

// Driver is a Scheduler that can be pumped by a tea.Model: Cmd drains the
// commands queued since the last call and Handle consumes the scheduler's own
// messages.
type Driver interface {
	Scheduler
	Cmd() tea.Cmd
	Handle(msg tea.Msg) bool
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	id     uint64
	cancel func(id uint64)
}

// Cancel drops the callback. It is safe to call on a nil or fired Timer.
func (t *Timer) Cancel() {
	if t == nil || t.cancel == nil {
		return
	}
	t.cancel(t.id)
	t.cancel = nil
}

// frameQueue keeps next-frame callbacks in registration order.
type frameQueue struct {
	order []uint64
	fns   map[uint64]func()
}

func newFrameQueue() frameQueue {
	return frameQueue{fns: map[uint64]func(){}}
}

func (q *frameQueue) push(id uint64, fn func()) {
	q.order = append(q.order, id)
	q.fns[id] = fn
}

func (q *frameQueue) remove(id uint64) {
	delete(q.fns, id)
}

func (q *frameQueue) len() int {
	return len(q.fns)
}

// flush swaps the queue out before running it so callbacks that schedule the
// next frame land in a fresh queue.
func (q *frameQueue) flush() int {
	order, fns := q.order, q.fns
	*q = newFrameQueue()
	ran := 0
	for _, id := range order {
		if fn, ok := fns[id]; ok {
			fn()
			ran++
		}
	}
	return ran
}
