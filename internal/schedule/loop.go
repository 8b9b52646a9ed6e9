package schedule

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerFiredMsg struct {
	loop *Loop
	id   uint64
}

type frameMsg struct {
	loop *Loop
	at   time.Time
}

// Loop bridges Scheduler onto a running tea.Program using tea.Tick.
type Loop struct {
	interval time.Duration
	nextID   uint64
	timers   map[uint64]func()
	frames   frameQueue
	armed    bool
	queued   []tea.Cmd
}

// NewLoop returns a Loop ticking frames at FrameInterval.
func NewLoop() *Loop {
	return &Loop{
		interval: FrameInterval,
		timers:   map[uint64]func(){},
		frames:   newFrameQueue(),
	}
}

func (l *Loop) id() uint64 {
	l.nextID++
	return l.nextID
}

// After runs fn on the event loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) *Timer {
	id := l.id()
	l.timers[id] = fn
	l.queued = append(l.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{loop: l, id: id}
	}))
	return &Timer{id: id, cancel: func(id uint64) { delete(l.timers, id) }}
}

// NextFrame runs fn on the next frame tick. All callbacks registered before
// the tick share it.
func (l *Loop) NextFrame(fn func()) *Timer {
	id := l.id()
	l.frames.push(id, fn)
	if !l.armed {
		l.armed = true
		l.queued = append(l.queued, tea.Tick(l.interval, func(t time.Time) tea.Msg {
			return frameMsg{loop: l, at: t}
		}))
	}
	return &Timer{id: id, cancel: l.frames.remove}
}

// Cmd drains the ticks queued by After and NextFrame.
func (l *Loop) Cmd() tea.Cmd {
	if len(l.queued) == 0 {
		return nil
	}
	cmds := l.queued
	l.queued = nil
	return tea.Batch(cmds...)
}

// Handle runs the callbacks addressed by msg and reports whether msg belonged
// to this loop.
func (l *Loop) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if msg.loop != l {
			return false
		}
		fn, ok := l.timers[msg.id]
		delete(l.timers, msg.id)
		if ok {
			fn()
		}
		return true
	case frameMsg:
		if msg.loop != l {
			return false
		}
		l.armed = false
		l.frames.flush()
		return true
	}
	return false
}

var _ Driver = (*Loop)(nil)
