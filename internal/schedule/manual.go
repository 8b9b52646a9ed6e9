package schedule

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type manualTimer struct {
	id  uint64
	due time.Duration
	fn  func()
}

// Manual is a Driver on a virtual clock. Nothing fires until Advance or Frame
// is called, which makes timing assertions exact.
type Manual struct {
	now    time.Duration
	nextID uint64
	timers []manualTimer
	frames frameQueue
}

// NewManual returns a Manual at virtual time zero.
func NewManual() *Manual {
	return &Manual{frames: newFrameQueue()}
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) id() uint64 {
	m.nextID++
	return m.nextID
}

// After schedules fn at Now()+d.
func (m *Manual) After(d time.Duration, fn func()) *Timer {
	id := m.id()
	m.timers = append(m.timers, manualTimer{id: id, due: m.now + d, fn: fn})
	return &Timer{id: id, cancel: m.cancelTimer}
}

// NextFrame queues fn for the next call to Frame.
func (m *Manual) NextFrame(fn func()) *Timer {
	id := m.id()
	m.frames.push(id, fn)
	return &Timer{id: id, cancel: m.frames.remove}
}

func (m *Manual) cancelTimer(id uint64) {
	for i, t := range m.timers {
		if t.id == id {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by d, firing due timers in order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		sort.SliceStable(m.timers, func(i, j int) bool {
			if m.timers[i].due == m.timers[j].due {
				return m.timers[i].id < m.timers[j].id
			}
			return m.timers[i].due < m.timers[j].due
		})
		if len(m.timers) == 0 || m.timers[0].due > target {
			break
		}
		next := m.timers[0]
		m.timers = m.timers[1:]
		m.now = next.due
		next.fn()
	}
	m.now = target
}

// Frame runs the callbacks queued for the next frame and returns how many ran.
func (m *Manual) Frame() int {
	return m.frames.flush()
}

// PendingTimers reports timers not yet fired or cancelled.
func (m *Manual) PendingTimers() int {
	return len(m.timers)
}

// PendingFrames reports callbacks waiting for the next frame.
func (m *Manual) PendingFrames() int {
	return m.frames.len()
}

// Cmd always returns nil; Manual never talks to a program.
func (m *Manual) Cmd() tea.Cmd {
	return nil
}

// Handle never consumes messages.
func (m *Manual) Handle(tea.Msg) bool {
	return false
}

var _ Driver = (*Manual)(nil)
