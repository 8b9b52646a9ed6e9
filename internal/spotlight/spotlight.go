// Package spotlight tracks the mouse and eases a decorative glow towards it
// with a damped spring.
//
// Raw motion events are coalesced: however many arrive between two frames,
// the spring target moves once per frame, to the latest coordinates.
package spotlight

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/csheth/shortlink/internal/schedule"
)

// restThreshold is the distance and speed, in cells, under which the glow
// snaps to its target and stops requesting frames.
const restThreshold = 0.01

// Point is a position in terminal cells.
type Point struct {
	X, Y float64
}

// SpringParams describes a mass-spring-damper.
type SpringParams struct {
	Damping   float64
	Stiffness float64
	Mass      float64
}

// DefaultSpring is a fast follow with no visible oscillation.
var DefaultSpring = SpringParams{Damping: 30, Stiffness: 150, Mass: 0.1}

// AngularFrequency is the undamped natural frequency sqrt(k/m).
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)).
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

// Animator is owned by the event loop; none of its methods are safe for
// concurrent use.
type Animator struct {
	sched  schedule.Scheduler
	spring harmonica.Spring

	attached bool
	latest   Point
	dirty    bool
	frame    *schedule.Timer

	target   Point
	position Point
	velocity Point
	updates  int
}

// New builds an Animator stepping at schedule.FrameRate.
func New(sched schedule.Scheduler, params SpringParams) *Animator {
	return &Animator{
		sched:  sched,
		spring: harmonica.NewSpring(harmonica.FPS(schedule.FrameRate), params.AngularFrequency(), params.DampingRatio()),
	}
}

// Attach starts listening to pointer motion and returns the command that
// turns on all-motion mouse reporting.
func (a *Animator) Attach() tea.Cmd {
	a.attached = true
	return tea.EnableMouseAllMotion
}

// Detach stops listening, drops any scheduled frame and returns the command
// that turns mouse reporting off.
func (a *Animator) Detach() tea.Cmd {
	a.attached = false
	a.dirty = false
	a.frame.Cancel()
	a.frame = nil
	return tea.DisableMouse
}

// Attached reports whether pointer events are being consumed.
func (a *Animator) Attached() bool {
	return a.attached
}

// PointerMoved records a raw motion event. Only the latest coordinates
// survive until the next frame.
func (a *Animator) PointerMoved(x, y float64) {
	if !a.attached {
		return
	}
	a.latest = Point{X: x, Y: y}
	a.dirty = true
	a.requestFrame()
}

func (a *Animator) requestFrame() {
	if a.frame != nil {
		return
	}
	a.frame = a.sched.NextFrame(a.onFrame)
}

func (a *Animator) onFrame() {
	a.frame = nil
	if a.dirty {
		a.target = a.latest
		a.dirty = false
		a.updates++
	}
	a.position.X, a.velocity.X = a.spring.Update(a.position.X, a.velocity.X, a.target.X)
	a.position.Y, a.velocity.Y = a.spring.Update(a.position.Y, a.velocity.Y, a.target.Y)
	if a.atRest() {
		a.position = a.target
		a.velocity = Point{}
		return
	}
	a.requestFrame()
}

func (a *Animator) atRest() bool {
	return math.Abs(a.position.X-a.target.X) < restThreshold &&
		math.Abs(a.position.Y-a.target.Y) < restThreshold &&
		math.Abs(a.velocity.X) < restThreshold &&
		math.Abs(a.velocity.Y) < restThreshold
}

// Position is where the glow is drawn this frame.
func (a *Animator) Position() Point {
	return a.position
}

// Target is the pointer position the spring is pulling towards.
func (a *Animator) Target() Point {
	return a.target
}

// Updates counts how many times the target has moved.
func (a *Animator) Updates() int {
	return a.updates
}

// Animating reports whether a frame is scheduled.
func (a *Animator) Animating() bool {
	return a.frame != nil
}
