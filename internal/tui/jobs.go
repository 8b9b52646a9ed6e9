package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type jobKind string

type jobStatus string

const (
	jobKindShorten jobKind = "shorten"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID       string
	Kind     jobKind
	Status   jobStatus
	Started  time.Time
	Duration time.Duration
	Err      string
}

// finish marks the snapshot done at now with err's outcome.
func (s jobSnapshot) finish(now time.Time, err error) jobSnapshot {
	s.Duration = now.Sub(s.Started)
	s.Status = jobStatusSucceeded
	if err != nil {
		s.Status = jobStatusFailed
		s.Err = err.Error()
	}
	return s
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

// jobRunner runs off the event loop; it must not touch model state.
type jobRunner func(context.Context) (tea.Msg, error)

type jobBus struct {
	counter int64
	ctx     context.Context
	logger  *zap.Logger
}

func newJobBus(ctx context.Context, logger *zap.Logger) *jobBus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &jobBus{ctx: ctx, logger: logger}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Start announces the job as running, then runs it off the event loop and
// delivers its payload in a jobResultEnvelope.
func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	snap := b.begin(kind)
	return tea.Sequence(
		func() tea.Msg { return jobSignalMsg{Snapshot: snap} },
		func() tea.Msg { return b.run(snap, runner) },
	)
}

func (b *jobBus) begin(kind jobKind) jobSnapshot {
	return jobSnapshot{ID: b.nextID(kind), Kind: kind, Status: jobStatusRunning, Started: time.Now()}
}

func (b *jobBus) run(snap jobSnapshot, runner jobRunner) jobResultEnvelope {
	payload, err := runner(b.ctx)
	done := snap.finish(time.Now(), err)
	b.logger.Debug("job finished",
		zap.String("id", done.ID),
		zap.String("kind", string(done.Kind)),
		zap.String("status", string(done.Status)),
		zap.Duration("duration", done.Duration),
		zap.Error(err),
	)
	return jobResultEnvelope{Snapshot: done, Payload: payload}
}
