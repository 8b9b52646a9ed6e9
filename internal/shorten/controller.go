// Package shorten holds the submit → loading → success/error state machine of
// the shortening form.
//
// Every request carries the generation it was issued under; a completion is
// applied only while its generation is still current, so a response that
// arrives after a reset is dropped.
package shorten

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/csheth/shortlink/internal/shortener"
	"github.com/csheth/shortlink/internal/urlcheck"
)

// User-facing messages.
const (
	MsgInvalidURL    = "Insira uma URL válida (http://...)"
	MsgRequestFailed = "Erro ao encurtar link."
)

// Phase enumerates the form states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseSuccess
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// State is the active phase plus its payload. Message is set only in
// PhaseError and Result only in PhaseSuccess.
type State struct {
	Phase   Phase
	Message string
	Result  *shortener.Result
}

// Request is one outbound shortening call.
type Request struct {
	Gen uint64
	URL string
}

// Completion is the outcome of Run for a Request.
type Completion struct {
	Gen    uint64
	Result shortener.Result
	Err    error
}

// Controller is owned by the event loop. Only Run may be called from another
// goroutine.
type Controller struct {
	client shortener.Client
	logger *zap.Logger

	gen   uint64
	state State
	// inFlight is the generation of the request whose Run has not been
	// completed yet, or zero. Reset does not clear it.
	inFlight uint64
}

// New returns a Controller in PhaseIdle.
func New(client shortener.Client, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{client: client, logger: logger}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Busy reports whether a request is still running, even if Reset already
// made its response stale.
func (c *Controller) Busy() bool {
	return c.inFlight != 0
}

// Generation returns the generation of the most recent request or reset.
func (c *Controller) Generation() uint64 {
	return c.gen
}

// Submit starts a new request for input. It returns false when no network
// call must be made: either a request is still running, including one that
// Reset made stale (state untouched), or input failed validation (state
// becomes PhaseError).
func (c *Controller) Submit(input string) (Request, bool) {
	if c.state.Phase == PhaseLoading || c.inFlight != 0 {
		c.logger.Debug("submit ignored while a request is running",
			zap.Uint64("gen", c.gen),
			zap.Uint64("in_flight", c.inFlight),
		)
		return Request{}, false
	}
	c.state = State{Phase: PhaseIdle}

	input = strings.TrimSpace(input)
	if !urlcheck.Valid(input) {
		c.state = State{Phase: PhaseError, Message: MsgInvalidURL}
		return Request{}, false
	}

	c.gen++
	c.inFlight = c.gen
	c.state = State{Phase: PhaseLoading}
	c.logger.Info("shorten submitted", zap.Uint64("gen", c.gen), zap.String("url", input))
	return Request{Gen: c.gen, URL: input}, true
}

// Run performs the network call for req. It does not touch controller state.
func (c *Controller) Run(ctx context.Context, req Request) Completion {
	result, err := c.client.Shorten(ctx, req.URL)
	return Completion{Gen: req.Gen, Result: result, Err: err}
}

// Complete applies done if it belongs to the pending request and reports
// whether it did.
func (c *Controller) Complete(done Completion) bool {
	if done.Gen == c.inFlight {
		c.inFlight = 0
	}
	if c.state.Phase != PhaseLoading || done.Gen != c.gen {
		c.logger.Info("stale shorten response discarded",
			zap.Uint64("gen", done.Gen),
			zap.Uint64("current", c.gen),
			zap.Stringer("phase", c.state.Phase),
		)
		return false
	}
	if done.Err != nil {
		c.logger.Warn("shorten failed", zap.Uint64("gen", done.Gen), zap.Error(done.Err))
		c.state = State{Phase: PhaseError, Message: MsgRequestFailed}
		return true
	}
	result := done.Result
	c.state = State{Phase: PhaseSuccess, Result: &result}
	c.logger.Info("shorten succeeded", zap.Uint64("gen", done.Gen), zap.String("short_url", result.ShortURL))
	return true
}

// Reset returns to PhaseIdle and invalidates any request still in flight.
func (c *Controller) Reset() {
	c.gen++
	c.state = State{Phase: PhaseIdle}
}
