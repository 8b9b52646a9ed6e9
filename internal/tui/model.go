package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/shortlink/internal/clipcopy"
	"github.com/csheth/shortlink/internal/schedule"
	"github.com/csheth/shortlink/internal/shorten"
	"github.com/csheth/shortlink/internal/shortener"
	"github.com/csheth/shortlink/internal/spotlight"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Client     shortener.Client
	Logger     *zap.Logger
	Clipboard  clipcopy.Writer
	Scheduler  schedule.Driver
	Context    context.Context
	Mouse      bool
	InitialURL string
}

type model struct {
	config Config
	keys   keyMap
	layout pageLayout

	presenter resultPresenter
	input     textinput.Model
	spinner   spinner.Model
	help      help.Model

	loop    schedule.Driver
	jobs    *jobBus
	shorten *shorten.Controller
	copier  *clipcopy.Controller
	spot    *spotlight.Animator

	pending shorten.Request
	lastJob jobSnapshot
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loop := config.Scheduler
	if loop == nil {
		loop = schedule.NewLoop()
	}
	writer := config.Clipboard
	if writer == nil {
		writer = clipcopy.NewSystemWriter(os.Stdout)
	}

	layout := newPageLayout()

	input := textinput.New()
	input.Prompt = inputPrompt
	input.Placeholder = inputHint
	input.CharLimit = inputCharLimit
	input.Width = layout.inputWidth
	input.Focus()

	keys := newKeyMap()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return &model{
		config:    config,
		keys:      keys,
		presenter: newResultPresenter(keys),
		layout:    layout,
		input:     input,
		spinner:   spin,
		help:      help.New(),
		loop:      loop,
		jobs:      newJobBus(config.Context, logger),
		shorten:   shorten.New(config.Client, logger),
		copier:    clipcopy.New(writer, loop, logger),
		spot:      spotlight.New(loop, spotlight.DefaultSpring),
	}
}

func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.config.Mouse {
		cmds = append(cmds, m.spot.Attach())
	}
	if m.config.InitialURL != "" {
		m.input.SetValue(m.config.InitialURL)
		cmds = append(cmds, m.submitCmd())
	}
	return tea.Batch(cmds...)
}

// Update delegates to update and then drains whatever the scheduler queued
// while handling msg.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if loopCmd := m.loop.Cmd(); loopCmd != nil {
		cmd = tea.Batch(cmd, loopCmd)
	}
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	if m.loop.Handle(msg) {
		return nil
	}
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.shorten.State().Phase != shorten.PhaseLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.spot.PointerMoved(float64(msg.X), float64(msg.Y))
		return nil
	case jobSignalMsg:
		m.lastJob = msg.Snapshot
		return nil
	case jobResultEnvelope:
		m.lastJob = msg.Snapshot
		if payload, ok := msg.Payload.(shortenResultMsg); ok {
			return m.applyShortenResult(payload)
		}
		return nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.input.Width = m.layout.inputWidth
		m.help.Width = m.layout.contentWidth
		return nil
	}
	return nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		if m.spot.Attached() {
			return tea.Sequence(m.spot.Detach(), tea.Quit)
		}
		return tea.Quit
	}
	loading := m.shorten.State().Phase == shorten.PhaseLoading
	switch {
	case key.Matches(msg, m.keys.Reset):
		return m.resetCmd()
	case loading:
		// Input is disabled while a request is in flight.
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submitCmd()
	}
	if m.shorten.State().Phase == shorten.PhaseSuccess && m.presenter.HandleKey(msg, m.copyShortURL) {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}
