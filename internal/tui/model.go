// SPDX-License-Identifier: EPL-2.0

// Package tui is a terminal host for the timeline: it renders the
// waveform, playhead, label markers and scrollbar, and turns keys, wheel
// notches and mouse drags into orchestrator calls.
package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/wavescrub/label"
	"github.com/ik5/wavescrub/timeline"
)

const (
	// frameInterval paces Tick at about 30 frames per second.
	frameInterval = time.Second / 30
	// wheelNotch is the distance of one wheel notch in cells.
	wheelNotch = 3
	// zoomKeyFactor scales the zoom per +/- press.
	zoomKeyFactor = 1.2
)

// LoadFunc decodes the media into the orchestrator. It runs off the UI
// goroutine.
type LoadFunc func(ctx context.Context) error

// ReloadMsg asks the model to load the media again, as after the file
// changed on disk.
type ReloadMsg struct{}

type tickMsg time.Time

type loadedMsg struct{ err error }

// Options configure a Model.
type Options struct {
	Title  string
	Labels []label.Label
	Keys   *KeyMap
	Logger *slog.Logger

	// Context bounds every load; quitting cancels it. Defaults to
	// context.Background.
	Context context.Context
}

// Model is the bubbletea model.
type Model struct {
	o      *timeline.Orchestrator
	load   LoadFunc
	ctx    context.Context
	cancel context.CancelFunc
	title  string
	labels []label.Label
	keys   KeyMap
	help   help.Model
	log    *slog.Logger

	width  int
	height int

	state     timeline.State
	err       error
	seeking   bool // left button held on the timeline
	scrolling bool // left button held on the scrollbar thumb
}

// New returns a model over o. load may be nil when the caller loads the
// media itself.
func New(o *timeline.Orchestrator, load LoadFunc, opts Options) Model {
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	parent := opts.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	return Model{
		o:      o,
		load:   load,
		ctx:    ctx,
		cancel: cancel,
		title:  opts.Title,
		labels: label.Sorted(opts.Labels),
		keys:   keys,
		help:   help.New(),
		log:    log,
		state:  o.State(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadCmd() tea.Cmd {
	if m.load == nil {
		return nil
	}

	load, ctx := m.load, m.ctx

	return func() tea.Msg {
		return loadedMsg{err: load(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tickMsg:
		m.state = m.o.Tick()

		return m, tick()

	case loadedMsg:
		switch {
		case errors.Is(msg.err, timeline.ErrSuperseded):
			// a newer load owns the timeline
		case msg.err != nil:
			m.err = msg.err
		default:
			m.err = nil
		}
		m.state = m.o.State()

		return m, nil

	case ReloadMsg:
		m.log.Info("reloading media")

		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.state = m.o.State()

		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	vp := m.state.Viewport

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		m.o.Close()

		return m, tea.Quit

	case key.Matches(msg, m.keys.PlayPause):
		m.setErr(m.o.TogglePlayPause())

	case key.Matches(msg, m.keys.StepBack):
		m.setErr(m.o.StepFrames(-1))

	case key.Matches(msg, m.keys.StepFwd):
		m.setErr(m.o.StepFrames(1))

	case key.Matches(msg, m.keys.PrevLabel):
		if l, ok := label.Prev(m.labels, m.state.CurrentTime); ok {
			m.setErr(m.o.JumpTo(l.Timestamp))
		}

	case key.Matches(msg, m.keys.NextLabel):
		if l, ok := label.Next(m.labels, m.state.CurrentTime); ok {
			m.setErr(m.o.JumpTo(l.Timestamp))
		}

	case key.Matches(msg, m.keys.ZoomIn):
		m.o.SetZoom(vp.Zoom * zoomKeyFactor)

	case key.Matches(msg, m.keys.ZoomOut):
		m.o.SetZoom(vp.Zoom / zoomKeyFactor)

	case key.Matches(msg, m.keys.Center):
		m.o.CenterOn(m.state.CurrentTime)

	case key.Matches(msg, m.keys.AddLabel):
		if m.state.Loaded {
			var l label.Label
			m.labels, l = label.Add(m.labels, m.state.CurrentTime)
			m.log.Info("label added", "id", l.ID, "timestamp", l.Timestamp)
		}
	}

	m.state = m.o.State()

	return m, nil
}

// setErr shows err in the header; a nil or not-loaded error clears it.
func (m *Model) setErr(err error) {
	if errors.Is(err, timeline.ErrNotLoaded) {
		err = nil
	}
	m.err = err
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ptr := m.pointer(msg.X)

	if ev, ok := wheel(msg); ok {
		m.o.Wheel(ev, ptr)
		return
	}

	lay := m.layout()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}

		if msg.Y == lay.scrollRow {
			m.pressScrollbar(ptr.Ratio())
			return
		}
		if msg.Y >= lay.waveTop && msg.Y < lay.scrollRow {
			err := m.o.SeekStartAt(ptr)
			m.seeking = err == nil
			m.setErr(err)
		}

	case tea.MouseActionMotion:
		switch {
		case m.seeking:
			m.o.SeekMove(ptr)
		case m.scrolling:
			m.o.DragScrollbar(ptr.Ratio())
		}

	case tea.MouseActionRelease:
		if m.seeking {
			m.o.SeekEnd()
			m.seeking = false
		}
		if m.scrolling {
			m.o.ReleaseScrollbar()
			m.scrolling = false
		}
	}
}

// pressScrollbar grabs the thumb under ratio or pages the view there.
// The bar is inert while the whole recording is in view.
func (m *Model) pressScrollbar(ratio float64) {
	if !m.state.Viewport.Scrollable() {
		return
	}

	offset, width := m.state.Viewport.Thumb()
	if ratio >= offset && ratio <= offset+width {
		m.o.GrabScrollbar(ratio)
		m.scrolling = true

		return
	}

	m.o.TrackClick(ratio)
}

// pointer maps a cell column to the center of that cell.
func (m Model) pointer(x int) timeline.Pointer {
	return timeline.Pointer{X: float64(x) + 0.5, Width: float64(m.width)}
}

func wheel(msg tea.MouseMsg) (timeline.WheelEvent, bool) {
	ev := timeline.WheelEvent{Ctrl: msg.Ctrl, Meta: msg.Alt}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -wheelNotch
	case tea.MouseButtonWheelDown:
		ev.DeltaY = wheelNotch
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -wheelNotch
	case tea.MouseButtonWheelRight:
		ev.DeltaX = wheelNotch
	default:
		return ev, false
	}

	return ev, true
}
