package ui

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethanuppal/kegtui/internal/logging/events"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/ethanuppal/kegtui/internal/snapshot"
	"github.com/ethanuppal/kegtui/internal/theme"
)

// Focus selects which pane key events act on.
type Focus int

const (
	FocusMenu Focus = iota
	FocusContent
)

func (f Focus) String() string {
	if f == FocusContent {
		return "content"
	}
	return "menu"
}

// noView marks the absence of a loaded content view.
const noView = nav.ViewID(-1)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model is the navigation controller: it owns all transient UI state and
// reconciles it against the background scanner's snapshots on a fixed tick.
type Model struct {
	registry *nav.Registry
	stack    *nav.Stack
	cell     *snapshot.Cell

	// snap is the last snapshot the tick managed to load. Rendering with
	// a stale snapshot is fine; blocking the render loop is not.
	snap *snapshot.Snapshot

	st *nav.State

	focus        Focus
	menuRow      int
	currentView  nav.ViewID
	showKeybinds bool

	width  int
	height int
	tick   time.Duration

	keys keymap
	err  error

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the controller with the root nav current and its
// default item selected.
func NewModel(registry *nav.Registry, root nav.NavID, cell *snapshot.Cell, st *nav.State, tick time.Duration) *Model {
	if tick <= 0 {
		tick = 20 * time.Millisecond
	}
	m := &Model{
		registry:    registry,
		stack:       &nav.Stack{},
		cell:        cell,
		snap:        snapshot.Empty(),
		st:          st,
		currentView: noView,
		tick:        tick,
		keys:        defaultKeymap(),
	}
	m.stack.Push(root)
	m.menuRow = registry.Nav(root).DefaultIndex()
	m.registerHandlers()
	return m
}

// Err reports the fatal error that terminated the loop, if any.
func (m *Model) Err() error { return m.err }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update responds to Bubble Tea messages through the typed handler table.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(externalDoneMsg{}):   m.handleExternalDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// tickMsg drives the fixed-cadence reconcile/render cycle.
type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	// tea.Tick schedules relative to now, so a slow frame shifts the
	// cadence instead of producing a catch-up burst.
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	if snap, ok := m.cell.TryLoad(); ok {
		m.snap = snap
	}
	return m.tickCmd()
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

// currentNav returns the nav on top of the stack, or nil when the stack is
// empty (a valid terminal state; nothing is drawn).
func (m *Model) currentNav() *nav.Nav {
	id, ok := m.stack.Top()
	if !ok {
		return nil
	}
	return m.registry.Nav(id)
}

// activeView returns the loaded content view, or nil.
func (m *Model) activeView() nav.View {
	if m.currentView == noView {
		return nil
	}
	return m.registry.View(m.currentView)
}

// fatal records an unrecoverable error and quits after the current tick.
func (m *Model) fatal(err error) tea.Cmd {
	m.err = err
	return tea.Quit
}

// applyNavAction moves through the stack and unconditionally resets the
// transient state: a stale view id must never be dereferenced against a
// different nav's menu.
func (m *Model) applyNavAction(action nav.NavAction) {
	switch action.Kind {
	case nav.NavPush:
		m.stack.Push(action.Target)
		events.UI.NavStack("push", m.registry.Nav(action.Target).Name(), m.stack.Depth())
	case nav.NavPop:
		m.stack.Pop()
		events.UI.NavStack("pop", "", m.stack.Depth())
	}
	m.focus = FocusMenu
	m.currentView = noView
	m.st.Cursor = 0
	if current := m.currentNav(); current != nil {
		m.menuRow = current.DefaultIndex()
	} else {
		m.menuRow = 0
	}
}

// loadView makes the view the active content pane and focuses it.
func (m *Model) loadView(id nav.ViewID) {
	m.currentView = id
	m.focus = FocusContent
	m.st.Cursor = 0
	events.UI.ViewLoaded(int(id))
}
