// Package nav contains the navigation and rendering contract: registered
// views and menus, the nav stack, and the state the controller exposes to
// content views. Registration happens once at startup; after the event loop
// starts the registry is read-only.
package nav

import (
	"github.com/ethanuppal/kegtui/internal/keg"
	"github.com/ethanuppal/kegtui/internal/snapshot"
)

// Area is the rectangle a view renders into.
type Area struct {
	Width  int
	Height int
}

// InteractivityKind classifies how a focused view reacts to vertical
// movement keys.
type InteractivityKind int

const (
	// InteractivityNone ignores movement keys.
	InteractivityNone InteractivityKind = iota
	// InteractivityScrollable scrolls continuously, three lines per press.
	InteractivityScrollable
	// InteractivityClickable moves a bounded cursor over discrete targets.
	InteractivityClickable
)

// Interactivity is a view's declared input mode for the current snapshot.
// It may change frame to frame (e.g. as discovered kegs appear), so the
// controller re-queries it on every movement key instead of caching it.
type Interactivity struct {
	Kind  InteractivityKind
	Count int // number of targets; meaningful for InteractivityClickable only
}

// None declares a view that only renders.
func None() Interactivity { return Interactivity{Kind: InteractivityNone} }

// Scrollable declares continuously scrollable content.
func Scrollable() Interactivity { return Interactivity{Kind: InteractivityScrollable} }

// Clickable declares count discrete activation targets.
func Clickable(count int) Interactivity {
	return Interactivity{Kind: InteractivityClickable, Count: count}
}

// State is the controller-owned transient state a view may read while
// drawing and mutate from Click. It is confined to the render goroutine.
type State struct {
	// Cursor is the interaction cursor for the active view: a scroll
	// offset for scrollable views, a target index for clickable ones.
	Cursor int

	// Current is the hydrated detail record for the selected keg, set by
	// the keg list view's Click and read by the detail view and the
	// external actions.
	Current *keg.Detail

	// Display and collaborator configuration, fixed at startup.
	KegSearchPaths []string
	DefaultKegDir  string
	Editor         string
	Explorer       string
}

// View is the capability a content pane implements. Render-only views
// embed Base and override Content alone.
type View interface {
	// Content renders the pane into the given area. It must not mutate
	// the snapshot; failures are fatal to the program, not the frame.
	Content(st *State, snap *snapshot.Snapshot, area Area, focused bool) (string, error)

	// Interactivity reports the pane's input mode for this snapshot.
	Interactivity(st *State, snap *snapshot.Snapshot) Interactivity

	// Click activates the target under st.Cursor. It may hydrate
	// st.Current (failures propagate) and may return a navigation action
	// to apply.
	Click(st *State, snap *snapshot.Snapshot, index int) (*NavAction, error)
}

// Base provides the default no-op view behaviour.
type Base struct{}

func (Base) Content(*State, *snapshot.Snapshot, Area, bool) (string, error) { return "", nil }

func (Base) Interactivity(*State, *snapshot.Snapshot) Interactivity { return None() }

func (Base) Click(*State, *snapshot.Snapshot, int) (*NavAction, error) { return nil, nil }
