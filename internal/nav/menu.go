package nav

import "github.com/ethanuppal/kegtui/internal/snapshot"

// ViewID and NavID are dense registry indices. Issued once at registration
// and never reused.
type (
	ViewID int
	NavID  int
)

// NavKind distinguishes push and pop navigation actions.
type NavKind int

const (
	NavPush NavKind = iota
	NavPop
)

// NavAction moves through the nav stack: push a nav or pop the top entry.
type NavAction struct {
	Kind   NavKind
	Target NavID // valid for NavPush only
}

// PushNav returns an action that pushes the given nav.
func PushNav(id NavID) NavAction { return NavAction{Kind: NavPush, Target: id} }

// PopNav returns an action that pops the top of the stack.
func PopNav() NavAction { return NavAction{Kind: NavPop} }

// External is a blocking collaborator invoked with the terminal restored to
// cooperative mode. It runs synchronously on the render goroutine.
type External func(st *State, snap *snapshot.Snapshot) error

// Action is the closed set of things a menu item can do. Exactly one
// variant is attached to each item.
type Action interface{ isAction() }

// Navigate pushes or pops the nav stack.
type Navigate struct{ Action NavAction }

// Load makes the given view the active content pane and focuses it.
type Load struct{ View ViewID }

// Invoke suspends the managed terminal and runs the collaborator.
type Invoke struct{ Fn External }

func (Navigate) isAction() {}
func (Load) isAction()     {}
func (Invoke) isAction()   {}

// MenuItem is one selectable row in a nav. Immutable after construction.
type MenuItem struct {
	Name      string
	Action    Action
	isDefault bool
}

// NewMenuItem builds a menu item bound to the given action.
func NewMenuItem(name string, action Action) MenuItem {
	return MenuItem{Name: name, Action: action}
}

// Default marks the item as its nav's default selection. With multiple
// flagged items the first one in registration order wins.
func (m MenuItem) Default() MenuItem {
	m.isDefault = true
	return m
}

// Nav is an ordered, non-empty menu with a precomputed default row.
type Nav struct {
	name         string
	items        []MenuItem
	defaultIndex int
}

// Name returns the nav's registered name.
func (n *Nav) Name() string { return n.name }

// Items returns the menu rows in display order.
func (n *Nav) Items() []MenuItem { return n.items }

// DefaultIndex is the row selected when the nav becomes current: the first
// item flagged default, or 0 when none is flagged.
func (n *Nav) DefaultIndex() int { return n.defaultIndex }
