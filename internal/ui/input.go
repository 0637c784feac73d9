package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethanuppal/kegtui/internal/logging/events"
	"github.com/ethanuppal/kegtui/internal/nav"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// The modal suspends every other binding while shown.
	if m.showKeybinds {
		if key.Matches(keyMsg, m.keys.Escape) || key.Matches(keyMsg, m.keys.Help) {
			m.showKeybinds = false
		}
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.showKeybinds = true
		return nil
	case key.Matches(keyMsg, m.keys.Escape), key.Matches(keyMsg, m.keys.Left):
		m.setFocus(FocusMenu)
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveCursor(+1)
	case key.Matches(keyMsg, m.keys.Right):
		if m.focus == FocusMenu {
			return m.executeSelectedItem()
		}
		return nil
	case key.Matches(keyMsg, m.keys.Enter):
		if m.focus == FocusMenu {
			return m.executeSelectedItem()
		}
		return m.clickContent()
	}
	return nil
}

func (m *Model) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.focus = f
	events.UI.FocusChange(f.String())
}

// moveCursor handles a vertical movement key: menu rows saturate within the
// current nav, content movement is delegated to the active view's
// interactivity, re-queried on every press because a growing snapshot can
// change it frame to frame.
func (m *Model) moveCursor(direction int) tea.Cmd {
	if m.focus == FocusMenu {
		current := m.currentNav()
		if current == nil {
			return nil
		}
		row := m.menuRow + direction
		if row < 0 {
			row = 0
		}
		if max := len(current.Items()) - 1; row > max {
			row = max
		}
		if row != m.menuRow {
			m.menuRow = row
			events.UI.MenuCursor(current.Name(), row)
		}
		return nil
	}

	view := m.activeView()
	if view == nil {
		return nil
	}
	switch inter := view.Interactivity(m.st, m.snap); inter.Kind {
	case nav.InteractivityNone:
	case nav.InteractivityScrollable:
		m.st.Cursor += direction * scrollStep
		if m.st.Cursor < 0 {
			m.st.Cursor = 0
		}
	case nav.InteractivityClickable:
		cursor := m.st.Cursor + direction
		if cursor < 0 {
			cursor = 0
		}
		if max := inter.Count - 1; cursor > max {
			cursor = max
		}
		if cursor < 0 {
			cursor = 0
		}
		m.st.Cursor = cursor
	}
	return nil
}

// scrollStep is how many lines a scrollable view moves per key press.
const scrollStep = 3

// executeSelectedItem runs the highlighted menu item's action.
func (m *Model) executeSelectedItem() tea.Cmd {
	current := m.currentNav()
	if current == nil {
		return nil
	}
	items := current.Items()
	if m.menuRow < 0 || m.menuRow >= len(items) {
		return nil
	}
	item := items[m.menuRow]
	switch action := item.Action.(type) {
	case nav.Navigate:
		m.applyNavAction(action.Action)
	case nav.Load:
		m.loadView(action.View)
	case nav.Invoke:
		events.Action.Invoke(item.Name)
		return m.runExternal(action.Fn)
	}
	return nil
}

// clickContent forwards the activation key to the focused view and applies
// any navigation action it returns. A click failure (e.g. detail hydration)
// is fatal and the navigation that would have followed is not applied.
func (m *Model) clickContent() tea.Cmd {
	view := m.activeView()
	if view == nil {
		return nil
	}
	action, err := view.Click(m.st, m.snap, m.st.Cursor)
	if err != nil {
		return m.fatal(err)
	}
	if action != nil {
		m.applyNavAction(*action)
	}
	return nil
}
