package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethanuppal/kegtui/internal/logging"
	"github.com/ethanuppal/kegtui/internal/nav"
	"github.com/muesli/reflow/truncate"
)

const (
	menuFraction   = 0.25
	selectedPrefix = ">> "
	itemPrefix     = "   "
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showKeybinds {
		return m.viewKeybindsModal()
	}

	innerW := m.width - 2
	innerH := m.height - 3 // frame borders plus the title row
	if innerW < 4 || innerH < 1 {
		return ""
	}
	menuW := int(float64(innerW) * menuFraction)
	if menuW < 8 {
		menuW = 8
	}
	contentW := innerW - menuW - 3
	if contentW < 0 {
		contentW = 0
	}

	menuCol := lipgloss.NewStyle().Width(menuW).Height(innerH).MaxHeight(innerH).Render(m.viewMenu(menuW))
	separator := styles.Separator.Render(strings.TrimSuffix(strings.Repeat("│\n", innerH), "\n"))
	contentCol := lipgloss.NewStyle().Width(contentW).Height(innerH).MaxHeight(innerH).Render(m.viewContent(contentW, innerH))

	title := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, styles.Title.Render("kegtui"))
	body := lipgloss.JoinHorizontal(lipgloss.Top, menuCol, " "+separator+" ", contentCol)
	return styles.Frame.Render(title + "\n" + body)
}

// viewMenu renders the left-hand menu for the nav on top of the stack. An
// empty stack draws nothing.
func (m *Model) viewMenu(width int) string {
	current := m.currentNav()
	if current == nil {
		return ""
	}
	lines := make([]string, 0, len(current.Items())+1)
	lines = append(lines, styles.MenuHeading.Render("Menu:"))
	for i, item := range current.Items() {
		if i == m.menuRow {
			style := styles.SelectedUnfocused
			if m.focus == FocusMenu {
				style = styles.SelectedFocused
			}
			lines = append(lines, style.Render(truncate.StringWithTail(selectedPrefix+item.Name, uint(width), "…")))
			continue
		}
		lines = append(lines, styles.Item.Render(truncate.StringWithTail(itemPrefix+item.Name, uint(width), "…")))
	}
	return strings.Join(lines, "\n")
}

// viewContent delegates the right-hand pane to the active view. A draw
// failure is structural, so it terminates the loop on the next tick rather
// than being swallowed.
func (m *Model) viewContent(width, height int) string {
	view := m.activeView()
	if view == nil {
		return ""
	}
	content, err := view.Content(m.st, m.snap, nav.Area{Width: width, Height: height}, m.focus == FocusContent)
	if err != nil {
		logging.Error(err)
		m.err = err
		return styles.Error.Render("Error: " + err.Error())
	}
	return content
}

// viewKeybindsModal renders the help table centered on a cleared screen.
// Keys are styled after padding so the column math sees no escape codes.
func (m *Model) viewKeybindsModal() string {
	bindings := m.keys.helpOrder()
	keyWidth := 0
	for _, binding := range bindings {
		if w := len([]rune(binding.Help().Key)); w > keyWidth {
			keyWidth = w
		}
	}
	lines := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		padded := help.Key + strings.Repeat(" ", keyWidth-len([]rune(help.Key)))
		lines = append(lines, styles.ModalKey.Render(padded)+"  "+help.Desc)
	}
	modal := styles.ModalBorder.Render(styles.Title.Render("Keybinds") + "\n\n" + strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
