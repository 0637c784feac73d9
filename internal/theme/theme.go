package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Frame             *lipgloss.Style
	Title             *lipgloss.Style
	MenuHeading       *lipgloss.Style
	Item              *lipgloss.Style
	SelectedFocused   *lipgloss.Style
	SelectedUnfocused *lipgloss.Style
	Separator         *lipgloss.Style
	ContentBody       *lipgloss.Style
	ContentAccent     *lipgloss.Style
	ModalBorder       *lipgloss.Style
	ModalKey          *lipgloss.Style
	Error             *lipgloss.Style
}

var defaultStyles = Styles{
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
	),
	Title: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	MenuHeading: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	),
	SelectedUnfocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	ContentBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	ContentAccent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	),
	ModalBorder: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
	),
	ModalKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
