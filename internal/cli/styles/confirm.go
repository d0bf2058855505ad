package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no confirmation dialog.
type ConfirmModel struct {
	Message   string
	Yes       bool // Current selection
	Confirmed bool // User pressed enter
	Canceled  bool // User pressed escape
	theme     *Theme
	keys      ConfirmKeyMap
}

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "no")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "yes")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a new confirmation dialog defaulting to "No".
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
		keys:    DefaultConfirmKeyMap(),
	}
}

// Update handles key presses. The dialog never issues commands.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes), key.Matches(keyMsg, m.keys.Right):
		m.Yes = true
	case key.Matches(keyMsg, m.keys.No), key.Matches(keyMsg, m.keys.Left):
		m.Yes = false
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog box.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle := t.InactiveTab
	noStyle := t.InactiveTab
	if m.Yes {
		yesStyle = t.ActiveTab
	} else {
		noStyle = t.ActiveTab
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render(" No "), "  ", yesStyle.Render(" Yes "))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		buttons,
		"",
		t.Subtle.Render("y/n or ←/→ to select • enter to confirm • esc to cancel"),
	)

	return t.Box.Render(content)
}

// Done returns true if the dialog is complete.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result returns true if user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}
