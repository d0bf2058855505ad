package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DockKeyMap defines keybindings for the interactive dock host.
type DockKeyMap struct {
	AddPanel   key.Binding
	DockLeft   key.Binding
	DockRight  key.Binding
	DockTop    key.Binding
	DockBottom key.Binding
	Close      key.Binding
	NextTab    key.Binding
	Cancel     key.Binding
	Tree       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddPanel, k.Close, k.NextTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k DockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddPanel, k.DockLeft, k.DockRight, k.DockTop, k.DockBottom},
		{k.Close, k.NextTab, k.Cancel},
		{k.Tree, k.Help, k.Quit},
	}
}

// DefaultDockKeyMap returns the default dock keybindings.
func DefaultDockKeyMap() DockKeyMap {
	return DockKeyMap{
		AddPanel: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add tab"),
		),
		DockLeft: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "dock left"),
		),
		DockRight: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "dock right"),
		),
		DockTop: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "dock top"),
		),
		DockBottom: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "dock bottom"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Tree: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "log tree"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
