package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HostAction is what a key or mouse event means to the host.
type HostAction int

const (
	HostActionNone HostAction = iota
	HostActionActivate
	HostActionQuit
)

// KeyMap defines the key bindings of the game screen.
// Space and Enter both activate; the same event starts, jumps and restarts.
type KeyMap struct {
	Activate key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Activate, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Activate: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/click", "start · jump · restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a host action.
func (k KeyMap) MapKey(msg tea.KeyMsg) HostAction {
	switch {
	case key.Matches(msg, k.Quit):
		return HostActionQuit
	case key.Matches(msg, k.Activate):
		return HostActionActivate
	}
	return HostActionNone
}

// MapMouse translates a mouse message to a host action.
// A left-button press anywhere is a tap.
func MapMouse(msg tea.MouseMsg) HostAction {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return HostActionActivate
	}
	return HostActionNone
}
