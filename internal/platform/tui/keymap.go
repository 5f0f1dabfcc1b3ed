package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-quiz/internal/core"
)

// pickKeys are the number keys that answer with a balloon, in slot order.
var pickKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

// KeyMap defines the key bindings of the quiz.
type KeyMap struct {
	Pick    key.Binding
	Confirm key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Confirm, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Confirm},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys(pickKeys...),
			key.WithHelp("1-9/click", "pick balloon"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "next / play again"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key press into frame input.
// Returns the action that was set (ActionNone for picks and unknown keys).
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pick):
		for slot, s := range pickKeys {
			if msg.String() == s {
				frame.Pick(slot)
				break
			}
		}
		return core.ActionNone
	case key.Matches(msg, k.Confirm):
		frame.Set(core.ActionConfirm)
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		frame.Set(core.ActionRestart)
		return core.ActionRestart
	}
	return core.ActionNone
}
