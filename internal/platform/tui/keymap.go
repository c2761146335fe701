package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/queenchase/internal/core"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Move    key.Binding // help only
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Reset   key.Binding
	NewGame key.Binding
	Angled  key.Binding
	Top     key.Binding
	POV     key.Binding
	Behind  key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default bindings. Shift+arrow jumps in that direction.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("↑↓←→/hjkl", "move")),
		Up:      key.NewBinding(key.WithKeys("up", "k", "shift+up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j", "shift+down"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h", "shift+left"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l", "shift+right"), key.WithHelp("→/l", "right")),
		Jump:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "revive")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Angled:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "angled view")),
		Top:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "top view")),
		POV:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "player view")),
		Behind:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "behind view")),
		Faster:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "faster")),
		Slower:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "slower")),
		Rotate:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "spin queen")),
		Pause:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pause")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Reset, k.NewGame, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Jump},
		{k.Faster, k.Slower, k.Reset, k.NewGame},
		{k.Angled, k.Top, k.POV, k.Behind, k.Rotate},
		{k.Pause, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// jump is true for shift+direction, which presses the jump modifier together
// with the direction.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, jump bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, isShifted(msg)
	case key.Matches(msg, k.Down):
		return core.ActionDown, isShifted(msg)
	case key.Matches(msg, k.Left):
		return core.ActionLeft, isShifted(msg)
	case key.Matches(msg, k.Right):
		return core.ActionRight, isShifted(msg)
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame, false
	case key.Matches(msg, k.Angled):
		return core.ActionCameraAngled, false
	case key.Matches(msg, k.Top):
		return core.ActionCameraTop, false
	case key.Matches(msg, k.POV):
		return core.ActionCameraPlayer, false
	case key.Matches(msg, k.Behind):
		return core.ActionCameraBehind, false
	case key.Matches(msg, k.Faster):
		return core.ActionFaster, false
	case key.Matches(msg, k.Slower):
		return core.ActionSlower, false
	case key.Matches(msg, k.Rotate):
		return core.ActionToggleRotation, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

func isShifted(msg tea.KeyMsg) bool {
	return strings.HasPrefix(msg.String(), "shift+")
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
