package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dn2sim/internal/core"
)

// KeyMap defines the viewer key bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Jump      key.Binding
	Fire      key.Binding
	Pause     key.Binding
	QuickSave key.Binding
	QuickLoad key.Binding
	Quit      key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Fire, k.Pause, k.QuickSave, k.QuickLoad, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Fire},
		{k.Pause, k.QuickSave, k.QuickLoad, k.Quit},
	}
}

// DefaultKeyMap returns the default viewer key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "look up, use"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "crouch"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space/z", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys("x", "ctrl+@"),
			key.WithHelp("x", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		QuickSave: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "quick-save"),
		),
		QuickLoad: key.NewBinding(
			key.WithKeys("f9"),
			key.WithHelp("F9", "quick-load"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.QuickSave):
		return core.ActionQuickSave
	case key.Matches(msg, k.QuickLoad):
		return core.ActionQuickLoad
	}
	return core.ActionNone
}

// holdTicks is how long a key press counts as held. Terminals report
// presses and auto-repeat but no releases.
const holdTicks = 3

// HeldInput turns key presses into per-frame held actions.
type HeldInput struct {
	ticks [core.ActionQuit + 1]int
}

// Press marks a simulation action as held for the next few frames.
func (h *HeldInput) Press(a core.Action) {
	if a > core.ActionNone && a <= core.ActionFire {
		h.ticks[a] = holdTicks
	}
}

// Frame returns the actions held this tick and ages every press by one.
func (h *HeldInput) Frame() core.InputFrame {
	var f core.InputFrame
	for a := core.ActionLeft; a <= core.ActionFire; a++ {
		if h.ticks[a] > 0 {
			f.Set(a)
			h.ticks[a]--
		}
	}
	return f
}

// Clear releases everything.
func (h *HeldInput) Clear() {
	h.ticks = [core.ActionQuit + 1]int{}
}
