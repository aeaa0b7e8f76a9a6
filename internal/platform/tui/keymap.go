package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/musou/internal/core"
)

// holdWindow is how long a movement key counts as held after its last key
// event. Terminals only report presses and auto-repeats, never releases.
const holdWindow = 120 * time.Millisecond

// KeyMap defines the key bindings of a game session.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Boost     key.Binding
	Fire      key.Binding
	Fan       key.Binding
	Shield    key.Binding
	Hyper     key.Binding
	EMP       key.Binding
	Gravity   key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Snapshot  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Fan, k.Shield, k.Hyper, k.EMP, k.Gravity, k.Pause, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Boost},
		{k.Fire, k.Fan, k.Shield, k.Hyper},
		{k.EMP, k.Gravity, k.Pause, k.Restart},
		{k.Snapshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "shift+up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "shift+down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "shift+right"),
			key.WithHelp("→", "right"),
		),
		Boost: key.NewBinding(
			key.WithKeys("shift+up", "shift+down", "shift+left", "shift+right"),
			key.WithHelp("shift+arrows", "boost"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Fan: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fan"),
		),
		Shield: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shield"),
		),
		Hyper: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "hyper"),
		),
		EMP: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "emp"),
		),
		Gravity: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "gravity"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to simulation input.
// Commands become presses for the next tick; movement keys are latched as
// held for holdWindow after their last event.
type KeyMapper struct {
	keys KeyMap
	hold time.Duration
	held map[core.Action]time.Time
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys: keys,
		hold: holdWindow,
		held: make(map[core.Action]time.Time),
	}
}

// opposite is the movement cancelled by pressing a direction.
var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// MapKey records a key event received at now into frame.
// It reports whether the key is one of the discrete commands or a
// movement key; unknown keys return false.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, now time.Time, frame *core.InputFrame) bool {
	moves := []struct {
		binding key.Binding
		action  core.Action
	}{
		{km.keys.Up, core.ActionUp},
		{km.keys.Down, core.ActionDown},
		{km.keys.Left, core.ActionLeft},
		{km.keys.Right, core.ActionRight},
	}
	for _, mv := range moves {
		if key.Matches(msg, mv.binding) {
			km.held[mv.action] = now
			delete(km.held, opposite[mv.action])
			if key.Matches(msg, km.keys.Boost) {
				km.held[core.ActionBoost] = now
			} else {
				delete(km.held, core.ActionBoost)
			}
			return true
		}
	}

	// Fire with the modifier still held fans out.
	if key.Matches(msg, km.keys.Fire) && km.holding(core.ActionBoost, now) {
		frame.Set(core.ActionFireFan)
		return true
	}

	commands := []struct {
		binding key.Binding
		action  core.Action
	}{
		{km.keys.Fire, core.ActionFire},
		{km.keys.Fan, core.ActionFireFan},
		{km.keys.Shield, core.ActionShield},
		{km.keys.Hyper, core.ActionHyper},
		{km.keys.EMP, core.ActionEMP},
		{km.keys.Gravity, core.ActionGravity},
		{km.keys.Pause, core.ActionPause},
		{km.keys.Restart, core.ActionRestart},
		{km.keys.Quit, core.ActionQuit},
	}
	for _, c := range commands {
		if key.Matches(msg, c.binding) {
			frame.Set(c.action)
			return true
		}
	}
	return false
}

// Latch marks every movement key still within its hold window as held in
// frame and forgets the expired ones.
func (km *KeyMapper) Latch(now time.Time, frame *core.InputFrame) {
	for a := range km.held {
		if !km.holding(a, now) {
			delete(km.held, a)
			continue
		}
		frame.Hold(a)
	}
}

// holding reports whether a is latched and still inside its hold window.
func (km *KeyMapper) holding(a core.Action, now time.Time) bool {
	at, ok := km.held[a]
	return ok && now.Sub(at) <= km.hold
}

// Release forgets every held key.
func (km *KeyMapper) Release() {
	clear(km.held)
}
