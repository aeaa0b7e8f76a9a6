package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - move up (held)
	ActionDown           // Down arrow - move down (held)
	ActionLeft           // Left arrow - move left (held)
	ActionRight          // Right arrow - move right (held)
	ActionBoost          // Shift modifier - faster movement (held)
	ActionFire           // Space - single beam
	ActionFireFan        // F - fan of beams (fire with modifier)
	ActionShield         // S - shield in front of the player
	ActionHyper          // I - temporary invulnerability
	ActionEMP            // E - electromagnetic pulse
	ActionGravity        // Enter - gravity field
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionBoost:
		return "Boost"
	case ActionFire:
		return "Fire"
	case ActionFireFan:
		return "FireFan"
	case ActionShield:
		return "Shield"
	case ActionHyper:
		return "Hyper"
	case ActionEMP:
		return "EMP"
	case ActionGravity:
		return "Gravity"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick: a snapshot of held keys
// plus the discrete presses that happened since the previous tick.
type InputFrame struct {
	Actions map[Action]bool // pressed this frame
	Held    map[Action]bool // held down during this frame
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a key as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the key was held this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}
