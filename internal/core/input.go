package core

// Action represents a semantic input, abstracted from physical key presses.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp   // Look up, climb, enter doors and teleporters
	ActionDown // Crouch, climb down
	ActionJump
	ActionFire
	ActionPause     // Viewer only
	ActionQuickSave // Viewer only
	ActionQuickLoad // Viewer only
	ActionQuit      // Viewer only
	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuickSave:
		return "QuickSave"
	case ActionQuickLoad:
		return "QuickLoad"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation frame.
// It is a bit set so that frames compare with == and record cheaply in replays.
type InputFrame struct {
	bits uint16
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// InputOf builds a frame with the given actions held.
func InputOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	f.bits &^= 1 << a
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Bits exposes the raw bit set for replay encoding.
func (f InputFrame) Bits() uint16 {
	return f.bits
}

// InputFromBits restores a frame produced by Bits.
func InputFromBits(b uint16) InputFrame {
	return InputFrame{bits: b}
}
