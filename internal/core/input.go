package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A
	ActionRight             // Right arrow, D
	ActionRotate            // Up arrow, W
	ActionSoftDrop          // Down arrow, S
	ActionHardDrop          // Space
	ActionToggleAuto        // T - hand the piece to the computer and back
	ActionSpeedSlow         // 1
	ActionSpeedNormal       // 2
	ActionSpeedFast         // 3
	ActionSpeedImpossible   // 4
	ActionConfirm           // Enter
	ActionBack              // B, Escape
	ActionRestart           // R
	ActionQuit              // Q, Ctrl+C
	ActionPause             // P
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionLeft:            "Left",
	ActionRight:           "Right",
	ActionRotate:          "Rotate",
	ActionSoftDrop:        "SoftDrop",
	ActionHardDrop:        "HardDrop",
	ActionToggleAuto:      "ToggleAuto",
	ActionSpeedSlow:       "SpeedSlow",
	ActionSpeedNormal:     "SpeedNormal",
	ActionSpeedFast:       "SpeedFast",
	ActionSpeedImpossible: "SpeedImpossible",
	ActionConfirm:         "Confirm",
	ActionBack:            "Back",
	ActionRestart:         "Restart",
	ActionQuit:            "Quit",
	ActionPause:           "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
