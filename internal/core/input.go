package core

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move cursor up
	ActionDown           // move cursor down
	ActionLeft           // move cursor left
	ActionRight          // move cursor right
	ActionOpen           // open the cell under the cursor
	ActionFlag           // toggle a flag under the cursor
	ActionChord          // open around a satisfied number
	ActionConfirm        // confirm in menus
	ActionBack           // back to menu
	ActionRestart        // new board
	ActionQuit           // leave the program
	ActionPause          // pause or resume
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionOpen:    "Open",
	ActionFlag:    "Flag",
	ActionChord:   "Chord",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the actions triggered during one tick, in arrival
// order. Cursor moves repeat, so a frame keeps every occurrence.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}
