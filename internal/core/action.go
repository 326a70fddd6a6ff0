package core

// Action represents a semantic player command, abstracted from physical key
// presses, mouse clicks or websocket messages.
type Action int

const (
	ActionNone    Action = iota
	ActionNorth          // Up arrow, W
	ActionSouth          // Down arrow, S
	ActionEast           // Right arrow, D
	ActionWest           // Left arrow, A
	ActionRestart        // R
	ActionHelp           // ?
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionEast:
		return "East"
	case ActionWest:
		return "West"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteering reports whether the action changes the plane's heading.
func (a Action) IsSteering() bool {
	return a >= ActionNorth && a <= ActionWest
}
