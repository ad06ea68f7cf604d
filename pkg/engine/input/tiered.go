package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement, relative to the player's facing
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight

	ActionGrab       // pick up the nearest key in the current room
	ActionLocateRoom // report which room the player stands in
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after deduplication.
// Ebiten reports just-released keys and the terminal reads whole lines, so
// every RawInput is already debounced by the time it gets here.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, words)
	"arrow_up":    ActionMoveForward,
	"w":           ActionMoveForward,
	"forward":     ActionMoveForward,
	"arrow_down":  ActionMoveBack,
	"s":           ActionMoveBack,
	"back":        ActionMoveBack,
	"a":           ActionStrafeLeft,
	"left":        ActionStrafeLeft,
	"d":           ActionStrafeRight,
	"right":       ActionStrafeRight,
	"arrow_left":  ActionTurnLeft,
	"turn_left":   ActionTurnLeft,
	"arrow_right": ActionTurnRight,
	"turn_right":  ActionTurnRight,

	// Grab
	"space": ActionGrab,
	"g":     ActionGrab,
	"grab":  ActionGrab,

	// Locate
	"r":      ActionLocateRoom,
	"locate": ActionLocateRoom,
	"where":  ActionLocateRoom,

	// Quit
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// reserved codes cannot be rebound
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// String returns a human-friendly name for an action.
func (a Action) String() string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBack:
		return "Move Back"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionGrab:
		return "Grab"
	case ActionLocateRoom:
		return "Locate Room"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction looks up an action by its config name: move_forward,
// move_back, strafe_left, strafe_right, turn_left, turn_right, grab, locate
// or quit
func ParseAction(name string) (Action, bool) {
	switch name {
	case "move_forward":
		return ActionMoveForward, true
	case "move_back":
		return ActionMoveBack, true
	case "strafe_left":
		return ActionStrafeLeft, true
	case "strafe_right":
		return ActionStrafeRight, true
	case "turn_left":
		return ActionTurnLeft, true
	case "turn_right":
		return ActionTurnRight, true
	case "grab":
		return ActionGrab, true
	case "locate":
		return ActionLocateRoom, true
	case "quit":
		return ActionQuit, true
	default:
		return ActionNone, false
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given action
// with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
