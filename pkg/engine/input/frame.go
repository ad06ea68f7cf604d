package input

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Frame is the input snapshot consumed by one game tick.
// MoveX strafes (+1 right), MoveZ walks (+1 forward) and PointerDX is the
// horizontal pointer movement since the previous frame.
type Frame struct {
	MoveX     float64
	MoveZ     float64
	PointerDX float64

	released *mapset.Set[Action]
}

// NewFrame returns an empty frame
func NewFrame() Frame {
	s := mapset.New[Action]()
	return Frame{released: &s}
}

// Release records an action as released this frame
func (f *Frame) Release(a Action) {
	if f.released == nil {
		s := mapset.New[Action]()
		f.released = &s
	}
	f.released.Put(a)
}

// Released reports whether a was released this frame
func (f Frame) Released(a Action) bool {
	if f.released == nil {
		return false
	}
	return f.released.Has(a)
}

// Idle reports whether the frame carries no movement and no actions
func (f Frame) Idle() bool {
	return f.MoveX == 0 && f.MoveZ == 0 && f.PointerDX == 0 &&
		(f.released == nil || f.released.Size() == 0)
}

// Apply folds an intent into the frame. Movement intents set an axis, turn
// intents add to the pointer delta by turnStep, and everything else is
// recorded as released.
func (f *Frame) Apply(in Intent, turnStep float64) {
	switch in.Action {
	case ActionNone:
	case ActionMoveForward:
		f.MoveZ = 1
	case ActionMoveBack:
		f.MoveZ = -1
	case ActionStrafeLeft:
		f.MoveX = -1
	case ActionStrafeRight:
		f.MoveX = 1
	case ActionTurnLeft:
		f.PointerDX -= turnStep
	case ActionTurnRight:
		f.PointerDX += turnStep
	default:
		f.Release(in.Action)
	}
}

// ParseCommand turns a line typed at the terminal into a frame. Words are
// looked up in the bindings one by one, so "w w space" walks forward and
// grabs in a single tick.
func ParseCommand(line string, turnStep float64) Frame {
	f := NewFrame()
	for _, word := range strings.Fields(strings.ToLower(line)) {
		ev := NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: word})
		f.Apply(MapToIntent(ev), turnStep)
	}
	return f
}

// Merge folds a later frame into f: axes take o's value when o moves,
// pointer deltas add up and released actions are combined
func (f *Frame) Merge(o Frame) {
	if o.MoveX != 0 {
		f.MoveX = o.MoveX
	}
	if o.MoveZ != 0 {
		f.MoveZ = o.MoveZ
	}
	f.PointerDX += o.PointerDX
	if o.released != nil {
		o.released.Each(func(a Action) {
			f.Release(a)
		})
	}
}
