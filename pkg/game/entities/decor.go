package entities

import (
	"math"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
)

// Decor is a model placed in the world for looks only
type Decor struct {
	Name  string
	Pose  geom.Pose
	Model assets.ModelHandle
	Anim  *AnimationState // nil when static
}

// AnimationState tracks playback of one clip
type AnimationState struct {
	Clip     assets.AnimationHandle
	Time     float64
	Duration float64
	Speed    float64
	Looping  bool
}

// NewAnimationState starts clip at time zero
func NewAnimationState(clip assets.AnimationHandle, duration float64, looping bool) *AnimationState {
	return &AnimationState{
		Clip:     clip,
		Duration: duration,
		Speed:    1,
		Looping:  looping,
	}
}

// Tick advances playback by dt seconds. Looping clips wrap, others stop at
// the end.
func (a *AnimationState) Tick(dt float64) {
	if a == nil || a.Duration <= 0 {
		return
	}
	a.Time += dt * a.Speed
	if a.Looping {
		a.Time = math.Mod(a.Time, a.Duration)
		if a.Time < 0 {
			a.Time += a.Duration
		}
		return
	}
	a.Time = geom.Clamp(a.Time, 0, a.Duration)
}

// Done reports whether a non-looping clip has reached its end
func (a *AnimationState) Done() bool {
	return a != nil && !a.Looping && a.Time >= a.Duration
}
