package renderer

import (
	"fmt"
	"math"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/messages"
	"escaperoom/pkg/game/state"
)

// Kind says what a drawable represents
type Kind int

const (
	KindFloor Kind = iota
	KindWall
	KindKey
	KindDecor
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindKey:
		return "key"
	case KindDecor:
		return "decor"
	case KindPlayer:
		return "player"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Drawable is one model placed in the world
type Drawable struct {
	Kind  Kind
	Model assets.ModelHandle
	Pose  geom.Pose

	// Half is the floor-plane footprint of floors and walls
	Half geom.Vec2
	Door world.DoorState

	Animated bool
	Clip     assets.AnimationHandle
	ClipTime float64
}

// HUD is the text shown over the world
type HUD struct {
	Room     world.RoomID
	InRoom   bool
	Keys     []string // owned keys, pickup order
	Status   state.Status
	Messages []string
	Position geom.Vec3
	Yaw      float64
}

// Scene is everything a backend needs to draw one frame
type Scene struct {
	Drawables []Drawable
	HUD       HUD

	// Min and Max bound every room of the map
	Min geom.Vec2
	Max geom.Vec2

	Frame int
}

// BuildScene reads the game and lists what to draw: floors, then walls,
// keys still lying in the world, decor and finally the player. Walls take
// the model matching their current door state, so a door opened by a key
// is drawn open from the next frame on. The game is not modified.
func BuildScene(g *state.Game) Scene {
	s := Scene{Frame: g.Frame}
	v := g.Visuals

	first := true
	size := geom.Vec2{X: g.Graph.Width(), Z: g.Graph.Length()}
	g.Graph.ForEachRoom(func(r *world.Room) {
		half := size.Scale(0.5)
		center := r.Corner.Add(half)
		s.Drawables = append(s.Drawables, Drawable{
			Kind:  KindFloor,
			Model: v.Floor,
			Pose:  geom.Pose{Position: geom.Vec3{X: center.X, Z: center.Z}, Scale: 1},
			Half:  half,
		})
		hi := r.Corner.Add(size)
		if first {
			s.Min, s.Max = r.Corner, hi
			first = false
			return
		}
		s.Min = geom.Vec2{X: math.Min(s.Min.X, r.Corner.X), Z: math.Min(s.Min.Z, r.Corner.Z)}
		s.Max = geom.Vec2{X: math.Max(s.Max.X, hi.X), Z: math.Max(s.Max.Z, hi.Z)}
	})

	for _, w := range g.Walls {
		if w == nil {
			continue
		}
		s.Drawables = append(s.Drawables, wallDrawable(g, w))
	}

	for _, k := range g.Keys.All() {
		s.Drawables = append(s.Drawables, Drawable{
			Kind:  KindKey,
			Model: k.Visual.Model,
			Pose:  geom.Pose{Position: k.Visual.Position, Scale: 1},
		})
	}

	for _, d := range g.Decor {
		s.Drawables = append(s.Drawables, withAnim(Drawable{
			Kind:  KindDecor,
			Model: d.Model,
			Pose:  d.Pose,
		}, d.Anim))
	}

	if p := g.Player; p != nil {
		s.Drawables = append(s.Drawables, withAnim(Drawable{
			Kind:  KindPlayer,
			Model: p.Model,
			Pose:  p.Pose,
		}, p.Anim))
		s.HUD = HUD{
			Room:     p.CurrentRoom,
			InRoom:   p.InRoom,
			Position: p.Pose.Position,
			Yaw:      p.Pose.Yaw,
		}
		for _, k := range p.OwnedKeys {
			s.HUD.Keys = append(s.HUD.Keys, keyLabel(k))
		}
	}
	s.HUD.Status = g.Status
	s.HUD.Messages = append([]string(nil), g.Messages...)

	return s
}

func wallDrawable(g *state.Game, w *world.Wall) Drawable {
	v := g.Visuals
	model := v.WallSolid
	switch w.Door {
	case world.DoorOpen:
		model = v.WallOpen
	case world.DoorLocked:
		model = v.WallLocked
	}

	half := g.Config.WallHalf()
	yaw := 0.0
	if w.Rotated {
		half = geom.Vec2{X: half.Z, Z: half.X}
		yaw = math.Pi / 2
	}
	return Drawable{
		Kind:  KindWall,
		Model: model,
		Pose:  geom.Pose{Position: geom.Vec3{X: w.Position.X, Z: w.Position.Z}, Yaw: yaw, Scale: 1},
		Half:  half,
		Door:  w.Door,
	}
}

func withAnim(d Drawable, a *entities.AnimationState) Drawable {
	if a == nil {
		return d
	}
	d.Animated = true
	d.Clip = a.Clip
	d.ClipTime = a.Time
	return d
}

func keyLabel(k *entities.Key) string {
	return messages.T("KEY_LABEL", int(k.ID), k.Opens.String())
}
