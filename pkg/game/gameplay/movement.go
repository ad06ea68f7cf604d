// Package gameplay provides the per-frame game logic: moving the player,
// keeping them inside rooms and picking up keys.
package gameplay

import (
	"github.com/sirupsen/logrus"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/messages"
	"escaperoom/pkg/game/state"
)

// ApplyMovement turns the player by the pointer delta, then walks them along
// the movement axes in the new facing. Translation is per frame; turning is
// scaled by dt.
func ApplyMovement(g *state.Game, in input.Frame, dt float64) {
	p := g.Player
	p.Pose.Yaw += in.PointerDX * g.Config.TurnSpeed * dt

	local := geom.Vec2{X: in.MoveX, Z: in.MoveZ}
	if local.IsZero() {
		return
	}
	if l := local.Len(); l > 1 {
		local = local.Scale(1 / l)
	}
	step := p.Pose.Rotate(local).Scale(g.Config.MoveSpeed)
	p.Pose.Position = p.Pose.Position.WithXZ(p.Pose.Position.XZ().Add(step))
}

// ResolveRoom looks up the room under the player and reports whether it
// differs from the previous one
func ResolveRoom(g *state.Game) bool {
	p := g.Player
	id, ok := g.Graph.Find(p.Pose.Position.X, p.Pose.Position.Z)
	changed := ok != p.InRoom || id != p.CurrentRoom
	p.CurrentRoom, p.InRoom = id, ok
	return changed
}

// ClampToRoomBounds keeps the player inside the current room's rectangle,
// BoundsMargin away from each side. That bound holds on closed sides only: a
// side with an open way through adds a second range stretched across the
// neighbour up to its far side, so the player can walk from room to room.
// The ranges are never combined, so the corner diagonally between two open
// neighbours stays out of reach. The player ends at the nearest allowed
// point. Nothing happens outside every room.
func ClampToRoomBounds(g *state.Game) {
	room, ok := g.CurrentRoom()
	if !ok {
		return
	}
	lo, hi, _ := g.Graph.Bounds(room.ID)
	m := g.Config.BoundsMargin
	own := span{lo: geom.Vec2{X: lo.X + m, Z: lo.Z + m}, hi: geom.Vec2{X: hi.X - m, Z: hi.Z - m}}

	pos := g.Player.Pose.Position.XZ()
	best := own.clamp(pos)
	bestDist := best.Sub(pos).Len()
	for _, dir := range world.AllDirections() {
		if !SideOpen(g, room, dir) {
			continue
		}
		next, _ := room.Neighbor(dir)
		nlo, nhi, ok := g.Graph.Bounds(next)
		if !ok {
			continue
		}
		through, ok := own.across(dir, nlo, nhi, m)
		if !ok {
			continue
		}
		if c := through.clamp(pos); c.Sub(pos).Len() < bestDist {
			best, bestDist = c, c.Sub(pos).Len()
		}
	}

	g.Player.Pose.Position = g.Player.Pose.Position.WithXZ(best)
}

// span is a rectangle of allowed floor positions
type span struct {
	lo, hi geom.Vec2
}

func (s span) clamp(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: geom.Clamp(p.X, s.lo.X, s.hi.X), Z: geom.Clamp(p.Z, s.lo.Z, s.hi.Z)}
}

// across stretches s through side dir into the neighbour spanning nlo..nhi.
// The other axis narrows to the part both rooms share; false when they share
// none.
func (s span) across(dir world.Direction, nlo, nhi geom.Vec2, m float64) (span, bool) {
	out := s
	switch dir {
	case world.North, world.South:
		out.lo.X, out.hi.X = max(s.lo.X, nlo.X+m), min(s.hi.X, nhi.X-m)
		if dir == world.North {
			out.hi.Z = max(s.hi.Z, nhi.Z-m)
		} else {
			out.lo.Z = min(s.lo.Z, nlo.Z+m)
		}
	case world.East, world.West:
		out.lo.Z, out.hi.Z = max(s.lo.Z, nlo.Z+m), min(s.hi.Z, nhi.Z-m)
		if dir == world.East {
			out.hi.X = max(s.hi.X, nhi.X-m)
		} else {
			out.lo.X = min(s.lo.X, nlo.X+m)
		}
	}
	return out, out.lo.X <= out.hi.X && out.lo.Z <= out.hi.Z
}

// SideOpen reports whether the player may leave room through the given side:
// there is a neighbour and no blocking wall on either room's slot
func SideOpen(g *state.Game, room *world.Room, dir world.Direction) bool {
	next, ok := room.Neighbor(dir)
	if !ok {
		return false
	}
	if wallBlocks(g, room, dir) {
		return false
	}
	other, ok := g.Graph.Room(next)
	if !ok {
		return false
	}
	if back, ok := other.DirectionTo(room.ID); ok && wallBlocks(g, other, back) {
		return false
	}
	return true
}

// wallBlocks reports whether the wall in room's slot dir has an active collider
func wallBlocks(g *state.Game, room *world.Room, dir world.Direction) bool {
	id, ok := room.Wall(dir)
	if !ok {
		return false
	}
	w, found := g.Wall(id)
	return found && w.Blocking()
}

// ResolveWallCollisions pushes the player out of every blocking wall in the
// slots of the current room and of each neighbour behind an open side, toward
// that room's interior. A push that would leave the player outside every
// room is dropped. Disabled unless Config.WallCollision is set.
func ResolveWallCollisions(g *state.Game) {
	if !g.Config.WallCollision {
		return
	}
	room, ok := g.CurrentRoom()
	if !ok {
		return
	}

	p := g.Player
	for _, r := range collisionRooms(g, room) {
		for _, dir := range world.AllDirections() {
			id, ok := r.Wall(dir)
			if !ok {
				continue
			}
			wall, ok := g.Wall(id)
			if !ok || !wall.Blocking() {
				continue
			}
			circle := geom.Circle{Center: p.Pose.Position.XZ(), Radius: g.Config.PlayerRadius}
			d, hit := geom.CircleBoxDisplacement(circle, wall.Collider.WithPush(dir.Inward()))
			if !hit {
				continue
			}
			pushed := circle.Center.Add(d)
			if _, inside := g.Graph.Find(pushed.X, pushed.Z); !inside {
				continue
			}
			p.Pose.Position = p.Pose.Position.WithXZ(pushed)
		}
	}
}

// collisionRooms lists room followed by every neighbour reached through an
// open side
func collisionRooms(g *state.Game, room *world.Room) []*world.Room {
	rooms := []*world.Room{room}
	for _, dir := range world.AllDirections() {
		if !SideOpen(g, room, dir) {
			continue
		}
		next, _ := room.Neighbor(dir)
		if other, ok := g.Graph.Room(next); ok {
			rooms = append(rooms, other)
		}
	}
	return rooms
}

// logMessage adds a catalog message to the player's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(messages.Format(key, a...))
}

func playerFields(g *state.Game) logrus.Fields {
	p := g.Player
	return logrus.Fields{
		"frame":   g.Frame,
		"room":    p.CurrentRoom,
		"in_room": p.InRoom,
		"x":       p.Pose.Position.X,
		"z":       p.Pose.Position.Z,
	}
}
