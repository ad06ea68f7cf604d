// Package world provides the room graph primitives: rooms with four
// neighbour and wall slots, walls that may carry a door, and the lookup of
// which room contains a point on the floor plane.
package world

import (
	"fmt"

	"escaperoom/pkg/engine/geom"
)

// RoomID identifies a room
type RoomID int

// NoRoom marks an empty neighbour slot
const NoRoom RoomID = -1

// String returns a printable form of the id
func (id RoomID) String() string {
	if id == NoRoom {
		return "none"
	}
	return fmt.Sprintf("%d", int(id))
}

// Room is a rectangular region of the map.
// Size is shared by every room in a Graph; Corner is the bottom-left (min x, min z) point.
type Room struct {
	ID        RoomID
	Walls     [4]WallID // indexed by Direction
	Neighbors [4]RoomID // indexed by Direction, NoRoom when empty
	Corner    geom.Vec2
}

// NewRoom creates a room with all neighbour slots empty
func NewRoom(id RoomID, corner geom.Vec2) Room {
	return Room{
		ID:        id,
		Walls:     [4]WallID{NoWall, NoWall, NoWall, NoWall},
		Neighbors: [4]RoomID{NoRoom, NoRoom, NoRoom, NoRoom},
		Corner:    corner,
	}
}

// Neighbor returns the room on the other side of the given slot
func (r *Room) Neighbor(dir Direction) (RoomID, bool) {
	if r == nil || !dir.IsValid() {
		return NoRoom, false
	}
	id := r.Neighbors[dir]
	if id == NoRoom {
		return NoRoom, false
	}
	return id, true
}

// Wall returns the wall reference in the given slot
func (r *Room) Wall(dir Direction) (WallID, bool) {
	if r == nil || !dir.IsValid() {
		return NoWall, false
	}
	id := r.Walls[dir]
	if id == NoWall {
		return NoWall, false
	}
	return id, true
}

// DirectionTo returns the slot whose neighbour is other
func (r *Room) DirectionTo(other RoomID) (Direction, bool) {
	if r == nil || other == NoRoom {
		return North, false
	}
	for _, dir := range AllDirections() {
		if r.Neighbors[dir] == other {
			return dir, true
		}
	}
	return North, false
}
