package world

import (
	"fmt"

	"escaperoom/pkg/engine/geom"
)

// WallID identifies a wall (a "flat" in map descriptions)
type WallID int

// NoWall marks an empty wall slot
const NoWall WallID = -1

// DoorState is the door carried by a wall
type DoorState int

// Door states, numbered as in map descriptions
const (
	DoorNone   DoorState = iota // solid wall
	DoorOpen                    // open doorway
	DoorLocked                  // locked door, needs a key
)

// String returns the string representation of a door state
func (s DoorState) String() string {
	switch s {
	case DoorNone:
		return "solid"
	case DoorOpen:
		return "open"
	case DoorLocked:
		return "locked"
	default:
		return fmt.Sprintf("DoorState(%d)", int(s))
	}
}

// IsValid returns true for the three known door states
func (s DoorState) IsValid() bool {
	return s >= DoorNone && s <= DoorLocked
}

// Wall is a planar obstacle on the boundary of one or two rooms
type Wall struct {
	ID       WallID
	Position geom.Vec2
	Rotated  bool // turned 90 degrees about Y from the default orientation
	Door     DoorState

	// Collider is the footprint used for collision; nil when the wall does
	// not block movement.
	Collider *geom.Box
}

// NewWall creates a wall whose footprint has the given half extents in its
// default orientation. Rotated walls swap the extents. Open doorways get no
// collider.
func NewWall(id WallID, pos geom.Vec2, rotated bool, door DoorState, half geom.Vec2) *Wall {
	w := &Wall{
		ID:       id,
		Position: pos,
		Rotated:  rotated,
		Door:     door,
	}
	if door != DoorOpen {
		if rotated {
			half = geom.Vec2{X: half.Z, Z: half.X}
		}
		w.Collider = &geom.Box{Center: pos, Half: half}
	}
	return w
}

// Blocking returns true while the wall's collider is active
func (w *Wall) Blocking() bool {
	return w != nil && w.Collider != nil
}

// Locked returns true if the wall carries a locked door
func (w *Wall) Locked() bool {
	return w != nil && w.Door == DoorLocked
}

// Unlock turns a locked door into an open one and drops its collider.
// Returns false if the wall was not a locked door.
func (w *Wall) Unlock() bool {
	if !w.Locked() {
		return false
	}
	w.Door = DoorOpen
	w.Collider = nil
	return true
}
