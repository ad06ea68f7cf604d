// Package entities contains the things placed in rooms: keys and the
// decorative models around them.
package entities

import (
	"fmt"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
)

// KeyID identifies a key for the lifetime of a game
type KeyID int

// TargetKind says what a key opens
type TargetKind int

const (
	// TargetRoom opens the locked walls between a room and its neighbours
	TargetRoom TargetKind = iota
	// TargetWall opens one specific wall
	TargetWall
)

// Target is the door or room a key unlocks
type Target struct {
	Kind TargetKind
	Room world.RoomID
	Wall world.WallID
}

// OpensRoom returns a target for every locked wall around room
func OpensRoom(room world.RoomID) Target {
	return Target{Kind: TargetRoom, Room: room, Wall: world.NoWall}
}

// OpensWall returns a target for a single wall
func OpensWall(wall world.WallID) Target {
	return Target{Kind: TargetWall, Room: world.NoRoom, Wall: wall}
}

func (t Target) String() string {
	if t.Kind == TargetWall {
		return fmt.Sprintf("wall %d", t.Wall)
	}
	return fmt.Sprintf("room %d", t.Room)
}

// Visual is how a key is drawn
type Visual struct {
	Position geom.Vec3
	Model    assets.ModelHandle
}

// Key is a pickup that opens a Target. The key and its visual are one
// record, so what is drawn is always what can be picked up.
type Key struct {
	ID       KeyID
	StartsIn world.RoomID
	Opens    Target
	PickedUp bool
	Visual   Visual
}
