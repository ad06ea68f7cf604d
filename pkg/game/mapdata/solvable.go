package mapdata

import (
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/world"
)

// Solvable reports whether the end room can be reached from the start room
// by walking through open doors and collecting keys along the way. Solid
// walls never open.
func (d *Description) Solvable(width, length float64) bool {
	g := d.Graph(width, length)
	open := mapset.New[world.WallID]()
	for i, f := range d.Flats {
		if f.Door == DoorOpen {
			open.Put(world.WallID(i))
		}
	}

	passable := func(w world.WallID, ok bool) bool {
		return !ok || open.Has(w)
	}
	crossable := func(from *world.Room, dir world.Direction) bool {
		if !passable(from.Wall(dir)) {
			return false
		}
		next, _ := from.Neighbor(dir)
		to, ok := g.Room(next)
		if !ok {
			return false
		}
		back, ok := to.DirectionTo(from.ID)
		if !ok {
			return true
		}
		return passable(to.Wall(back))
	}

	collected := mapset.New[int]()
	end := world.RoomID(d.EndRoom)
	for {
		reachable := g.Reachable(world.RoomID(d.StartRoom), crossable)
		if reachable.Has(end) {
			return true
		}

		progress := false
		for i, k := range d.Keys {
			if collected.Has(i) || !reachable.Has(world.RoomID(k.StartsIn)) {
				continue
			}
			collected.Put(i)
			for _, w := range d.unlocks(g, k) {
				if d.Flats[w].Door == DoorLocked && !open.Has(w) {
					open.Put(w)
					progress = true
				}
			}
		}
		if !progress {
			return false
		}
	}
}

// unlocks lists the walls a key opens
func (d *Description) unlocks(g *world.Graph, k KeySpec) []world.WallID {
	if k.OpensWall != nil {
		return []world.WallID{world.WallID(*k.OpensWall)}
	}
	if k.OpensRoom != nil {
		return g.WallsAround(world.RoomID(*k.OpensRoom))
	}
	return nil
}
