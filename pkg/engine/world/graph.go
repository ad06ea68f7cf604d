package world

import (
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/geom"
)

// Graph holds the rooms of a map keyed by id.
// Every room has the same width (X) and length (Z).
type Graph struct {
	rooms  map[RoomID]*Room
	order  []RoomID
	width  float64
	length float64
}

// NewGraph creates an empty graph whose rooms are width x length units
func NewGraph(width, length float64) *Graph {
	return &Graph{
		rooms:  make(map[RoomID]*Room),
		width:  width,
		length: length,
	}
}

// Width returns the room size along X
func (g *Graph) Width() float64 {
	return g.width
}

// Length returns the room size along Z
func (g *Graph) Length() float64 {
	return g.length
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	return len(g.order)
}

// Add inserts a room. Adding an id that already exists replaces the previous
// room but keeps its original lookup position.
func (g *Graph) Add(room Room) {
	if _, exists := g.rooms[room.ID]; !exists {
		g.order = append(g.order, room.ID)
	}
	r := room
	g.rooms[room.ID] = &r
}

// Room returns the room with the given id
func (g *Graph) Room(id RoomID) (*Room, bool) {
	if g == nil {
		return nil, false
	}
	r, ok := g.rooms[id]
	return r, ok
}

// ForEachRoom calls fn for every room in insertion order
func (g *Graph) ForEachRoom(fn func(r *Room)) {
	for _, id := range g.order {
		fn(g.rooms[id])
	}
}

// Bounds returns the min and max corners of a room's rectangle
func (g *Graph) Bounds(id RoomID) (lo, hi geom.Vec2, ok bool) {
	r, found := g.Room(id)
	if !found {
		return geom.Vec2{}, geom.Vec2{}, false
	}
	return r.Corner, r.Corner.Add(geom.Vec2{X: g.width, Z: g.length}), true
}

// Contains reports whether (x, z) lies in the room's rectangle, edges included
func (g *Graph) Contains(id RoomID, x, z float64) bool {
	lo, hi, ok := g.Bounds(id)
	if !ok {
		return false
	}
	return x >= lo.X && x <= hi.X && z >= lo.Z && z <= hi.Z
}

// Find returns the first room, in insertion order, whose rectangle contains
// (x, z). The result for overlapping rooms is whichever was added first.
func (g *Graph) Find(x, z float64) (RoomID, bool) {
	if g == nil {
		return NoRoom, false
	}
	for _, id := range g.order {
		if g.Contains(id, x, z) {
			return id, true
		}
	}
	return NoRoom, false
}

// Neighbor returns the room adjacent to id in the given direction
func (g *Graph) Neighbor(id RoomID, dir Direction) (RoomID, bool) {
	r, ok := g.Room(id)
	if !ok {
		return NoRoom, false
	}
	return r.Neighbor(dir)
}

// Overlaps returns every pair of rooms whose rectangles share interior area.
// Rooms that only touch along an edge do not overlap.
func (g *Graph) Overlaps() [][2]RoomID {
	var pairs [][2]RoomID
	for i, a := range g.order {
		ra := g.rooms[a]
		for _, b := range g.order[i+1:] {
			rb := g.rooms[b]
			if ra.Corner.X < rb.Corner.X+g.width && rb.Corner.X < ra.Corner.X+g.width &&
				ra.Corner.Z < rb.Corner.Z+g.length && rb.Corner.Z < ra.Corner.Z+g.length {
				pairs = append(pairs, [2]RoomID{a, b})
			}
		}
	}
	return pairs
}

// Reachable collects every room reachable from start by BFS over neighbour
// slots. passable decides whether the slot dir of room from may be crossed;
// nil allows every slot.
func (g *Graph) Reachable(start RoomID, passable func(from *Room, dir Direction) bool) mapset.Set[RoomID] {
	reachable := mapset.New[RoomID]()
	if _, ok := g.Room(start); !ok {
		return reachable
	}
	queue := []RoomID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) {
			continue
		}
		room, ok := g.Room(current)
		if !ok {
			continue
		}
		reachable.Put(current)

		for _, dir := range AllDirections() {
			next, ok := room.Neighbor(dir)
			if !ok || reachable.Has(next) {
				continue
			}
			if passable != nil && !passable(room, dir) {
				continue
			}
			queue = append(queue, next)
		}
	}

	return reachable
}

// WallsAround returns the walls separating room id from its neighbours: its
// own slots that face a neighbour, then each neighbour's slot facing back.
// Walls shared by both rooms are listed once.
func (g *Graph) WallsAround(id RoomID) []WallID {
	room, ok := g.Room(id)
	if !ok {
		return nil
	}
	seen := mapset.New[WallID]()
	var walls []WallID
	add := func(w WallID, ok bool) {
		if ok && !seen.Has(w) {
			seen.Put(w)
			walls = append(walls, w)
		}
	}

	for _, dir := range AllDirections() {
		if _, ok := room.Neighbor(dir); ok {
			add(room.Wall(dir))
		}
	}
	for _, dir := range AllDirections() {
		next, ok := room.Neighbor(dir)
		if !ok {
			continue
		}
		other, ok := g.Room(next)
		if !ok {
			continue
		}
		back, ok := other.DirectionTo(id)
		if !ok {
			continue
		}
		add(other.Wall(back))
	}
	return walls
}
