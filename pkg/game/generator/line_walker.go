package generator

import (
	"math"
	"math/rand"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/mapdata"
)

// cell is a slot on the room lattice
type cell struct{ col, row int }

func (c cell) step(d world.Direction) cell {
	switch d {
	case world.North:
		return cell{c.col, c.row + 1}
	case world.East:
		return cell{c.col + 1, c.row}
	case world.South:
		return cell{c.col, c.row - 1}
	case world.West:
		return cell{c.col - 1, c.row}
	}
	return c
}

// LineWalkerGenerator generates maps by walking lines of rooms in random
// directions with branching probability. Rooms sit on a lattice one room
// size apart, so neighbours share a wall flat.
type LineWalkerGenerator struct {
	rng *rand.Rand
}

// NewLineWalker returns a generator seeded with seed
func NewLineWalker(seed int64) *LineWalkerGenerator {
	return &LineWalkerGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// layout is the room tree under construction
type layout struct {
	order  []cell
	index  map[cell]int
	parent []int
	via    []world.Direction // side of the parent the room was entered through
}

func (l *layout) add(c cell, parent int, via world.Direction) {
	l.index[c] = len(l.order)
	l.order = append(l.order, c)
	l.parent = append(l.parent, parent)
	l.via = append(l.via, via)
}

// Generate creates a map for the given level. Higher levels get more rooms,
// more branching and more locked doors.
func (g *LineWalkerGenerator) Generate(level int, width, length float64) *mapdata.Description {
	level = max(level, 1)
	rooms := 3 + level*2

	// Level 1: 0.28, Level 10: 0.55
	branchProb := min(float32(0.25)+float32(level)*0.03, 0.65)
	lockProb := min(float32(0.3)+float32(level)*0.05, 0.8)
	minDist := 2 + level/4
	maxDist := 4 + level/2

	l := &layout{index: make(map[cell]int)}
	l.add(cell{}, -1, world.North)
	for len(l.order) < rooms {
		from := len(l.order) - 1
		if g.rng.Float32() < branchProb {
			from = g.rng.Intn(len(l.order))
		}
		g.buildLineOfRooms(l, from, g.randomDirection(), minDist+g.rng.Intn(maxDist-minDist+1), rooms)
	}

	return g.describe(l, width, length, lockProb)
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection() world.Direction {
	return world.Direction(g.rng.Intn(4))
}

// buildLineOfRooms walks up to distance rooms from room from in direction
// dir, stopping early at an occupied lattice slot or once limit rooms exist
func (g *LineWalkerGenerator) buildLineOfRooms(l *layout, from int, dir world.Direction, distance, limit int) {
	for range distance {
		if len(l.order) >= limit {
			return
		}
		next := l.order[from].step(dir)
		if _, taken := l.index[next]; taken {
			return
		}
		l.add(next, from, dir)
		from = len(l.order) - 1
	}
}

// describe turns the room tree into a map document. Tree edges become
// doorways, locked with probability lockProb, and every other side is solid.
func (g *LineWalkerGenerator) describe(l *layout, width, length float64, lockProb float32) *mapdata.Description {
	desc := &mapdata.Description{
		StartRoom: 0,
		EndRoom:   g.farthest(l),
	}

	flatAt := make(map[mapdata.Point2]int)
	flat := func(p mapdata.Point2, identity bool) int {
		if i, ok := flatAt[p]; ok {
			return i
		}
		flatAt[p] = len(desc.Flats)
		desc.Flats = append(desc.Flats, mapdata.FlatSpec{X: p.X, Z: p.Z, IsIdentity: identity})
		return flatAt[p]
	}

	for id, c := range l.order {
		corner := mapdata.Point2{X: float64(c.col) * width, Z: float64(c.row) * length}
		r := mapdata.RoomSpec{ID: id, Corner: corner, ConnectedRooms: [4]int{-1, -1, -1, -1}}
		r.Flats[world.North] = flat(mapdata.Point2{X: corner.X + width/2, Z: corner.Z + length}, false)
		r.Flats[world.East] = flat(mapdata.Point2{X: corner.X + width, Z: corner.Z + length/2}, true)
		r.Flats[world.South] = flat(mapdata.Point2{X: corner.X + width/2, Z: corner.Z}, false)
		r.Flats[world.West] = flat(mapdata.Point2{X: corner.X, Z: corner.Z + length/2}, true)
		desc.Rooms = append(desc.Rooms, r)
	}

	for id := 1; id < len(l.order); id++ {
		p, dir := l.parent[id], l.via[id]
		desc.Rooms[p].ConnectedRooms[dir] = id
		desc.Rooms[id].ConnectedRooms[dir.Opposite()] = p

		door := desc.Rooms[p].Flats[dir]
		desc.Flats[door].Door = mapdata.DoorOpen
		if g.rng.Float32() >= lockProb {
			continue
		}
		desc.Flats[door].Door = mapdata.DoorLocked

		// rooms are added in walk order, so any earlier room is reachable
		// once the locks before it are open
		holder := g.rng.Intn(id)
		x, z := g.spot(desc.Rooms[holder].Corner, width, length)
		opens := door
		desc.Keys = append(desc.Keys, mapdata.KeySpec{
			StartsIn:  holder,
			OpensWall: &opens,
			X:         x,
			Y:         5,
			Z:         z,
		})
	}

	for id := range desc.Rooms {
		if g.rng.Intn(2) == 0 {
			continue
		}
		x, z := g.spot(desc.Rooms[id].Corner, width, length)
		desc.Decor = append(desc.Decor, mapdata.DecorSpec{
			Name:  decorNames[g.rng.Intn(len(decorNames))],
			X:     x,
			Z:     z,
			Yaw:   g.rng.Float64() * 2 * math.Pi,
			Scale: 1,
		})
	}

	start := desc.Rooms[0].Corner
	desc.Player = mapdata.PlayerSpec{X: start.X + width/2, Y: -15, Z: start.Z + length/2, Scale: 1}
	return desc
}

// spot picks a point in the middle half of the room at corner
func (g *LineWalkerGenerator) spot(corner mapdata.Point2, width, length float64) (x, z float64) {
	x = corner.X + width/4 + g.rng.Float64()*width/2
	z = corner.Z + length/4 + g.rng.Float64()*length/2
	return x, z
}

// farthest returns the room with the most tree edges between it and the
// start, preferring the latest added on ties
func (g *LineWalkerGenerator) farthest(l *layout) int {
	depth := make([]int, len(l.order))
	best := 0
	for id := 1; id < len(l.order); id++ {
		depth[id] = depth[l.parent[id]] + 1
		if depth[id] >= depth[best] {
			best = id
		}
	}
	return best
}
