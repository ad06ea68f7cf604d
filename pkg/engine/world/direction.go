package world

import "escaperoom/pkg/engine/geom"

// Direction names one of the four wall/neighbour slots of a room
type Direction int

// Direction constants, in the slot order used by map descriptions
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the unit floor-plane offset pointing out of a room through
// this side. North is +Z, East is +X.
func (d Direction) Delta() geom.Vec2 {
	switch d {
	case North:
		return geom.Vec2{Z: 1}
	case East:
		return geom.Vec2{X: 1}
	case South:
		return geom.Vec2{Z: -1}
	case West:
		return geom.Vec2{X: -1}
	default:
		return geom.Vec2{}
	}
}

// Inward returns the displacement multiplier for a wall sitting in this slot:
// the unit offset pointing back into the room.
func (d Direction) Inward() geom.Vec2 {
	return d.Delta().Scale(-1)
}
