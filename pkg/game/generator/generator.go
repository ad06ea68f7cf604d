// Package generator lays out random maps as room graphs. Every generated
// map is solvable: each locked door's key lies in a room that is reachable
// before that door.
package generator

import (
	"escaperoom/pkg/game/mapdata"
)

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	Generate(level int, width, length float64) *mapdata.Description
	Name() string
}

// decorNames are scattered through generated rooms
var decorNames = []string{"crate", "lamp", "shelf", "barrel", "desk"}

// Available generators
var (
	LineWalker = NewLineWalker(1)
)

// DefaultGenerator is the default map generator
var DefaultGenerator MapGenerator = LineWalker
