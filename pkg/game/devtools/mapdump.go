// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// Plan size used by dumps
const (
	dumpCols = 72
	dumpRows = 24
)

// cellSymbol returns the single-character symbol for a plan cell
func cellSymbol(c renderer.PlanCell) rune {
	switch c.Kind {
	case renderer.KindFloor:
		return '.'
	case renderer.KindWall:
		switch c.Door {
		case world.DoorOpen:
			return 'o'
		case world.DoorLocked:
			return 'D'
		}
		return '#'
	case renderer.KindKey:
		return 'k'
	case renderer.KindDecor:
		return '*'
	case renderer.KindPlayer:
		return '@'
	default:
		return ' '
	}
}

// writeMapGrid writes the top-down plan of the scene
func writeMapGrid(w io.Writer, s renderer.Scene, cols, rows int) {
	plan := renderer.NewPlan(s, cols, rows)
	for _, row := range plan.Cells(s) {
		line := make([]rune, len(row))
		for i, c := range row {
			line[i] = cellSymbol(c)
		}
		fmt.Fprintln(w, string(line))
	}
}

// DumpMap writes a debug dump of the game: metadata, legend, plan and the
// rooms, walls and keys with their state
func DumpMap(w io.Writer, g *state.Game) {
	s := renderer.BuildScene(g)
	p := g.Player

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (rooms, walls, keys) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "rooms: %d\n", g.Graph.Len())
	fmt.Fprintf(w, "room_size: %gx%g\n", g.Graph.Width(), g.Graph.Length())
	fmt.Fprintf(w, "walls: %d\n", len(g.Walls))
	fmt.Fprintf(w, "keys_in_world: %d\n", g.Keys.Len())
	fmt.Fprintf(w, "start_room: %v\n", g.StartRoom)
	fmt.Fprintf(w, "end_room: %v\n", g.EndRoom)
	fmt.Fprintf(w, "status: %v\n", g.Status)
	if p != nil {
		fmt.Fprintf(w, "player_position: %g,%g,%g\n", p.Pose.Position.X, p.Pose.Position.Y, p.Pose.Position.Z)
		fmt.Fprintf(w, "player_yaw: %g\n", p.Pose.Yaw)
		fmt.Fprintf(w, "player_room: %v\n", roomOrNone(p.CurrentRoom, p.InRoom))
		fmt.Fprintf(w, "owned_keys: %d\n", len(p.OwnedKeys))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (plan symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  D = locked door  o = open doorway  k = key  * = decor  @ = player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (north up) ---")
	writeMapGrid(w, s, dumpCols, dumpRows)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	g.Graph.ForEachRoom(func(r *world.Room) {
		fmt.Fprintf(w, "  id: %v corner: %g,%g", r.ID, r.Corner.X, r.Corner.Z)
		for _, dir := range world.AllDirections() {
			wall, _ := r.Wall(dir)
			next, _ := r.Neighbor(dir)
			fmt.Fprintf(w, " %s: wall=%d room=%v", dir, wall, next)
		}
		fmt.Fprintln(w)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Walls ---")
	for _, wall := range g.Walls {
		if wall == nil {
			continue
		}
		fmt.Fprintf(w, "  id: %d position: %g,%g rotated: %v door: %v blocking: %v\n",
			wall.ID, wall.Position.X, wall.Position.Z, wall.Rotated, wall.Door, wall.Blocking())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Keys ---")
	for _, k := range g.Keys.All() {
		fmt.Fprintf(w, "  id: %d room: %v opens: %v position: %g,%g,%g\n",
			k.ID, k.StartsIn, k.Opens, k.Visual.Position.X, k.Visual.Position.Y, k.Visual.Position.Z)
	}
	if p != nil {
		for _, k := range p.OwnedKeys {
			fmt.Fprintf(w, "  id: %d owned: true opens: %v\n", k.ID, k.Opens)
		}
	}
}

// DumpMapToFile writes DumpMap to map.txt in the working directory and
// returns the absolute path
func DumpMapToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpMap(f, g)
	return absPath, nil
}

func roomOrNone(id world.RoomID, in bool) world.RoomID {
	if !in {
		return world.NoRoom
	}
	return id
}
