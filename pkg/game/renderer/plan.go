package renderer

import (
	"math"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
)

// Icons used by the top-down plan
const (
	IconPlayer     = "@"
	IconFloor      = "·"
	IconWall       = "▒"
	IconDoorOpen   = "□"
	IconDoorLocked = "▣"
	IconKey        = "⚷"
	IconDecor      = "*"
	IconVoid       = " "
)

// PlanCell is one character of the plan
type PlanCell struct {
	Icon string
	Kind Kind
	Door world.DoorState
}

// Plan projects the floor plane of a scene onto a grid, north (+Z) up
type Plan struct {
	Cols, Rows int

	min, max geom.Vec2
	cellW    float64 // world units per column
	cellH    float64 // world units per row
}

// NewPlan fits the scene's rooms into cols x rows cells
func NewPlan(s Scene, cols, rows int) Plan {
	cols, rows = max(cols, 1), max(rows, 1)
	p := Plan{Cols: cols, Rows: rows, min: s.Min, max: s.Max}
	p.cellW = math.Max(s.Max.X-s.Min.X, 1) / float64(cols)
	p.cellH = math.Max(s.Max.Z-s.Min.Z, 1) / float64(rows)
	return p
}

// Cell returns the column and row holding pt. Points on the far edges
// belong to the last column or row.
func (p Plan) Cell(pt geom.Vec2) (col, row int, ok bool) {
	if pt.X < p.min.X || pt.X > p.max.X || pt.Z < p.min.Z || pt.Z > p.max.Z {
		return 0, 0, false
	}
	col = min(int((pt.X-p.min.X)/p.cellW), p.Cols-1)
	row = min(int((p.max.Z-pt.Z)/p.cellH), p.Rows-1)
	return col, row, true
}

// Cells draws the scene into the grid. Later drawables cover earlier ones,
// so the player is always visible.
func (p Plan) Cells(s Scene) [][]PlanCell {
	grid := make([][]PlanCell, p.Rows)
	for r := range grid {
		grid[r] = make([]PlanCell, p.Cols)
		for c := range grid[r] {
			grid[r][c] = PlanCell{Icon: IconVoid, Kind: -1}
		}
	}

	for _, d := range s.Drawables {
		cell := PlanCell{Kind: d.Kind, Door: d.Door}
		switch d.Kind {
		case KindFloor:
			cell.Icon = IconFloor
		case KindWall:
			cell.Icon = wallIcon(d.Door)
		case KindKey:
			cell.Icon = IconKey
		case KindDecor:
			cell.Icon = IconDecor
		case KindPlayer:
			cell.Icon = IconPlayer
		}

		if d.Kind == KindFloor || d.Kind == KindWall {
			p.fill(grid, d.Pose.Position.XZ(), d.Half, cell)
			continue
		}
		if c, r, ok := p.Cell(d.Pose.Position.XZ()); ok {
			grid[r][c] = cell
		}
	}
	return grid
}

// fill covers every cell whose centre lies inside the rectangle, and at
// least the cell holding the rectangle's centre
func (p Plan) fill(grid [][]PlanCell, center, half geom.Vec2, cell PlanCell) {
	lo := center.Sub(half)
	hi := center.Add(half)
	for r := range p.Rows {
		z := p.max.Z - (float64(r)+0.5)*p.cellH
		if z < lo.Z || z > hi.Z {
			continue
		}
		for c := range p.Cols {
			x := p.min.X + (float64(c)+0.5)*p.cellW
			if x >= lo.X && x <= hi.X {
				grid[r][c] = cell
			}
		}
	}
	if c, r, ok := p.Cell(center); ok {
		grid[r][c] = cell
	}
}

func wallIcon(door world.DoorState) string {
	switch door {
	case world.DoorOpen:
		return IconDoorOpen
	case world.DoorLocked:
		return IconDoorLocked
	default:
		return IconWall
	}
}

// Projection maps the floor plane onto a screen rectangle, north up,
// keeping the aspect ratio and centring the map
type Projection struct {
	Scale float64 // pixels per world unit

	min, max geom.Vec2
	x, y     float64 // screen position of the map's north-west corner
}

// Fit returns the projection placing the scene's rooms inside the screen
// rectangle at x, y sized w by h
func Fit(s Scene, x, y, w, h float64) Projection {
	span := s.Max.Sub(s.Min)
	spanX, spanZ := math.Max(span.X, 1), math.Max(span.Z, 1)
	scale := math.Max(math.Min(w/spanX, h/spanZ), 0)
	return Projection{
		Scale: scale,
		min:   s.Min,
		max:   s.Max,
		x:     x + (w-spanX*scale)/2,
		y:     y + (h-spanZ*scale)/2,
	}
}

// Point returns the screen position of a floor-plane point
func (p Projection) Point(pt geom.Vec2) (x, y float64) {
	return p.x + (pt.X-p.min.X)*p.Scale, p.y + (p.max.Z-pt.Z)*p.Scale
}

// Rect returns the screen rectangle covered by a footprint
func (p Projection) Rect(center, half geom.Vec2) (x, y, w, h float64) {
	x, y = p.Point(geom.Vec2{X: center.X - half.X, Z: center.Z + half.Z})
	return x, y, 2 * half.X * p.Scale, 2 * half.Z * p.Scale
}
