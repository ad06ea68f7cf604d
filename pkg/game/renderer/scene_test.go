package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/state"
)

const (
	modelKey assets.ModelHandle = iota + 1
	modelSolid
	modelOpen
	modelLocked
	modelFloor
)

// twoRooms is room 0 west of room 1 joined through locked wall 1, with the
// key for room 1 lying in room 0
func twoRooms(t *testing.T) *state.Game {
	t.Helper()
	cfg := config.Default()
	g := state.NewGame(cfg)
	g.Visuals = state.Visuals{
		Key:        modelKey,
		WallSolid:  modelSolid,
		WallOpen:   modelOpen,
		WallLocked: modelLocked,
		Floor:      modelFloor,
	}

	walls := []struct {
		x, z    float64
		rotated bool
		door    world.DoorState
	}{
		{150, 295, true, world.DoorNone},
		{300, 147.5, false, world.DoorLocked},
		{150, 0, true, world.DoorNone},
		{0, 147.5, false, world.DoorNone},
		{450, 295, true, world.DoorNone},
		{600, 147.5, false, world.DoorNone},
		{450, 0, true, world.DoorNone},
	}
	for i, w := range walls {
		g.Walls = append(g.Walls, world.NewWall(world.WallID(i), geom.Vec2{X: w.x, Z: w.z}, w.rotated, w.door, cfg.WallHalf()))
	}

	r0 := world.NewRoom(0, geom.Vec2{})
	r0.Walls = [4]world.WallID{0, 1, 2, 3}
	r0.Neighbors[world.East] = 1
	r1 := world.NewRoom(1, geom.Vec2{X: 300})
	r1.Walls = [4]world.WallID{4, 5, 6, 1}
	r1.Neighbors[world.West] = 0
	g.Graph.Add(r0)
	g.Graph.Add(r1)

	g.Keys.Add(0, entities.OpensRoom(1), entities.Visual{Position: geom.Vec3{X: 230, Y: 5, Z: 150}, Model: modelKey})
	g.StartRoom, g.EndRoom = 0, 1
	g.Player = state.NewPlayer(geom.Vec3{X: 150, Y: -15, Z: 20}, 0, 1)
	require.True(t, gameplay.ResolveRoom(g))
	return g
}

func byKind(s Scene, k Kind) []Drawable {
	var out []Drawable
	for _, d := range s.Drawables {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

func TestBuildScene(t *testing.T) {
	g := twoRooms(t)
	s := BuildScene(g)

	assert.Len(t, byKind(s, KindFloor), 2)
	walls := byKind(s, KindWall)
	require.Len(t, walls, 7)
	assert.Equal(t, modelLocked, walls[1].Model)
	assert.Equal(t, modelSolid, walls[0].Model)
	assert.Equal(t, geom.Vec2{X: 150, Z: 10}, walls[0].Half, "rotated walls run along x")
	assert.Equal(t, geom.Vec2{X: 10, Z: 150}, walls[1].Half)

	keys := byKind(s, KindKey)
	require.Len(t, keys, 1)
	assert.Equal(t, modelKey, keys[0].Model)

	players := byKind(s, KindPlayer)
	require.Len(t, players, 1)
	assert.Equal(t, KindPlayer, s.Drawables[len(s.Drawables)-1].Kind)

	assert.Equal(t, geom.Vec2{}, s.Min)
	assert.Equal(t, geom.Vec2{X: 600, Z: 295}, s.Max)
	assert.True(t, s.HUD.InRoom)
	assert.Equal(t, world.RoomID(0), s.HUD.Room)
	assert.Empty(t, s.HUD.Keys)
	assert.Equal(t, state.StatusPlaying, s.HUD.Status)
}

func TestBuildScene_DoorOpensAfterPickup(t *testing.T) {
	g := twoRooms(t)
	g.Player.Pose.Position = geom.Vec3{X: 200, Y: -15, Z: 140}

	grab := input.NewFrame()
	grab.Release(input.ActionGrab)
	gameplay.Step(g, grab, g.Config.FrameDT)

	s := BuildScene(g)
	walls := byKind(s, KindWall)
	assert.Equal(t, modelOpen, walls[1].Model)
	assert.Equal(t, world.DoorOpen, walls[1].Door)
	assert.Empty(t, byKind(s, KindKey), "picked up keys are no longer drawn")
	assert.Equal(t, []string{"key 0 (room 1)"}, s.HUD.Keys)
	assert.NotEmpty(t, s.HUD.Messages)
}

func TestBuildScene_DoesNotModifyGame(t *testing.T) {
	g := twoRooms(t)
	before := *g.Player
	frame := g.Frame
	BuildScene(g)
	BuildScene(g)
	assert.Equal(t, before.Pose, g.Player.Pose)
	assert.Equal(t, frame, g.Frame)
	assert.Equal(t, 1, g.Keys.Len())
}

func TestBuildScene_Animation(t *testing.T) {
	g := twoRooms(t)
	g.Decor = append(g.Decor, &entities.Decor{
		Name: "runner",
		Pose: geom.Pose{Position: geom.Vec3{X: 50, Z: 50}, Scale: 1},
		Anim: entities.NewAnimationState(7, 2, true),
	})
	g.Decor[0].Anim.Tick(0.5)

	decor := byKind(BuildScene(g), KindDecor)
	require.Len(t, decor, 1)
	assert.True(t, decor[0].Animated)
	assert.Equal(t, assets.AnimationHandle(7), decor[0].Clip)
	assert.InDelta(t, 0.5, decor[0].ClipTime, 1e-9)
}

func TestPlan(t *testing.T) {
	s := BuildScene(twoRooms(t))
	p := NewPlan(s, 60, 10)

	col, row, ok := p.Cell(geom.Vec2{X: 150, Z: 20})
	require.True(t, ok)
	assert.Equal(t, 15, col)
	assert.Equal(t, 9, row)

	col, row, ok = p.Cell(geom.Vec2{X: 600, Z: 295})
	require.True(t, ok)
	assert.Equal(t, 59, col)
	assert.Equal(t, 0, row)

	_, _, ok = p.Cell(geom.Vec2{X: -1, Z: 0})
	assert.False(t, ok)

	cells := p.Cells(s)
	require.Len(t, cells, 10)
	assert.Equal(t, IconPlayer, cells[9][15].Icon)
	assert.Equal(t, IconKey, cells[4][23].Icon)
	assert.Equal(t, IconDoorLocked, cells[4][30].Icon)
}

func TestFit(t *testing.T) {
	s := Scene{Max: geom.Vec2{X: 600, Z: 300}}
	p := Fit(s, 10, 20, 300, 300)

	assert.InDelta(t, 0.5, p.Scale, 1e-9)

	x, y := p.Point(geom.Vec2{})
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 245, y, 1e-9, "south-west corner sits at the bottom of the centred map")

	x, y = p.Point(geom.Vec2{X: 600, Z: 300})
	assert.InDelta(t, 310, x, 1e-9)
	assert.InDelta(t, 95, y, 1e-9)

	rx, ry, rw, rh := p.Rect(geom.Vec2{X: 300, Z: 150}, geom.Vec2{X: 10, Z: 150})
	assert.InDelta(t, 155, rx, 1e-9)
	assert.InDelta(t, 95, ry, 1e-9)
	assert.InDelta(t, 10, rw, 1e-9)
	assert.InDelta(t, 150, rh, 1e-9)
}
