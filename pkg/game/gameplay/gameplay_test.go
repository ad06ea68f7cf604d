package gameplay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// newTwoRoomGame builds room 0 at (0,0) and room 1 at (300,0), 300x295
// each, joined through locked wall 1. The key in room 0 opens room 1, which
// is the end room. The player starts at (150, -15, 20).
func newTwoRoomGame(cfg config.Config) (*state.Game, *entities.Key) {
	g := state.NewGame(cfg)
	half := cfg.WallHalf()

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
		g.Walls = append(g.Walls, world.NewWall(world.WallID(i), geom.Vec2{X: w.x, Z: w.z}, w.rotated, w.door, half))
	}

	r0 := world.NewRoom(0, geom.Vec2{})
	r0.Walls = [4]world.WallID{0, 1, 2, 3}
	r0.Neighbors[world.East] = 1
	r1 := world.NewRoom(1, geom.Vec2{X: 300})
	r1.Walls = [4]world.WallID{4, 5, 6, 1}
	r1.Neighbors[world.West] = 0
	g.Graph.Add(r0)
	g.Graph.Add(r1)

	key := g.Keys.Add(0, entities.OpensRoom(1), entities.Visual{Position: geom.Vec3{X: 230, Y: 5, Z: 150}})

	g.StartRoom, g.EndRoom = 0, 1
	g.Player = state.NewPlayer(geom.Vec3{X: 150, Y: -15, Z: 20}, 0, 1)
	ResolveRoom(g)
	return g, key
}

func walk(x, z float64) input.Frame {
	f := input.NewFrame()
	f.MoveX, f.MoveZ = x, z
	return f
}

func released(a input.Action) input.Frame {
	f := input.NewFrame()
	f.Release(a)
	return f
}

type GameplayTestSuite struct {
	suite.Suite
	game *state.Game
	key  *entities.Key
}

func TestGameplaySuite(t *testing.T) {
	suite.Run(t, new(GameplayTestSuite))
}

func (s *GameplayTestSuite) SetupTest() {
	s.game, s.key = newTwoRoomGame(config.Default())
}

func (s *GameplayTestSuite) step(in input.Frame, frames int) []Event {
	var events []Event
	for i := 0; i < frames; i++ {
		events = append(events, Step(s.game, in, s.game.Config.FrameDT)...)
	}
	return events
}

func (s *GameplayTestSuite) position() geom.Vec3 {
	return s.game.Player.Pose.Position
}

func (s *GameplayTestSuite) TestStartsInRoomZero() {
	s.True(s.game.Player.InRoom)
	s.Equal(world.RoomID(0), s.game.Player.CurrentRoom)
}

func (s *GameplayTestSuite) TestGrabTransfersKeyAndOpensWall() {
	// Walk to (200, 100): forward 40 frames, then strafe right 25.
	s.step(walk(0, 1), 40)
	s.step(walk(1, 0), 25)
	s.InDelta(200, s.position().X, 1e-9)
	s.InDelta(100, s.position().Z, 1e-9)

	wall, _ := s.game.Wall(1)
	s.True(wall.Blocking(), "wall 1 must block before pickup")

	events := s.step(released(input.ActionGrab), 1)

	s.Require().Len(s.game.Player.OwnedKeys, 1)
	s.Equal(s.key, s.game.Player.OwnedKeys[0])
	s.Empty(s.game.Keys.InRoom(0))
	s.False(wall.Blocking(), "wall 1 must be passable after pickup")
	s.Equal(world.DoorOpen, wall.Door)

	s.Require().Len(events, 2)
	s.Equal(EventKeyPickedUp, events[0].Kind)
	s.Equal(EventDoorOpened, events[1].Kind)
	s.Equal(world.WallID(1), events[1].Wall)

	// Picking up is idempotent.
	s.Empty(s.step(released(input.ActionGrab), 1))
	s.Len(s.game.Player.OwnedKeys, 1)
}

func (s *GameplayTestSuite) TestGrabOutOfReach() {
	// Key is ~140 units away from the start.
	key, _, ok := Grab(s.game)
	s.False(ok)
	s.Nil(key)
	s.Equal(1, s.game.Keys.Len())
}

func (s *GameplayTestSuite) TestLockedWallHoldsPlayerBack() {
	s.step(walk(0, 1), 40)
	s.step(walk(1, 0), 100)

	s.LessOrEqual(s.position().X, 280.0+1e-9)
	s.Equal(world.RoomID(0), s.game.Player.CurrentRoom)
	s.Equal(state.StatusPlaying, s.game.Status)
}

func (s *GameplayTestSuite) TestWalkIntoEndRoomWins() {
	s.step(walk(0, 1), 40)
	s.game.Player.Pose.Position.X = 200
	s.step(released(input.ActionGrab), 1)

	events := s.step(walk(1, 0), 60)

	s.Equal(state.StatusWon, s.game.Status)
	s.Equal(world.RoomID(1), s.game.Player.CurrentRoom)
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	s.Equal([]EventKind{EventRoomChanged, EventWon}, kinds)

	// Once won, movement and grabs are ignored.
	before := s.position()
	s.Empty(s.step(walk(1, 0), 5))
	s.Equal(before, s.position())
}

func (s *GameplayTestSuite) TestOutsideEveryRoom() {
	s.game.Player.Pose.Position = geom.Vec3{X: 10000, Y: -15, Z: 10000}

	events := s.step(walk(0, 1), 1)

	s.False(s.game.Player.InRoom)
	s.Equal(world.NoRoom, s.game.Player.CurrentRoom)
	s.InDelta(10002, s.position().Z, 1e-9, "clamping must be skipped")
	s.Require().Len(events, 1)
	s.Equal(EventLeftMap, events[0].Kind)

	_, _, ok := Grab(s.game)
	s.False(ok)

	_, found := LocateRoom(s.game)
	s.False(found)
}

func (s *GameplayTestSuite) TestLocateRoom() {
	id, ok := LocateRoom(s.game)
	s.True(ok)
	s.Equal(world.RoomID(0), id)
	s.NotEmpty(s.game.Messages)
}

func (s *GameplayTestSuite) TestQuitEvent() {
	events := s.step(released(input.ActionQuit), 1)
	s.Require().NotEmpty(events)
	s.Equal(EventQuit, events[0].Kind)
}

func TestClampToRoomBounds_Overshoot(t *testing.T) {
	cfg := config.Default()
	cfg.MoveSpeed = 1000
	cfg.WallCollision = false

	tests := []struct {
		name         string
		moveX, moveZ float64
		yaw          float64
		wantX, wantZ float64
	}{
		{"north", 0, 1, 0, 150, 290},
		{"south", 0, -1, 0, 150, 5},
		{"west", -1, 0, 0, 5, 100},
		{"east through locked wall", 1, 0, 0, 295, 100},
		{"turned half way", 0, 1, math.Pi, 150, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTwoRoomGame(cfg)
			g.Player.Pose.Position = geom.Vec3{X: 150, Y: -15, Z: 100}
			g.Player.Pose.Yaw = tt.yaw

			ApplyMovement(g, walk(tt.moveX, tt.moveZ), cfg.FrameDT)
			ClampToRoomBounds(g)

			pos := g.Player.Pose.Position
			if math.Abs(pos.X-tt.wantX) > 1e-6 || math.Abs(pos.Z-tt.wantZ) > 1e-6 {
				t.Errorf("after clamp = (%v, %v), want (%v, %v)", pos.X, pos.Z, tt.wantX, tt.wantZ)
			}
			lo, hi, _ := g.Graph.Bounds(0)
			if pos.X < lo.X || pos.X > hi.X || pos.Z < lo.Z || pos.Z > hi.Z {
				t.Errorf("(%v, %v) outside room 0", pos.X, pos.Z)
			}
		})
	}
}

func TestClampToRoomBounds_OpenSideReachesNeighbour(t *testing.T) {
	cfg := config.Default()
	g, key := newTwoRoomGame(cfg)
	OpenDoorsFor(g, key)

	g.Player.Pose.Position = geom.Vec3{X: 5000, Z: 100}
	ClampToRoomBounds(g)

	if got := g.Player.Pose.Position.X; got != 595 {
		t.Errorf("X = %v, want 595 (room 1's far side less the margin)", got)
	}
}

func TestClampToRoomBounds_NotInRoom(t *testing.T) {
	g, _ := newTwoRoomGame(config.Default())
	g.Player.Pose.Position = geom.Vec3{X: 10000, Z: 10000}
	ResolveRoom(g)
	ClampToRoomBounds(g)
	if p := g.Player.Pose.Position; p.X != 10000 || p.Z != 10000 {
		t.Errorf("position changed to (%v, %v) outside every room", p.X, p.Z)
	}
}

// newLShapedGame builds room 0 at (0,0), room 1 east of it and room 2 north
// of room 1, with open doorways 0-1 (wall 1) and 1-2 (wall 4). There is no
// room north of room 0, and no end room.
func newLShapedGame(cfg config.Config) *state.Game {
	g := state.NewGame(cfg)
	half := cfg.WallHalf()

	walls := []struct {
		x, z    float64
		rotated bool
		door    world.DoorState
	}{
		{150, 295, true, world.DoorNone},
		{300, 147.5, false, world.DoorOpen},
		{150, 0, true, world.DoorNone},
		{0, 147.5, false, world.DoorNone},
		{450, 295, true, world.DoorOpen},
		{600, 147.5, false, world.DoorNone},
		{450, 0, true, world.DoorNone},
		{450, 590, true, world.DoorNone},
		{600, 442.5, false, world.DoorNone},
		{300, 442.5, false, world.DoorNone},
	}
	for i, w := range walls {
		g.Walls = append(g.Walls, world.NewWall(world.WallID(i), geom.Vec2{X: w.x, Z: w.z}, w.rotated, w.door, half))
	}

	r0 := world.NewRoom(0, geom.Vec2{})
	r0.Walls = [4]world.WallID{0, 1, 2, 3}
	r0.Neighbors[world.East] = 1
	r1 := world.NewRoom(1, geom.Vec2{X: 300})
	r1.Walls = [4]world.WallID{4, 5, 6, 1}
	r1.Neighbors[world.North] = 2
	r1.Neighbors[world.West] = 0
	r2 := world.NewRoom(2, geom.Vec2{X: 300, Z: 295})
	r2.Walls = [4]world.WallID{7, 8, 4, 9}
	r2.Neighbors[world.South] = 1
	g.Graph.Add(r0)
	g.Graph.Add(r1)
	g.Graph.Add(r2)

	g.StartRoom = 0
	g.Player = state.NewPlayer(geom.Vec3{X: 300.5, Y: -15, Z: 294.5}, 0, 1)
	ResolveRoom(g)
	return g
}

func TestStep_CornerBetweenOpenSides(t *testing.T) {
	for _, collide := range []bool{true, false} {
		name := "without collisions"
		if collide {
			name = "with collisions"
		}
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.WallCollision = collide
			g := newLShapedGame(cfg)
			if !g.Player.InRoom || g.Player.CurrentRoom != 1 {
				t.Fatalf("player starts in room %v (in=%v), want room 1", g.Player.CurrentRoom, g.Player.InRoom)
			}

			// Walk north-west, straight at the corner with no room behind it.
			for i := 0; i < 200; i++ {
				for _, ev := range Step(g, walk(-1, 1), cfg.FrameDT) {
					if ev.Kind == EventLeftMap {
						t.Fatalf("frame %d: left the map at (%v, %v)", i, g.Player.Pose.Position.X, g.Player.Pose.Position.Z)
					}
				}
				if !g.Player.InRoom {
					t.Fatalf("frame %d: outside every room at (%v, %v)", i, g.Player.Pose.Position.X, g.Player.Pose.Position.Z)
				}
			}
			if p := g.Player.Pose.Position; p.X < 300 && p.Z > 295 {
				t.Errorf("ended at (%v, %v), north of room 0", p.X, p.Z)
			}
		})
	}
}

func TestClampToRoomBounds_PicksNearestOpenRange(t *testing.T) {
	g := newLShapedGame(config.Default())

	// North of room 0: reachable only by going up through room 2.
	g.Player.Pose.Position = geom.Vec3{X: 200, Z: 400}
	ClampToRoomBounds(g)
	if p := g.Player.Pose.Position; p.X != 305 || p.Z != 400 {
		t.Errorf("clamped to (%v, %v), want (305, 400) inside room 2", p.X, p.Z)
	}

	// Past room 0's west side the range through the west doorway wins.
	g.Player.Pose.Position = geom.Vec3{X: -50, Z: 100}
	ClampToRoomBounds(g)
	if p := g.Player.Pose.Position; p.X != 5 || p.Z != 100 {
		t.Errorf("clamped to (%v, %v), want (5, 100)", p.X, p.Z)
	}
}

func TestApplyMovement_RotatesBeforeTranslating(t *testing.T) {
	cfg := config.Default()
	cfg.TurnSpeed = 1
	g, _ := newTwoRoomGame(cfg)
	g.Player.Pose.Position = geom.Vec3{}

	f := walk(0, 1)
	f.PointerDX = math.Pi / 2
	ApplyMovement(g, f, 1)

	pos := g.Player.Pose.Position
	if math.Abs(pos.X-cfg.MoveSpeed) > 1e-9 || math.Abs(pos.Z) > 1e-9 {
		t.Errorf("moved to (%v, %v), want (%v, 0)", pos.X, pos.Z, cfg.MoveSpeed)
	}
}

func TestResolveWallCollisions(t *testing.T) {
	cfg := config.Default()
	g, _ := newTwoRoomGame(cfg)
	g.Player.Pose.Position = geom.Vec3{X: 285, Z: 100}

	ResolveWallCollisions(g)
	if got := g.Player.Pose.Position.X; math.Abs(got-280) > 1e-9 {
		t.Errorf("X = %v, want 280 after push from locked wall", got)
	}

	g.Config.WallCollision = false
	g.Player.Pose.Position = geom.Vec3{X: 285, Z: 100}
	ResolveWallCollisions(g)
	if got := g.Player.Pose.Position.X; got != 285 {
		t.Errorf("X = %v with collisions disabled, want 285", got)
	}
}

func TestOpenDoorsFor(t *testing.T) {
	g, _ := newTwoRoomGame(config.Default())

	opened := OpenDoorsFor(g, &entities.Key{Opens: entities.OpensWall(0)})
	if len(opened) != 0 {
		t.Errorf("OpenDoorsFor(solid wall) = %v, want none", opened)
	}
	if w, _ := g.Wall(0); !w.Blocking() {
		t.Error("solid wall stopped blocking")
	}

	opened = OpenDoorsFor(g, &entities.Key{Opens: entities.OpensWall(1)})
	if len(opened) != 1 || opened[0] != 1 {
		t.Errorf("OpenDoorsFor(wall 1) = %v, want [1]", opened)
	}

	if opened := OpenDoorsFor(g, &entities.Key{Opens: entities.OpensWall(99)}); len(opened) != 0 {
		t.Errorf("OpenDoorsFor(missing wall) = %v", opened)
	}
}

type modelLog []assets.ModelHandle

func (m *modelLog) RetainModel(assets.ModelHandle) {}

func (m *modelLog) ReleaseModel(h assets.ModelHandle) int {
	*m = append(*m, h)
	return 0
}

func TestGrab_ReleasesKeyModel(t *testing.T) {
	g, key := newTwoRoomGame(config.Default())
	key.Visual.Model = 7
	refs := &modelLog{}
	g.Assets = refs
	g.Player.Pose.Position = geom.Vec3{X: 200, Y: -15, Z: 140}

	if _, _, ok := Grab(g); !ok {
		t.Fatal("Grab() found no key in reach")
	}
	if len(*refs) != 1 || (*refs)[0] != 7 {
		t.Errorf("released models = %v, want [7]", *refs)
	}

	Grab(g)
	if len(*refs) != 1 {
		t.Errorf("released models = %v after a second grab, want [7]", *refs)
	}
}
