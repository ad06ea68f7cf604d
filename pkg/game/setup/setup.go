// Package setup builds a playable game from a map description.
package setup

import (
	"github.com/sirupsen/logrus"

	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/mapdata"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

// Build loads every asset the map declares, then creates the rooms, walls,
// keys, decor and the player, and resolves the player's starting room.
// Each key, decor piece and the player hold a reference on their model.
// Any asset failure aborts the build.
func Build(desc *mapdata.Description, cfg config.Config, loader assets.Loader) (*state.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib, err := loadLibrary(desc.Assets, loader)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(cfg)
	g.Assets = loader
	g.Graph = desc.Graph(cfg.RoomWidth, cfg.RoomLength)
	g.StartRoom = world.RoomID(desc.StartRoom)
	g.EndRoom = world.RoomID(desc.EndRoom)

	for i, f := range desc.Flats {
		pos := geom.Vec2{X: f.X, Z: f.Z}
		g.Walls = append(g.Walls, world.NewWall(world.WallID(i), pos, !f.IsIdentity, world.DoorState(f.Door), cfg.WallHalf()))
	}

	v := desc.Visuals
	g.Visuals = state.Visuals{
		Key:        lib.models[v.Key],
		WallSolid:  lib.models[v.WallSolid],
		WallOpen:   lib.models[v.WallOpen],
		WallLocked: lib.models[v.WallLocked],
		Floor:      lib.models[v.Floor],
	}

	for _, k := range desc.Keys {
		g.Keys.Add(world.RoomID(k.StartsIn), target(k), entities.Visual{
			Position: geom.Vec3{X: k.X, Y: k.Y, Z: k.Z},
			Model:    g.Visuals.Key,
		})
		g.RetainModel(g.Visuals.Key)
	}

	for _, d := range desc.Decor {
		g.Decor = append(g.Decor, &entities.Decor{
			Name: d.Name,
			Pose: geom.Pose{
				Position: geom.Vec3{X: d.X, Y: d.Y, Z: d.Z},
				Yaw:      d.Yaw,
				Scale:    scaleOr1(d.Scale),
			},
			Model: lib.models[d.Model],
			Anim:  lib.animation(d.Animation),
		})
		g.RetainModel(lib.models[d.Model])
	}

	ps := desc.Player
	g.Player = state.NewPlayer(geom.Vec3{X: ps.X, Y: ps.Y, Z: ps.Z}, ps.Yaw, scaleOr1(ps.Scale))
	g.Player.Model = lib.models[v.Player]
	g.Player.Anim = lib.animation(v.PlayerAnim)
	g.RetainModel(g.Player.Model)

	gameplay.ResolveRoom(g)

	fields := logrus.Fields{
		"rooms": g.Graph.Len(),
		"walls": len(g.Walls),
		"keys":  g.Keys.Len(),
		"decor": len(g.Decor),
		"start": g.StartRoom,
		"end":   g.EndRoom,
	}
	if !g.Player.InRoom || g.Player.CurrentRoom != g.StartRoom {
		logger.Log.WithFields(fields).WithField("player_room", g.Player.CurrentRoom).Warn("player does not start inside the start room")
	}
	if !desc.Solvable(cfg.RoomWidth, cfg.RoomLength) {
		logger.Log.WithFields(fields).Warn("end room cannot be reached with the keys on this map")
	}
	logger.Log.WithFields(fields).Info("world built")

	return g, nil
}

func target(k mapdata.KeySpec) entities.Target {
	if k.OpensWall != nil {
		return entities.OpensWall(world.WallID(*k.OpensWall))
	}
	return entities.OpensRoom(world.RoomID(*k.OpensRoom))
}

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
