// Package state holds the data of a running game. The operations that change
// it live in gameplay.
package state

import (
	"escaperoom/pkg/engine/assets"
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
)

// Status is the overall progress of a game
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
)

func (s Status) String() string {
	if s == StatusWon {
		return "won"
	}
	return "playing"
}

// Player is the first-person character
type Player struct {
	Pose geom.Pose

	// CurrentRoom is only meaningful while InRoom is true
	CurrentRoom world.RoomID
	InRoom      bool

	OwnedKeys []*entities.Key // pickup order

	Model assets.ModelHandle
	Anim  *entities.AnimationState
}

// NewPlayer places a player at pos, not yet resolved to a room
func NewPlayer(pos geom.Vec3, yaw, scale float64) *Player {
	return &Player{
		Pose:        geom.Pose{Position: pos, Yaw: yaw, Scale: scale},
		CurrentRoom: world.NoRoom,
	}
}

// Game represents the state of one escape attempt
type Game struct {
	Config config.Config

	Graph *world.Graph
	Walls []*world.Wall // indexed by WallID
	Keys  *entities.Registry
	Decor []*entities.Decor

	Player *Player

	StartRoom world.RoomID
	EndRoom   world.RoomID
	Status    Status

	// Models used to draw the map's own pieces
	Visuals Visuals
	// Assets counts the entities displaying each model; nil leaves models
	// untracked
	Assets assets.Refs

	Messages []string

	Frame int
}

// Visuals holds the model handles chosen by the map for its pieces
type Visuals struct {
	Key        assets.ModelHandle
	WallSolid  assets.ModelHandle
	WallOpen   assets.ModelHandle
	WallLocked assets.ModelHandle
	Floor      assets.ModelHandle
}

// NewGame creates an empty game using cfg
func NewGame(cfg config.Config) *Game {
	return &Game{
		Config:    cfg,
		Graph:     world.NewGraph(cfg.RoomWidth, cfg.RoomLength),
		Keys:      entities.NewRegistry(),
		StartRoom: world.NoRoom,
		EndRoom:   world.NoRoom,
		Messages:  make([]string, 0),
	}
}

// Wall returns the wall with id
func (g *Game) Wall(id world.WallID) (*world.Wall, bool) {
	if id < 0 || int(id) >= len(g.Walls) || g.Walls[id] == nil {
		return nil, false
	}
	return g.Walls[id], true
}

// CurrentRoom returns the room the player stands in
func (g *Game) CurrentRoom() (*world.Room, bool) {
	if g.Player == nil || !g.Player.InRoom {
		return nil, false
	}
	return g.Graph.Room(g.Player.CurrentRoom)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// RetainModel records an entity that starts displaying h
func (g *Game) RetainModel(h assets.ModelHandle) {
	if g.Assets != nil && h != assets.NoModel {
		g.Assets.RetainModel(h)
	}
}

// ReleaseModel drops the reference of an entity no longer displaying h
func (g *Game) ReleaseModel(h assets.ModelHandle) {
	if g.Assets != nil && h != assets.NoModel {
		g.Assets.ReleaseModel(h)
	}
}
