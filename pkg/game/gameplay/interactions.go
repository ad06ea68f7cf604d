package gameplay

import (
	"github.com/sirupsen/logrus"

	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

// Grab picks up the first key in the current room within GrabThreshold of
// the player and opens whatever it unlocks. It does nothing once the game
// is won or while the player is outside every room.
func Grab(g *state.Game) (*entities.Key, []world.WallID, bool) {
	p := g.Player
	if g.Status == state.StatusWon || !p.InRoom {
		return nil, nil, false
	}

	key, ok := g.Keys.PickupNear(p.CurrentRoom, p.Pose.Position, g.Config.GrabThreshold)
	if !ok {
		logMessage(g, "NOTHING_TO_GRAB")
		return nil, nil, false
	}
	p.OwnedKeys = append(p.OwnedKeys, key)
	g.ReleaseModel(key.Visual.Model)
	logMessage(g, "KEY_PICKED_UP", int(key.ID))

	opened := OpenDoorsFor(g, key)
	for _, id := range opened {
		logMessage(g, "DOOR_OPENED", int(id))
	}

	logger.Log.WithFields(playerFields(g)).WithFields(logrus.Fields{
		"key":    key.ID,
		"opens":  key.Opens.String(),
		"opened": len(opened),
	}).Info("key picked up")
	return key, opened, true
}

// OpenDoorsFor unlocks the locked walls a key targets and returns their ids.
// A wall target opens that wall; a room target opens every locked wall
// between the room and its neighbours.
func OpenDoorsFor(g *state.Game, key *entities.Key) []world.WallID {
	var candidates []world.WallID
	switch key.Opens.Kind {
	case entities.TargetWall:
		candidates = []world.WallID{key.Opens.Wall}
	case entities.TargetRoom:
		candidates = g.Graph.WallsAround(key.Opens.Room)
	}

	var opened []world.WallID
	for _, id := range candidates {
		w, ok := g.Wall(id)
		if !ok {
			logger.Log.WithFields(logrus.Fields{"key": key.ID, "wall": id}).Warn("key targets a missing wall")
			continue
		}
		if w.Unlock() {
			opened = append(opened, id)
		}
	}
	return opened
}

// LocateRoom resolves the player's room on request and reports it in the
// message log
func LocateRoom(g *state.Game) (world.RoomID, bool) {
	ResolveRoom(g)
	p := g.Player
	if p.InRoom {
		logMessage(g, "LOCATED", int(p.CurrentRoom))
	} else {
		logMessage(g, "NOT_IN_ROOM")
	}
	logger.Log.WithFields(playerFields(g)).Debug("located player")
	return p.CurrentRoom, p.InRoom
}
