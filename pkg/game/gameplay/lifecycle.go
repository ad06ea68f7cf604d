package gameplay

import (
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/logger"
)

// EventKind names something that happened during a frame
type EventKind int

const (
	EventRoomChanged EventKind = iota
	EventLeftMap
	EventKeyPickedUp
	EventDoorOpened
	EventWon
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventRoomChanged:
		return "room_changed"
	case EventLeftMap:
		return "left_map"
	case EventKeyPickedUp:
		return "key_picked_up"
	case EventDoorOpened:
		return "door_opened"
	case EventWon:
		return "won"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind
	Room world.RoomID
	Key  *entities.Key
	Wall world.WallID
}

// Step advances the game by one frame: animations, room resolution,
// movement, containment, the win check and then the released actions.
func Step(g *state.Game, in input.Frame, dt float64) []Event {
	g.Frame++
	tickAnimations(g, dt)

	var events []Event
	if in.Released(input.ActionQuit) {
		events = append(events, Event{Kind: EventQuit, Room: g.Player.CurrentRoom})
	}
	if g.Status == state.StatusWon {
		return events
	}

	p := g.Player
	prevRoom, prevIn := p.CurrentRoom, p.InRoom

	// The room under the player before moving bounds this frame's move, so
	// a step longer than a room is still held inside it.
	ResolveRoom(g)
	ApplyMovement(g, in, dt)
	ClampToRoomBounds(g)
	ResolveWallCollisions(g)
	ResolveRoom(g)

	if p.CurrentRoom != prevRoom || p.InRoom != prevIn {
		events = append(events, roomEvent(g))
	}

	if p.InRoom && p.CurrentRoom == g.EndRoom {
		g.Status = state.StatusWon
		logMessage(g, "ESCAPED", int(p.CurrentRoom))
		logger.Log.WithFields(playerFields(g)).Info("end room reached")
		return append(events, Event{Kind: EventWon, Room: p.CurrentRoom})
	}

	if in.Released(input.ActionGrab) {
		if key, opened, ok := Grab(g); ok {
			events = append(events, Event{Kind: EventKeyPickedUp, Room: p.CurrentRoom, Key: key})
			for _, id := range opened {
				events = append(events, Event{Kind: EventDoorOpened, Room: p.CurrentRoom, Key: key, Wall: id})
			}
		}
	}
	if in.Released(input.ActionLocateRoom) {
		LocateRoom(g)
	}
	return events
}

func roomEvent(g *state.Game) Event {
	p := g.Player
	if !p.InRoom {
		logMessage(g, "LEFT_MAP")
		logger.Log.WithFields(playerFields(g)).Warn("player outside every room")
		return Event{Kind: EventLeftMap, Room: world.NoRoom}
	}
	logMessage(g, "ENTERED_ROOM", int(p.CurrentRoom))
	logger.Log.WithFields(playerFields(g)).Debug("room changed")
	return Event{Kind: EventRoomChanged, Room: p.CurrentRoom}
}

func tickAnimations(g *state.Game, dt float64) {
	g.Player.Anim.Tick(dt)
	for _, d := range g.Decor {
		d.Anim.Tick(dt)
	}
}
