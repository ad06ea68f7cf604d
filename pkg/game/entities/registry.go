package entities

import (
	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
)

// Registry tracks the keys still lying in each room
type Registry struct {
	byRoom map[world.RoomID][]*Key
	rooms  []world.RoomID // first-insertion order
	nextID KeyID
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byRoom: make(map[world.RoomID][]*Key),
	}
}

// Add places a new key in room and returns it
func (r *Registry) Add(room world.RoomID, opens Target, visual Visual) *Key {
	k := &Key{
		ID:       r.nextID,
		StartsIn: room,
		Opens:    opens,
		Visual:   visual,
	}
	r.nextID++

	if _, ok := r.byRoom[room]; !ok {
		r.rooms = append(r.rooms, room)
	}
	r.byRoom[room] = append(r.byRoom[room], k)
	return k
}

// InRoom returns a copy of the keys lying in room
func (r *Registry) InRoom(room world.RoomID) []*Key {
	keys := r.byRoom[room]
	out := make([]*Key, len(keys))
	copy(out, keys)
	return out
}

// All returns every key still lying in the world, grouped by room in the
// order rooms were first given a key
func (r *Registry) All() []*Key {
	var out []*Key
	for _, room := range r.rooms {
		out = append(out, r.byRoom[room]...)
	}
	return out
}

// Len returns the number of keys still lying in the world
func (r *Registry) Len() int {
	n := 0
	for _, keys := range r.byRoom {
		n += len(keys)
	}
	return n
}

// PickupNear removes and returns the first key in room closer than
// threshold to pos. Nothing changes when no key qualifies.
func (r *Registry) PickupNear(room world.RoomID, pos geom.Vec3, threshold float64) (*Key, bool) {
	for i, k := range r.byRoom[room] {
		if k.PickedUp {
			continue
		}
		if geom.Distance(pos, k.Visual.Position) < threshold {
			r.removeAt(room, i)
			k.PickedUp = true
			return k, true
		}
	}
	return nil, false
}

func (r *Registry) removeAt(room world.RoomID, i int) {
	keys := r.byRoom[room]
	if i < 0 || i >= len(keys) {
		return
	}
	r.byRoom[room] = append(keys[:i:i], keys[i+1:]...)
}
