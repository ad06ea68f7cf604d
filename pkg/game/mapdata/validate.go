package mapdata

import (
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/world"
	"escaperoom/pkg/game/errors"
)

// Validate checks that every reference in the document resolves and that no
// two rooms overlap. The first problem found is returned as a map parse
// failure.
func (d *Description) Validate(width, length float64) error {
	if len(d.Rooms) == 0 {
		return errors.MapParseFailure("map has no rooms")
	}

	ids := mapset.New[int]()
	for _, r := range d.Rooms {
		if r.ID < 0 {
			return errors.MapParseFailuref("room id %d is negative", r.ID)
		}
		if ids.Has(r.ID) {
			return errors.MapParseFailuref("duplicate room id %d", r.ID)
		}
		ids.Put(r.ID)
	}

	for _, r := range d.Rooms {
		for i, f := range r.Flats {
			if f >= len(d.Flats) {
				return errors.MapParseFailuref("room %d %v wall refers to missing flat %d", r.ID, world.Direction(i), f)
			}
		}
		for i, n := range r.ConnectedRooms {
			if n >= 0 && !ids.Has(n) {
				return errors.MapParseFailuref("room %d %v neighbour %d does not exist", r.ID, world.Direction(i), n)
			}
			if n == r.ID {
				return errors.MapParseFailuref("room %d lists itself as a neighbour", r.ID)
			}
		}
	}

	for i, f := range d.Flats {
		if f.Door < DoorNone || f.Door > DoorLocked {
			return errors.MapParseFailuref("flat %d has unknown door code %d", i, f.Door)
		}
	}

	if !ids.Has(d.StartRoom) {
		return errors.MapParseFailuref("start room %d does not exist", d.StartRoom)
	}
	if !ids.Has(d.EndRoom) {
		return errors.MapParseFailuref("end room %d does not exist", d.EndRoom)
	}

	for i, k := range d.Keys {
		if !ids.Has(k.StartsIn) {
			return errors.MapParseFailuref("key %d starts in missing room %d", i, k.StartsIn)
		}
		switch {
		case k.OpensRoom != nil && k.OpensWall != nil:
			return errors.MapParseFailuref("key %d sets both opens_room and opens_wall", i)
		case k.OpensRoom != nil:
			if !ids.Has(*k.OpensRoom) {
				return errors.MapParseFailuref("key %d opens missing room %d", i, *k.OpensRoom)
			}
		case k.OpensWall != nil:
			if *k.OpensWall < 0 || *k.OpensWall >= len(d.Flats) {
				return errors.MapParseFailuref("key %d opens missing flat %d", i, *k.OpensWall)
			}
		default:
			return errors.MapParseFailuref("key %d opens nothing", i)
		}
	}

	if pairs := d.Graph(width, length).Overlaps(); len(pairs) > 0 {
		return errors.MapParseFailuref("rooms %d and %d overlap", pairs[0][0], pairs[0][1])
	}

	return d.validateAssets()
}

func (d *Description) validateAssets() error {
	a := d.Assets
	for name, m := range a.Models {
		for _, mesh := range m.Meshes {
			if _, ok := a.Meshes[mesh]; !ok {
				return errors.MapParseFailuref("model %q uses unknown mesh %q", name, mesh)
			}
		}
		for _, tex := range m.Textures {
			if _, ok := a.Textures[tex]; !ok {
				return errors.MapParseFailuref("model %q uses unknown texture %q", name, tex)
			}
		}
	}
	for name, anim := range a.Animations {
		if _, ok := a.Meshes[anim.Mesh]; !ok {
			return errors.MapParseFailuref("animation %q binds unknown mesh %q", name, anim.Mesh)
		}
	}

	model := func(what, name string) error {
		if name == "" {
			return nil
		}
		if _, ok := a.Models[name]; !ok {
			return errors.MapParseFailuref("%s uses unknown model %q", what, name)
		}
		return nil
	}
	v := d.Visuals
	for what, name := range map[string]string{
		"key":         v.Key,
		"player":      v.Player,
		"wall_solid":  v.WallSolid,
		"wall_open":   v.WallOpen,
		"wall_locked": v.WallLocked,
		"floor":       v.Floor,
	} {
		if err := model(what, name); err != nil {
			return err
		}
	}
	if v.PlayerAnim != "" {
		if _, ok := a.Animations[v.PlayerAnim]; !ok {
			return errors.MapParseFailuref("player uses unknown animation %q", v.PlayerAnim)
		}
	}
	for _, dec := range d.Decor {
		if err := model("decor "+dec.Name, dec.Model); err != nil {
			return err
		}
		if dec.Animation != "" {
			if _, ok := a.Animations[dec.Animation]; !ok {
				return errors.MapParseFailuref("decor %s uses unknown animation %q", dec.Name, dec.Animation)
			}
		}
	}
	return nil
}

// Graph builds the room graph described by the document. Wall ids are flat
// indexes.
func (d *Description) Graph(width, length float64) *world.Graph {
	g := world.NewGraph(width, length)
	for _, r := range d.Rooms {
		room := world.NewRoom(world.RoomID(r.ID), geom.Vec2{X: r.Corner.X, Z: r.Corner.Z})
		for i := range 4 {
			if r.Flats[i] >= 0 {
				room.Walls[i] = world.WallID(r.Flats[i])
			}
			if r.ConnectedRooms[i] >= 0 {
				room.Neighbors[i] = world.RoomID(r.ConnectedRooms[i])
			}
		}
		g.Add(room)
	}
	return g
}
