// Package mapdata reads map descriptions: the rooms, walls, keys and assets
// a game is built from. Documents are YAML; JSON documents parse as well.
package mapdata

import (
	"bytes"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"escaperoom/pkg/game/errors"
)

// Door codes used by flats
const (
	DoorNone   = 0
	DoorOpen   = 1
	DoorLocked = 2
)

// Description is a whole map document
type Description struct {
	StartRoom int         `yaml:"start_room"`
	EndRoom   int         `yaml:"end_room"`
	Player    PlayerSpec  `yaml:"player"`
	Rooms     []RoomSpec  `yaml:"rooms"`
	Flats     []FlatSpec  `yaml:"flats"`
	Keys      []KeySpec   `yaml:"keys"`
	Decor     []DecorSpec `yaml:"decor"`
	Assets    AssetSpec   `yaml:"assets"`
	Visuals   VisualSpec  `yaml:"visuals"`
}

// PlayerSpec places the player at the start
type PlayerSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float64 `yaml:"yaw"`
	Scale float64 `yaml:"scale"`
}

// Point2 is a floor-plane point
type Point2 struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// RoomSpec describes one room. Flats and ConnectedRooms are indexed
// north, east, south, west; negative entries mean none.
type RoomSpec struct {
	ID             int    `yaml:"id"`
	Flats          [4]int `yaml:"flats"`
	ConnectedRooms [4]int `yaml:"connected_rooms"`
	Corner         Point2 `yaml:"corner"`
}

// FlatSpec is a wall panel. IsIdentity false means rotated a quarter turn.
type FlatSpec struct {
	X          float64 `yaml:"x"`
	Z          float64 `yaml:"z"`
	IsIdentity bool    `yaml:"is_identity"`
	Door       int     `yaml:"door"`
}

// KeySpec places a key. Exactly one of OpensRoom and OpensWall is set.
type KeySpec struct {
	StartsIn  int     `yaml:"starts_in"`
	OpensRoom *int    `yaml:"opens_room"`
	OpensWall *int    `yaml:"opens_wall"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
}

// DecorSpec places a decorative model
type DecorSpec struct {
	Name      string  `yaml:"name"`
	Model     string  `yaml:"model"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
	Yaw       float64 `yaml:"yaw"`
	Scale     float64 `yaml:"scale"`
	Animation string  `yaml:"animation"`
}

// AssetSpec names every asset the map needs. Entries are keyed by the name
// other sections refer to.
type AssetSpec struct {
	Textures   map[string]string        `yaml:"textures"`
	Meshes     map[string]MeshSpec      `yaml:"meshes"`
	Animations map[string]AnimationSpec `yaml:"animations"`
	Models     map[string]ModelSpec     `yaml:"models"`
}

// MeshSpec is a static mesh, or a skinned one when Nodes is set
type MeshSpec struct {
	Path  string   `yaml:"path"`
	Scale float64  `yaml:"scale"`
	Nodes []string `yaml:"nodes"`
}

// AnimationSpec binds a clip to a mesh
type AnimationSpec struct {
	Path     string  `yaml:"path"`
	Mesh     string  `yaml:"mesh"`
	Clip     string  `yaml:"clip"`
	Looping  bool    `yaml:"looping"`
	Duration float64 `yaml:"duration"`
}

// ModelSpec groups meshes with textures
type ModelSpec struct {
	Meshes   []string `yaml:"meshes"`
	Textures []string `yaml:"textures"`
}

// VisualSpec picks the models used for the map's own pieces. Empty entries
// are drawn without a model.
type VisualSpec struct {
	Key        string `yaml:"key"`
	Player     string `yaml:"player"`
	PlayerAnim string `yaml:"player_animation"`
	WallSolid  string `yaml:"wall_solid"`
	WallOpen   string `yaml:"wall_open"`
	WallLocked string `yaml:"wall_locked"`
	Floor      string `yaml:"floor"`
}

// Parse decodes and validates a map document against the given room size
func Parse(data []byte, width, length float64) (*Description, error) {
	var desc Description
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMapParse, "cannot decode map")
	}
	if err := desc.Validate(width, length); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Load reads a map document from disk
func Load(path string, width, length float64) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMapParse, "cannot read map").WithMeta("path", path)
	}
	return Parse(data, width, length)
}

// LoadFS reads a map document from fsys
func LoadFS(fsys fs.FS, path string, width, length float64) (*Description, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMapParse, "cannot read map").WithMeta("path", path)
	}
	return Parse(data, width, length)
}
