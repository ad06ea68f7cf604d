// Package config holds the tunable dimensions and thresholds of a game.
// Maps built at a different scale ship their own config file instead of
// requiring a rebuild.
package config

import (
	"bytes"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"escaperoom/pkg/engine/geom"
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/errors"
)

// Config is passed into world construction and read by gameplay every frame
type Config struct {
	// GrabThreshold is the distance under which a key can be picked up
	GrabThreshold float64 `yaml:"grab_threshold"`

	RoomWidth  float64 `yaml:"room_width"`
	RoomLength float64 `yaml:"room_length"`

	// BoundsMargin keeps the player this far inside the room rectangle
	BoundsMargin float64 `yaml:"bounds_margin"`

	WallHalfThickness float64 `yaml:"wall_half_thickness"`
	WallHalfLength    float64 `yaml:"wall_half_length"`

	PlayerRadius float64 `yaml:"player_radius"`

	// MoveSpeed is applied once per frame; TurnSpeed scales pointer delta per second
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`

	// WallCollision enables circle-vs-wall resolution on top of the room clamp
	WallCollision bool `yaml:"wall_collision"`

	FrameDT float64 `yaml:"frame_dt"`

	// Bindings rebinds actions to a single key code, e.g. grab: f
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the dimensions the bundled map was authored for
func Default() Config {
	return Config{
		GrabThreshold:     100,
		RoomWidth:         300,
		RoomLength:        295,
		BoundsMargin:      5,
		WallHalfThickness: 10,
		WallHalfLength:    150,
		PlayerRadius:      10,
		MoveSpeed:         2,
		TurnSpeed:         0.5,
		WallCollision:     true,
		FrameDT:           1.0 / 60,
	}
}

// WallHalf returns the half extents of an unrotated wall, thin along x
func (c Config) WallHalf() geom.Vec2 {
	return geom.Vec2{X: c.WallHalfThickness, Z: c.WallHalfLength}
}

// Validate rejects values that would break containment or collision
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"grab_threshold", c.GrabThreshold},
		{"room_width", c.RoomWidth},
		{"room_length", c.RoomLength},
		{"wall_half_thickness", c.WallHalfThickness},
		{"wall_half_length", c.WallHalfLength},
		{"player_radius", c.PlayerRadius},
		{"frame_dt", c.FrameDT},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.InvalidConfig(p.name, "must be positive")
		}
	}
	if c.MoveSpeed < 0 {
		return errors.InvalidConfig("move_speed", "must not be negative")
	}
	if c.BoundsMargin < 0 {
		return errors.InvalidConfig("bounds_margin", "must not be negative")
	}
	if 2*c.BoundsMargin > c.RoomWidth || 2*c.BoundsMargin > c.RoomLength {
		return errors.InvalidConfig("bounds_margin", "must be at most half the room size")
	}
	for name := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return errors.InvalidConfig("bindings", "names unknown action "+name)
		}
	}
	return nil
}

// ApplyBindings installs the configured key bindings
func (c Config) ApplyBindings() {
	for name, code := range c.Bindings {
		if a, ok := input.ParseAction(name); ok {
			input.SetSingleBinding(a, code)
		}
	}
}

// Parse reads YAML over the defaults, so a file only names what it changes.
// Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidConfig, "cannot parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load parses the config file at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidConfig, "cannot read config").WithMeta("path", path)
	}
	return Parse(data)
}

// LoadFS parses a config file from fsys
func LoadFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeInvalidConfig, "cannot read config").WithMeta("path", path)
	}
	return Parse(data)
}
