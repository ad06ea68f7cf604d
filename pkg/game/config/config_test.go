package config

import (
	"reflect"
	"testing"
	"testing/fstest"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/errors"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := Default().GrabThreshold; got != 100 {
		t.Errorf("Default().GrabThreshold = %v, want 100", got)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("grab_threshold: 40\nwall_collision: false\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.GrabThreshold != 40 {
		t.Errorf("GrabThreshold = %v, want 40", cfg.GrabThreshold)
	}
	if cfg.WallCollision {
		t.Error("WallCollision = true, want false")
	}
	if cfg.RoomWidth != 300 {
		t.Errorf("RoomWidth = %v, want default 300", cfg.RoomWidth)
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero room width", "room_width: 0"},
		{"negative radius", "player_radius: -1"},
		{"margin larger than room", "bounds_margin: 200"},
		{"unknown field", "grab_radius: 10"},
		{"not yaml", "room_width: [1, 2"},
		{"unknown action", "bindings: {jump: j}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.IsInvalidConfig(err) {
				t.Errorf("Parse(%q) error = %v, want INVALID_CONFIG", tt.yaml, err)
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	if err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Parse(blank) = %+v, %v, want defaults", cfg, err)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{"small.yaml": {Data: []byte("room_width: 100\nroom_length: 100\n")}}
	cfg, err := LoadFS(fsys, "small.yaml")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if cfg.RoomWidth != 100 || cfg.RoomLength != 100 {
		t.Errorf("room = %vx%v, want 100x100", cfg.RoomWidth, cfg.RoomLength)
	}
	if _, err := LoadFS(fsys, "missing.yaml"); !errors.IsInvalidConfig(err) {
		t.Errorf("LoadFS(missing) error = %v, want INVALID_CONFIG", err)
	}
	if cfg, err := Load(""); err != nil || !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, %v, want defaults", cfg, err)
	}
}

func TestApplyBindings(t *testing.T) {
	cfg, err := Parse([]byte("bindings: {grab: f}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	defer input.SetSingleBinding(input.ActionGrab, "space")

	cfg.ApplyBindings()
	if got := input.MapToIntent(input.DebouncedInput{Code: "f"}).Action; got != input.ActionGrab {
		t.Errorf("f = %v, want Grab", got)
	}
}
