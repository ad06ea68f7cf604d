package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"same point", Vec3{1, 2, 3}, Vec3{1, 2, 3}, 0},
		{"3-4-5 on floor", Vec3{0, 0, 0}, Vec3{3, 0, 4}, 5},
		{"vertical", Vec3{0, -15, 0}, Vec3{0, 5, 0}, 20},
		{"symmetric", Vec3{3, 0, 4}, Vec3{0, 0, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); !near(got, tt.want) {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %v, want 0", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v, want 10", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp(7, 0, 10) = %v, want 7", got)
	}
}

func TestPoseRotate(t *testing.T) {
	p := Pose{}
	if got := p.Rotate(Vec2{X: 1, Z: 2}); !near(got.X, 1) || !near(got.Z, 2) {
		t.Errorf("Rotate at yaw 0 = %v, want {1 2}", got)
	}

	p.Yaw = math.Pi / 2
	got := p.Rotate(Vec2{Z: 1})
	if !near(got.X, 1) || !near(got.Z, 0) {
		t.Errorf("Rotate(forward) at yaw pi/2 = %v, want {1 0}", got)
	}
	if l := got.Len(); !near(l, 1) {
		t.Errorf("Rotate changed length to %v", l)
	}
}

func TestCircleBoxDisplacement_NoCollision(t *testing.T) {
	box := Box{Center: Vec2{0, 0}, Half: Vec2{10, 50}}
	tests := []struct {
		name   string
		circle Circle
	}{
		{"far right", Circle{Center: Vec2{100, 0}, Radius: 5}},
		{"just outside x", Circle{Center: Vec2{15.5, 0}, Radius: 5}},
		{"tangent", Circle{Center: Vec2{15, 0}, Radius: 5}},
		{"outside corner diagonal", Circle{Center: Vec2{14, 54}, Radius: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d, ok := CircleBoxDisplacement(tt.circle, box); ok {
				t.Errorf("CircleBoxDisplacement(%v) = %v, true, want no collision", tt.circle, d)
			}
		})
	}
}

func TestCircleBoxDisplacement_MinimumAxis(t *testing.T) {
	box := Box{Center: Vec2{0, 0}, Half: Vec2{10, 50}}
	tests := []struct {
		name   string
		circle Circle
		want   Vec2
	}{
		// penX = 10+5-12 = 3, penZ = 50+5-0 = 55
		{"right side pushes +x", Circle{Center: Vec2{12, 0}, Radius: 5}, Vec2{X: 3}},
		{"left side pushes -x", Circle{Center: Vec2{-12, 0}, Radius: 5}, Vec2{X: -3}},
		// penX = 10+5-0 = 15, penZ = 50+5-53 = 2
		{"top end pushes +z", Circle{Center: Vec2{0, 53}, Radius: 5}, Vec2{Z: 2}},
		{"bottom end pushes -z", Circle{Center: Vec2{0, -53}, Radius: 5}, Vec2{Z: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CircleBoxDisplacement(tt.circle, box)
			if !ok {
				t.Fatalf("CircleBoxDisplacement(%v) reported no collision", tt.circle)
			}
			if !near(got.X, tt.want.X) || !near(got.Z, tt.want.Z) {
				t.Errorf("CircleBoxDisplacement(%v) = %v, want %v", tt.circle, got, tt.want)
			}
			if got.X != 0 && got.Z != 0 {
				t.Errorf("displacement %v moves along both axes", got)
			}
		})
	}
}

func TestCircleBoxDisplacement_PushMultiplier(t *testing.T) {
	// The interior is on the -x side even though the circle sits on +x.
	box := Box{Center: Vec2{0, 0}, Half: Vec2{10, 50}, Push: Vec2{X: -1, Z: -1}}
	got, ok := CircleBoxDisplacement(Circle{Center: Vec2{12, 0}, Radius: 5}, box)
	if !ok {
		t.Fatal("expected collision")
	}
	if !near(got.X, -3) || got.Z != 0 {
		t.Errorf("displacement = %v, want {-3 0}", got)
	}
}

func TestCircleBoxDisplacement_CornerResolvesOneAxis(t *testing.T) {
	box := Box{Center: Vec2{0, 0}, Half: Vec2{10, 10}}
	// Overlapping the +x/+z corner: penX = 10+5-13 = 2, penZ = 10+5-12 = 3
	got, ok := CircleBoxDisplacement(Circle{Center: Vec2{13, 12}, Radius: 5}, box)
	if !ok {
		t.Fatal("expected collision near corner")
	}
	if !near(got.X, 2) || got.Z != 0 {
		t.Errorf("corner displacement = %v, want {2 0}", got)
	}
}

func TestCircleBoxDisplacement_CenterInside(t *testing.T) {
	box := Box{Center: Vec2{100, 100}, Half: Vec2{10, 50}}
	got, ok := CircleBoxDisplacement(Circle{Center: Vec2{95, 100}, Radius: 5}, box)
	if !ok {
		t.Fatal("expected collision with centre inside box")
	}
	// penX = 10+5-5 = 10, penZ = 55; delta.X < 0 so pushed -x
	if !near(got.X, -10) || got.Z != 0 {
		t.Errorf("displacement = %v, want {-10 0}", got)
	}
}
