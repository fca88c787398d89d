package gamemath

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestRectsOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"coincident", a, true},
	}
	for _, tt := range tests {
		if got := RectsOverlap(a, tt.b); got != tt.want {
			t.Errorf("%s: RectsOverlap = %v, want %v", tt.name, got, tt.want)
		}
		if got := RectsOverlap(tt.b, a); got != tt.want {
			t.Errorf("%s: overlap is not symmetric", tt.name)
		}
	}
}

func TestWorldBoxMirrors(t *testing.T) {
	pos := math.NewVec2(100, 50)
	box := Rect{X: 10, Y: -20, W: 30, H: 8}

	right := WorldBox(pos, 1, box)
	if right != (Rect{X: 110, Y: 30, W: 30, H: 8}) {
		t.Errorf("facing right: got %+v", right)
	}

	left := WorldBox(pos, -1, box)
	if left != (Rect{X: 60, Y: 30, W: 30, H: 8}) {
		t.Errorf("facing left: got %+v", left)
	}
}

func TestMidpoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 20, Y: 10, W: 10, H: 10}
	if got := Midpoint(a, b); got.X != 15 || got.Y != 10 {
		t.Errorf("Midpoint = %+v", got)
	}
}

func TestFollowFightersScrollsAndClamps(t *testing.T) {
	v := StageView{Left: 100, Right: 484, ViewportWidth: 384, ScrollBoundary: 100, MaxY: 16}

	x, y := FollowFighters(292, [2]float64{396, 572}, [2]float64{176, 176}, v)
	if x != 292 || y != 0 {
		t.Errorf("fighters inside the boundary moved the camera to %v,%v", x, y)
	}

	x, _ = FollowFighters(292, [2]float64{420, 600}, [2]float64{176, 176}, v)
	if x != 316 {
		t.Errorf("camera should follow the right fighter, got %v", x)
	}

	x, _ = FollowFighters(292, [2]float64{10, 40}, [2]float64{176, 176}, v)
	if x != v.Left {
		t.Errorf("camera should clamp to the stage, got %v", x)
	}

	_, y = FollowFighters(292, [2]float64{396, 420}, [2]float64{176, 56}, v)
	if y != 16 {
		t.Errorf("camera y should clamp to %v, got %v", v.MaxY, y)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Error("Clamp returned an unexpected value")
	}
}
