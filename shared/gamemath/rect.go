// Package gamemath holds the geometry shared by the fighter logic and the
// renderers. It has no dependency on ebiten.
package gamemath

import "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned box. Fighter-local boxes are stored untransformed
// (as if facing right) and converted with WorldBox.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle of the rect.
func (r Rect) Center() math.Vec2 {
	return math.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

// RectsOverlap reports whether a and b intersect. Touching edges do not
// count as overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// WorldBox places a fighter-local box at pos, mirroring it horizontally when
// sign is negative. The result always has a non-negative width.
func WorldBox(pos math.Vec2, sign float64, box Rect) Rect {
	x1 := pos.X + box.X*sign
	x2 := x1 + box.W*sign
	x := x1
	if x2 < x1 {
		x = x2
	}
	return Rect{X: x, Y: pos.Y + box.Y, W: box.W, H: box.H}
}

// Midpoint returns the point halfway between the centers of a and b.
func Midpoint(a, b Rect) math.Vec2 {
	ca, cb := a.Center(), b.Center()
	return math.NewVec2((ca.X+cb.X)/2, (ca.Y+cb.Y)/2)
}
