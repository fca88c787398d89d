package gamemath

import "math"

// StageView describes the scrollable area the camera lives in.
type StageView struct {
	Left, Right    float64 // horizontal camera limits for the left edge
	ViewportWidth  float64
	ScrollBoundary float64
	MaxY           float64
}

// FollowFighters moves the camera origin so that both fighters stay inside
// the scroll boundary. xs and ys are the fighter positions.
func FollowFighters(camX float64, xs, ys [2]float64, v StageView) (x, y float64) {
	y = -6 + math.Floor(math.Abs(ys[0]-ys[1])/3)

	lowX := math.Min(xs[0], xs[1])
	highX := math.Max(xs[0], xs[1])

	x = camX
	if highX-lowX > v.ViewportWidth-v.ScrollBoundary*2 {
		mid := (highX - lowX) / 2
		x = lowX + mid - v.ViewportWidth/2
	} else {
		for _, fx := range xs {
			if fx < x+v.ScrollBoundary {
				x = fx - v.ScrollBoundary
			} else if fx > x+v.ViewportWidth-v.ScrollBoundary {
				x = fx - v.ViewportWidth + v.ScrollBoundary
			}
		}
	}

	x = Clamp(x, v.Left, v.Right)
	y = Clamp(y, 0, v.MaxY)
	return x, y
}
