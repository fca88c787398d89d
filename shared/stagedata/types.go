// Package stagedata provides TMX stage parsing. It has no dependencies on
// ebitengine, donburi, or resolv so it can be tested headless.
package stagedata

import (
	"image/color"

	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/gamemath"
)

// Stage is the layout of a battle stage in world units.
type Stage struct {
	Name string

	// Width and Height span the whole map, padding included.
	Width, Height float64

	// Bounds is the area the camera may show.
	Bounds gamemath.Rect
	Floor  float64

	Spawns [2]Spawn
	Layers []Layer
}

// Spawn is the start position and facing of one player slot.
type Spawn struct {
	X, Y   float64
	Facing fighterdata.Direction
}

// Layer is a flat colored band of scenery. Parallax scales camera movement:
// 1 scrolls with the fighters, 0 is fixed to the screen.
type Layer struct {
	Name       string
	Rect       gamemath.Rect
	Color      color.RGBA
	Parallax   float64
	Foreground bool
}

// CameraLimits returns the horizontal range of the camera's left edge for a
// viewport width.
func (s *Stage) CameraLimits(viewportWidth float64) (left, right float64) {
	left = s.Bounds.X
	right = max(left, s.Bounds.Right()-viewportWidth)
	return left, right
}
