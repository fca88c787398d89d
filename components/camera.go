package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top-left corner of the view in world units. Shake is
// added only when drawing so it never feeds back into fighter constraints.
type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
