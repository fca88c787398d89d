package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: math.NewVec2(x, y),
	})
	return camera
}
