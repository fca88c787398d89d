package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/shared/stagedata"
	"github.com/automoto/streetbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage adds the stage entity. Its object is the floor, mirrored into
// the space so the debug overlay shows where fighters land.
func CreateStage(ecs *ecs.ECS, space *resolv.Space, stage *stagedata.Stage) *donburi.Entry {
	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Stage: stage})

	obj := resolv.NewObject(0, stage.Floor, stage.Width, stage.Height-stage.Floor, tags.ResolvStage)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = entry
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	return entry
}
