package archetypes

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.BoxObjects,
		components.State,
		components.HealthBar,
		components.Flash,
	)
	Shadow = newArchetype(
		tags.Shadow,
		components.Shadow,
	)
	HitSplash = newArchetype(
		tags.HitSplash,
		components.HitSplash,
		components.AutoDestroy,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Battle = newArchetype(
		components.Battle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
