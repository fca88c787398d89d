package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnHitSplash creates a burst centered on the point an attack landed.
func SpawnHitSplash(ecs *ecs.ECS, at math.Vec2, strength cfg.AttackStrength) *donburi.Entry {
	entry := archetypes.HitSplash.Spawn(ecs)
	components.HitSplash.SetValue(entry, components.HitSplashData{
		Position: at,
		Strength: strength,
	})
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
		FramesRemaining: cfg.HitSplash.Frames * cfg.HitSplash.FrameTicks,
	})
	return entry
}
