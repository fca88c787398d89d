package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, hit splash, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateHitSplashes(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateHitSplashes(ecs *ecs.ECS) {
	components.HitSplash.Each(ecs.World, func(e *donburi.Entry) {
		splash := components.HitSplash.Get(e)
		splash.Ticks++
		splash.Frame = min(splash.Ticks/cfg.HitSplash.FrameTicks, cfg.HitSplash.Frames-1)
	})
}

// updateAutoDestroy removes entities whose time is up
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		// Remove from physics space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}

// TriggerHurtFlash tints a struck fighter for a few frames
func TriggerHurtFlash(entry *donburi.Entry) {
	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Flash.Frames
	flash.R, flash.G, flash.B = cfg.Flash.R, cfg.Flash.G, cfg.Flash.B
}

// DrawEffects renders hit splashes as expanding rings around a bright core.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := screenOrigin(ecs)

	components.HitSplash.Each(ecs.World, func(e *donburi.Entry) {
		splash := components.HitSplash.Get(e)
		c := cfg.HitSplash.Colors[splash.Strength]
		base := cfg.HitSplash.Radius[splash.Strength]

		x := float32(splash.Position.X - ox)
		y := float32(splash.Position.Y - oy)
		r := float32(base * (1 + 0.5*float64(splash.Frame)))

		fade := 1 - float32(splash.Frame)/float32(cfg.HitSplash.Frames)
		c.A = uint8(float32(c.A) * fade)
		c.R = uint8(float32(c.R) * fade)
		c.G = uint8(float32(c.G) * fade)
		c.B = uint8(float32(c.B) * fade)

		if splash.Frame < 2 {
			vector.DrawFilledCircle(screen, x, y, r/2, cfg.White, false)
		}
		vector.StrokeCircle(screen, x, y, r, 2, c, false)
	})
}
