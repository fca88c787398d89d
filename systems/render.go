package systems

import (
	"image/color"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFighters renders each fighter as a silhouette built from its hurt
// boxes, tinted by character, with the attacking limb drawn over it.
func DrawFighters(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := screenOrigin(ecs)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		flash := components.Flash.Get(e)

		body := f.Character().Tint
		if flash.Duration > 0 {
			body = tintColor(body, flash.R, flash.G, flash.B)
		}
		body.A = cfg.FighterRender.HurtAlpha

		// Feet first so the body overlaps them
		hurt := f.HurtBoxes()
		for i := len(hurt) - 1; i >= 0; i-- {
			drawBox(screen, hurt[i], ox, oy, body, cfg.FighterRender.Outline)
		}
		if hit, ok := f.HitBox(); ok {
			drawBox(screen, hit, ox, oy, cfg.FighterRender.Limb, cfg.FighterRender.Outline)
		}
	})
}

func drawBox(screen *ebiten.Image, r gamemath.Rect, ox, oy float64, fill, outline color.RGBA) {
	if r.Empty() {
		return
	}
	x, y := float32(r.X-ox), float32(r.Y-oy)
	vector.FillRect(screen, x, y, float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, outline, false)
}

func tintColor(c color.RGBA, r, g, b float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * r),
		G: uint8(float32(c.G) * g),
		B: uint8(float32(c.B) * b),
		A: c.A,
	}
}
