package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const shadowImageSize = 64

var (
	shadowImage  *ebiten.Image
	shadowDrawOp = &ebiten.DrawImageOptions{}
)

// UpdateShadows keeps each shadow on the floor under its fighter, shrinking
// it while the fighter is in the air.
func UpdateShadows(ecs *ecs.ECS) {
	components.Shadow.Each(ecs.World, func(e *donburi.Entry) {
		shadow := components.Shadow.Get(e)
		if !shadow.Owner.Valid() {
			return
		}
		f := components.Fighter.Get(shadow.Owner)
		pos := f.Position()
		height := max(f.Floor()-pos.Y, 0)

		shadow.X = pos.X
		shadow.Y = f.Floor()
		shadow.Scale = max(1-height*cfg.Shadow.Shrink, cfg.Shadow.MinScale)
	})
}

// DrawShadows renders the fighter shadows as flattened ellipses.
func DrawShadows(ecs *ecs.ECS, screen *ebiten.Image) {
	if shadowImage == nil {
		shadowImage = ebiten.NewImage(shadowImageSize, shadowImageSize)
		half := float32(shadowImageSize) / 2
		vector.DrawFilledCircle(shadowImage, half, half, half, cfg.White, true)
	}
	ox, oy := screenOrigin(ecs)

	components.Shadow.Each(ecs.World, func(e *donburi.Entry) {
		shadow := components.Shadow.Get(e)
		w := cfg.Shadow.Width * shadow.Scale
		h := cfg.Shadow.Height * shadow.Scale

		shadowDrawOp.GeoM.Reset()
		shadowDrawOp.GeoM.Scale(w/shadowImageSize, h/shadowImageSize)
		shadowDrawOp.GeoM.Translate(shadow.X-w/2-ox, shadow.Y-h/2-oy)
		shadowDrawOp.ColorScale.Reset()
		shadowDrawOp.ColorScale.ScaleWithColor(cfg.Shadow.Color)
		screen.DrawImage(shadowImage, shadowDrawOp)
	})
}
