package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFPS renders the frame rate in the bottom-right corner while debug is on.
func DrawFPS(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	face := fonts.Small.Get()
	label := fmt.Sprintf("%.0f", ebiten.ActualFPS())
	x := cfg.C.Width - textWidth(face, label) - 2
	text.Draw(screen, label, face, x, cfg.C.Height-4, cfg.Debug.TextColor)
}

// DrawDebug renders the collision space and each fighter's state machine.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	ox, oy := screenOrigin(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < ox || obj.X > ox+float64(width) || obj.Y+obj.H < oy || obj.Y > oy+float64(height) {
				continue
			}

			// Determine color based on tags
			var c color.RGBA
			switch {
			case obj.HasTags(tags.ResolvPush):
				c = cfg.Debug.PushColor
				if pushOverlap {
					c = cfg.Magenta
				}
			case obj.HasTags(tags.ResolvHurt):
				c = cfg.Debug.HurtColor
			case obj.HasTags(tags.ResolvHit):
				c = cfg.Debug.HitColor
			default:
				c = color.RGBA{100, 100, 100, 255}
			}

			vector.StrokeRect(screen, float32(obj.X-ox)+0.5, float32(obj.Y-oy)+0.5, float32(obj.W)-1, float32(obj.H)-1, 1, c, false)
		}
	}

	face := fonts.Small.Get()
	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		state := components.State.Get(e)
		pos := f.Position()

		// Origin cross
		size := cfg.Debug.OriginSize
		x, y := float32(pos.X-ox), float32(pos.Y-oy)
		vector.StrokeLine(screen, x-size, y, x+size, y, 1, cfg.White, false)
		vector.StrokeLine(screen, x, y-size, x, y+size, 1, cfg.White, false)

		label := fmt.Sprintf("%s %s:%d f%d %s", f.Character().Name, state.CurrentState, state.StateTimer, f.AnimationFrame(), f.Direction())
		lx := 4
		if f.Slot() == 1 {
			lx = cfg.C.Width - textWidth(face, label) - 4
		}
		text.Draw(screen, label, face, lx, 60, cfg.Debug.TextColor)

		prev := fmt.Sprintf("from %s", state.PreviousState)
		px := 4
		if f.Slot() == 1 {
			px = cfg.C.Width - textWidth(face, prev) - 4
		}
		text.Draw(screen, prev, face, px, 70, cfg.Debug.TextColor)
	})

	input := getOrCreateInput(ecs)
	for slot, m := range input.Methods {
		label := fmt.Sprintf("P%d %s", slot+1, m)
		text.Draw(screen, label, face, 4+slot*60, cfg.C.Height-4, cfg.Debug.TextColor)
	}
}
