package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fonts"
	"github.com/automoto/streetbrawl/shared/battle"
	"github.com/automoto/streetbrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateStatusBar starts a drain whenever a fighter's hit points change and
// advances running drains.
func UpdateStatusBar(ecs *ecs.ECS) {
	b, ok := getBattle(ecs)
	if !ok {
		return
	}
	dt := 1 / float32(cfg.C.TPS)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		bar := components.HealthBar.Get(e)
		hp := b.Score.Fighters[f.Slot()].HitPoints

		if hp != bar.Target {
			bar.Drain = gween.New(float32(bar.Displayed), float32(hp), cfg.StatusBar.DrainTime, ease.OutQuad)
			bar.Target = hp
		}
		if bar.Drain == nil {
			return
		}
		v, done := bar.Drain.Update(dt)
		bar.Displayed = float64(v)
		if done {
			bar.Displayed = float64(bar.Target)
			bar.Drain = nil
		}
	})
}

// DrawStatusBar renders both health bars with names, scores and the KO badge.
func DrawStatusBar(ecs *ecs.ECS, screen *ebiten.Image) {
	b, ok := getBattle(ecs)
	if !ok {
		return
	}
	sb := cfg.StatusBar
	width := float64(cfg.C.Width)

	tags.Fighter.Each(ecs.World, func(e *donburi.Entry) {
		f := components.Fighter.Get(e)
		bar := components.HealthBar.Get(e)
		status := b.Score.Fighters[f.Slot()]

		// P1's bar empties toward the left edge, P2's toward the right edge
		x := sb.BarMargin
		if f.Slot() == 1 {
			x = width - sb.BarMargin - sb.BarWidth
		}
		drawHealthBar(screen, x, f.Slot() == 0, bar.Displayed, status.HitPoints)

		nameFace := fonts.Small.Get()
		nameX := int(x)
		if f.Slot() == 1 {
			nameX = int(x+sb.BarWidth) - textWidth(nameFace, status.Name)
		}
		text.Draw(screen, status.Name, nameFace, nameX, sb.NameY, sb.TextColor)

		score := fmt.Sprintf("%dP %06d", f.Slot()+1, status.Score)
		scoreX := int(x)
		if f.Slot() == 1 {
			scoreX = int(x+sb.BarWidth) - textWidth(nameFace, score)
		}
		text.Draw(screen, score, nameFace, scoreX, sb.ScoreY, sb.ScoreColor)
	})

	drawKOBadge(screen, b.Score)
}

// drawHealthBar draws one bar. The damage portion spans from the real hit
// points to the draining displayed value.
func drawHealthBar(screen *ebiten.Image, x float64, anchorRight bool, displayed float64, hp int) {
	sb := cfg.StatusBar
	y := sb.BarY
	vector.FillRect(screen, float32(x), float32(y), float32(sb.BarWidth), float32(sb.BarHeight), sb.Background, false)

	healthW := sb.BarWidth * float64(hp) / battle.MaxHitPoints
	damageW := sb.BarWidth * max(displayed, float64(hp)) / battle.MaxHitPoints

	fill := func(w float64, c color.RGBA) {
		fx := x
		if anchorRight {
			fx = x + sb.BarWidth - w
		}
		vector.FillRect(screen, float32(fx), float32(y), float32(w), float32(sb.BarHeight), c, false)
	}
	fill(damageW, sb.Damage)
	fill(healthW, sb.Health)

	vector.StrokeRect(screen, float32(x), float32(y), float32(sb.BarWidth), float32(sb.BarHeight), 1, sb.Border, false)
}

func drawKOBadge(screen *ebiten.Image, score *battle.State) {
	sb := cfg.StatusBar
	face := fonts.Regular.Get()
	label := "KO"

	w := float64(textWidth(face, label)) + 6
	x := (float64(cfg.C.Width) - w) / 2
	c := sb.Background
	if score.Fighters[0].KnockedOut() || score.Fighters[1].KnockedOut() {
		c = sb.KOColor
	}
	vector.FillRect(screen, float32(x), float32(sb.BarY-2), float32(w), float32(sb.BarHeight+4), c, false)
	text.Draw(screen, label, face, int(x)+3, int(sb.BarY+sb.BarHeight), sb.KOTextColor)
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}
