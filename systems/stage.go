package systems

import (
	"github.com/automoto/streetbrawl/shared/stagedata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawStageBackground renders the stage layers behind the fighters.
func DrawStageBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawStageLayers(ecs, screen, false)
}

// DrawStageForeground renders the stage layers in front of the fighters.
func DrawStageForeground(ecs *ecs.ECS, screen *ebiten.Image) {
	drawStageLayers(ecs, screen, true)
}

func drawStageLayers(ecs *ecs.ECS, screen *ebiten.Image, foreground bool) {
	stage, ok := getStage(ecs)
	if !ok {
		return
	}
	ox, oy := screenOrigin(ecs)

	for _, layer := range stage.Layers {
		if layer.Foreground != foreground {
			continue
		}
		x, y := layerOffset(layer, ox, oy)
		vector.FillRect(screen, float32(x), float32(y), float32(layer.Rect.W), float32(layer.Rect.H), layer.Color, false)
	}
}

// layerOffset places a layer on screen. Parallax 1 scrolls with the world,
// lower values scroll slower.
func layerOffset(layer stagedata.Layer, ox, oy float64) (x, y float64) {
	return layer.Rect.X - ox*layer.Parallax, layer.Rect.Y - oy*layer.Parallax
}
