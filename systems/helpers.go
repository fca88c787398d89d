package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getBattle returns the battle singleton, if the scene has one.
func getBattle(e *ecs.ECS) (*components.BattleData, bool) {
	entry, ok := components.Battle.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Battle.Get(entry), true
}

// getStage returns the stage the battle is fought on.
func getStage(e *ecs.ECS) (*components.StageData, bool) {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Stage.Get(entry), true
}

// fighterEntry finds the entity of a player slot.
func fighterEntry(e *ecs.ECS, slot int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		if components.Fighter.Get(entry).Slot() == slot {
			found = entry
		}
	})
	return found, found != nil
}

// cameraView is the world rectangle the fighters are constrained to. Shake
// is not part of it.
func cameraView(e *ecs.ECS) gamemath.Rect {
	view := gamemath.Rect{
		X: cfg.Camera.StartX,
		Y: cfg.Camera.StartY,
		W: float64(cfg.C.Width),
		H: float64(cfg.C.Height),
	}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		view.X, view.Y = camera.Position.X, camera.Position.Y
	}
	return view
}

// screenOrigin is the world point drawn at the top-left of the screen.
func screenOrigin(e *ecs.ECS) (x, y float64) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return cfg.Camera.StartX, cfg.Camera.StartY
	}
	camera := components.Camera.Get(entry)
	return camera.Position.X + camera.Shake.X, camera.Position.Y + camera.Shake.Y
}
